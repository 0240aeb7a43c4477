// Package server implements the MCP (Model Context Protocol) server for the color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorutil
// engine and its image helpers through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_parse: Any notation to hex, rgb(a), hsl(a) and channels
//   - color_to_rgb: Hex to rgb string or object
//   - color_to_hsl: RGB channels to hsl string or object
//   - color_to_hex: Any notation to #rrggbb
//   - color_hsl_to_rgb: HSL channels to RGB
//   - color_format: RGB channels to every string form
//
// Operations:
//   - color_invert, color_grayscale, color_random, color_swatch
//
// Output mode:
//   - color_set_output_mode, color_get_output_mode
//
// Image Operations:
//   - image_sample_color, image_sample_colors_multi, image_dominant_colors
//   - image_invert, image_grayscale
//
// # Output Mode
//
// color_to_rgb and color_to_hsl return either a string or an object. Each
// Server holds its own colorutil.Converter; color_set_output_mode replaces it
// under a lock, so the mode is scoped to one server and never shared through
// package state.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. `not a valid hex color: "#G8922"`
package server

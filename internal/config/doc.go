// Package config loads the color-tools-mcp configuration.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (see Default)
//  2. The user file ~/.config/color-tools-mcp/config.yaml, if present
//  3. An explicit file passed with --config, which must exist
//  4. Environment variables COLOR_MCP_OUTPUT_MODE and COLOR_MCP_LOG_LEVEL
//
// An example file:
//
//	outputMode: object
//	grayscaleMethod: average
//	logLevel: debug
//	swatchSize: 64
//
// Values are validated after merging; an invalid output mode or grayscale
// method fails the load with the colorutil sentinel error.
package config

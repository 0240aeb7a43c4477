package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var (
	colorProperty = map[string]interface{}{
		"type":        "string",
		"description": "Color as #rrggbb, #rgb, rgb(r, g, b), rgba(r, g, b, a), hsl(h, s%, l%) or hsla(h, s%, l%, a)",
	}
	shapeProperty = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"string", "object"},
		"description": "Requested result shape. Ignored unless the server output mode is 'auto'. Default 'string'",
	}
	pathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	grayscaleProperty = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"luminosity", "average", "lightness"},
		"description": "Grayscale formula (default from server config, normally 'luminosity')",
	}
	alphaProperty = map[string]interface{}{
		"type":        "number",
		"description": "Optional alpha 0-1. When given, rgba/hsla forms are produced",
	}
)

func channelProperty(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": desc}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_parse",
			Description: "Parse a color in any supported notation and return it as hex, rgb(a) and hsl(a) plus channel values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_to_rgb",
			Description: "Convert a hex color (#rrggbb or #rgb) to RGB, as an 'rgb(r, g, b)' string or an {r, g, b} object.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, e.g. #9f3ff1 or #F92",
					},
					"shape": shapeProperty,
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_to_hsl",
			Description: "Convert RGB channels to HSL, as an 'hsl(h, s%, l%)' string or an {h, s, l} object.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r":     channelProperty("Red 0-255"),
					"g":     channelProperty("Green 0-255"),
					"b":     channelProperty("Blue 0-255"),
					"shape": shapeProperty,
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_to_hex",
			Description: "Convert a color in any supported notation to lowercase #rrggbb. Alpha is dropped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert HSL channels to RGB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": channelProperty("Hue 0-360"),
					"s": channelProperty("Saturation 0-100"),
					"l": channelProperty("Lightness 0-100"),
					"a": alphaProperty,
				},
				"required": []string{"h", "s", "l"},
			},
		},
		{
			Name:        "color_format",
			Description: "Format RGB channels (and optional alpha) as hex, rgb(a) and hsl(a) strings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": channelProperty("Red 0-255"),
					"g": channelProperty("Green 0-255"),
					"b": channelProperty("Blue 0-255"),
					"a": alphaProperty,
				},
				"required": []string{"r", "g", "b"},
			},
		},

		// Operations
		{
			Name:        "color_invert",
			Description: "Invert a color (each channel becomes 255 - channel). Alpha is kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_grayscale",
			Description: "Reduce a color to gray using the luminosity, average or lightness formula.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProperty,
					"method": grayscaleProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_random",
			Description: "Generate uniformly random colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to generate (default 1, max 100)",
						"default":     1,
					},
				},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a solid square of the color as a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length in pixels (default from server config, normally 32)",
					},
				},
				"required": []string{"color"},
			},
		},

		// Output mode
		{
			Name:        "color_set_output_mode",
			Description: "Set this server's output mode. 'object' or 'string' override the per-call shape; 'auto' honours it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"mode": map[string]interface{}{
						"type": "string",
						"enum": []string{"auto", "object", "string"},
					},
				},
				"required": []string{"mode"},
			},
		},
		{
			Name:        "color_get_output_mode",
			Description: "Return this server's current output mode.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Image Operations
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel as hex, rgb(a) and hsl(a).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color values at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most common colors of an image or region (palette extraction).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_invert",
			Description: "Return the image with every pixel inverted, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_grayscale",
			Description: "Return the image reduced to grayscale, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"method": grayscaleProperty,
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

const maxRandomCount = 100

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_invert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Conversion
	case "color_parse":
		return s.handleColorParse(args)
	case "color_to_rgb":
		return s.handleColorToRGB(args)
	case "color_to_hsl":
		return s.handleColorToHSL(args)
	case "color_to_hex":
		return s.handleColorToHex(args)
	case "color_hsl_to_rgb":
		return s.handleColorHSLToRGB(args)
	case "color_format":
		return s.handleColorFormat(args)

	// Operations
	case "color_invert":
		return s.handleColorInvert(args)
	case "color_grayscale":
		return s.handleColorGrayscale(args)
	case "color_random":
		return s.handleColorRandom(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Output mode
	case "color_set_output_mode":
		return s.handleSetOutputMode(args)
	case "color_get_output_mode":
		return outputModeResult{Mode: s.converter().Config().OutputMode}, nil

	// Image Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_invert":
		return s.handleImageInvert(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Conversion Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorutil.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return imaging.Describe(c), nil
}

type colorToRGBArgs struct {
	Hex   string `json:"hex"`
	Shape string `json:"shape"`
}

func (s *Server) handleColorToRGB(args json.RawMessage) (interface{}, error) {
	var a colorToRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	shape, err := colorutil.ParseShape(a.Shape)
	if err != nil {
		return nil, err
	}
	return s.converter().ToRGB(a.Hex, shape)
}

type colorToHSLArgs struct {
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
	Shape string `json:"shape"`
}

func (s *Server) handleColorToHSL(args json.RawMessage) (interface{}, error) {
	var a colorToHSLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	shape, err := colorutil.ParseShape(a.Shape)
	if err != nil {
		return nil, err
	}
	return s.converter().ToHSL(a.R, a.G, a.B, shape), nil
}

type hexResult struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorToHex(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorutil.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return hexResult{Hex: colorutil.FormatHex(c)}, nil
}

type hslArgs struct {
	H int      `json:"h"`
	S int      `json:"s"`
	L int      `json:"l"`
	A *float64 `json:"a,omitempty"`
}

func (s *Server) handleColorHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a hslArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	hsl := colorutil.HSL(a.H, a.S, a.L)
	if a.A != nil {
		hsl = hsl.WithAlpha(*a.A)
	}
	return imaging.Describe(colorutil.HSLToRGB(hsl)), nil
}

type rgbArgs struct {
	R int      `json:"r"`
	G int      `json:"g"`
	B int      `json:"b"`
	A *float64 `json:"a,omitempty"`
}

func (s *Server) handleColorFormat(args json.RawMessage) (interface{}, error) {
	var a rgbArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c := colorutil.RGB(a.R, a.G, a.B)
	if a.A != nil {
		c = c.WithAlpha(*a.A)
	}
	return imaging.Describe(c), nil
}

// === Operation Handlers ===

func (s *Server) handleColorInvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorutil.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return imaging.Describe(colorutil.Invert(c)), nil
}

type colorGrayscaleArgs struct {
	Color  string `json:"color"`
	Method string `json:"method"`
}

func (s *Server) handleColorGrayscale(args json.RawMessage) (interface{}, error) {
	var a colorGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	method, err := s.grayscaleMethod(a.Method)
	if err != nil {
		return nil, err
	}
	c, err := colorutil.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	gray, err := colorutil.ToGrayscale(c, method)
	if err != nil {
		return nil, err
	}
	return imaging.Describe(gray), nil
}

// grayscaleMethod resolves an optional per-call method against the server default.
func (s *Server) grayscaleMethod(name string) (colorutil.GrayscaleMethod, error) {
	if name == "" {
		return s.grayscale, nil
	}
	return colorutil.ParseGrayscaleMethod(name)
}

type colorRandomArgs struct {
	Count int `json:"count"`
}

type randomColorsResult struct {
	Colors []imaging.ColorSample `json:"colors"`
}

func (s *Server) handleColorRandom(args json.RawMessage) (interface{}, error) {
	var a colorRandomArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 1
	}
	if a.Count < 0 || a.Count > maxRandomCount {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", maxRandomCount, a.Count)
	}

	colors := make([]imaging.ColorSample, 0, a.Count)
	for i := 0; i < a.Count; i++ {
		colors = append(colors, imaging.Describe(s.rand.RandomRGB()))
	}
	return randomColorsResult{Colors: colors}, nil
}

type colorSwatchArgs struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = s.swatchSize
	}
	c, err := colorutil.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return imaging.Swatch(c, a.Size)
}

// === Output Mode Handlers ===

type outputModeArgs struct {
	Mode string `json:"mode"`
}

type outputModeResult struct {
	Mode colorutil.OutputMode `json:"mode"`
}

func (s *Server) handleSetOutputMode(args json.RawMessage) (interface{}, error) {
	var a outputModeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := s.setOutputMode(a.Mode)
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("output mode set to %s", mode)
	}
	return outputModeResult{Mode: mode}, nil
}

// === Image Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInvert(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.InvertImage(img)
}

type imageGrayscaleArgs struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	method, err := s.grayscaleMethod(a.Method)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GrayscaleImage(img, method)
}

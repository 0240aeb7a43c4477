package colorutil

import (
	"encoding/json"
	"fmt"
)

// OutputMode decides the return shape of dual-shape operations.
type OutputMode string

const (
	// ModeAuto honours the per-call Shape and falls back to ShapeString.
	ModeAuto OutputMode = "auto"
	// ModeObject always returns channel sets.
	ModeObject OutputMode = "object"
	// ModeString always returns formatted strings.
	ModeString OutputMode = "string"
)

// Shape is the return shape requested by a single call.
type Shape string

const (
	ShapeDefault Shape = ""
	ShapeString  Shape = "string"
	ShapeObject  Shape = "object"
)

// ParseOutputMode validates a mode name.
func ParseOutputMode(s string) (OutputMode, error) {
	switch m := OutputMode(s); m {
	case ModeAuto, ModeObject, ModeString:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutputType, s)
}

// ParseShape validates a per-call shape request. The empty string means
// "not supplied".
func ParseShape(s string) (Shape, error) {
	switch sh := Shape(s); sh {
	case ShapeDefault, ShapeString, ShapeObject:
		return sh, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutputType, s)
}

// Resolve picks the shape for one call. In auto mode the request wins and
// defaults to ShapeString; any other mode overrides the request.
func (m OutputMode) Resolve(requested Shape) Shape {
	if m == ModeAuto || m == "" {
		if requested == ShapeDefault {
			return ShapeString
		}
		return requested
	}
	return Shape(m)
}

// Config carries the options shared by a set of conversions.
type Config struct {
	OutputMode OutputMode `json:"output_mode" yaml:"outputMode"`
}

// DefaultConfig returns the configuration with OutputMode set to auto.
func DefaultConfig() Config {
	return Config{OutputMode: ModeAuto}
}

// Result holds the outcome of a dual-shape operation. Value is always set;
// Text is set only when Shape is ShapeString.
type Result[T any] struct {
	Shape Shape
	Text  string
	Value T
}

// MarshalJSON encodes the result as a JSON string or as the channel object.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Shape == ShapeObject {
		return json.Marshal(r.Value)
	}
	return json.Marshal(r.Text)
}

// Converter runs dual-shape conversions under a fixed Config.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	cfg Config
}

// NewConverter returns a converter bound to cfg.
func NewConverter(cfg Config) *Converter {
	if cfg.OutputMode == "" {
		cfg.OutputMode = ModeAuto
	}
	return &Converter{cfg: cfg}
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// WithOutputMode returns a converter using mode. The receiver is unchanged.
func (c *Converter) WithOutputMode(mode string) (*Converter, error) {
	m, err := ParseOutputMode(mode)
	if err != nil {
		return nil, err
	}
	cfg := c.cfg
	cfg.OutputMode = m
	return &Converter{cfg: cfg}, nil
}

// ToRGB parses a hex color and returns it as "rgb(...)" text or as channels.
func (c *Converter) ToRGB(hex string, shape Shape) (Result[RGBA], error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Result[RGBA]{}, err
	}
	return rgbResult(rgb, c.cfg.OutputMode.Resolve(shape)), nil
}

// ToHSL converts RGB channels and returns "hsl(...)" text or HSL channels.
func (c *Converter) ToHSL(r, g, b int, shape Shape) Result[HSLA] {
	return hslResult(RGBToHSL(RGB(r, g, b)), c.cfg.OutputMode.Resolve(shape))
}

// ToRGBText converts a hex color to an "rgb(r, g, b)" string.
func ToRGBText(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return FormatRGB(rgb), nil
}

// ToRGBChannels converts a hex color to RGB channels.
func ToRGBChannels(hex string) (RGBA, error) {
	return ParseHex(hex)
}

// ToHSLText converts RGB channels to an "hsl(h, s%, l%)" string.
func ToHSLText(r, g, b int) string {
	return FormatHSL(RGBToHSL(RGB(r, g, b)))
}

// ToHSLChannels converts RGB channels to HSL channels.
func ToHSLChannels(r, g, b int) HSLA {
	return RGBToHSL(RGB(r, g, b))
}

func rgbResult(c RGBA, shape Shape) Result[RGBA] {
	if shape == ShapeObject {
		return Result[RGBA]{Shape: ShapeObject, Value: c}
	}
	return Result[RGBA]{Shape: ShapeString, Text: FormatRGB(c), Value: c}
}

func hslResult(c HSLA, shape Shape) Result[HSLA] {
	if shape == ShapeObject {
		return Result[HSLA]{Shape: ShapeObject, Value: c}
	}
	return Result[HSLA]{Shape: ShapeString, Text: FormatHSL(c), Value: c}
}

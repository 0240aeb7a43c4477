package imaging

import (
	"fmt"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

// MaxSwatchSize bounds the edge length accepted by Swatch.
const MaxSwatchSize = 1024

// SwatchResult is a solid color square plus the color's text forms.
type SwatchResult struct {
	ImageResult
	Hex string `json:"hex"`
	RGB string `json:"rgb"`
	HSL string `json:"hsl"`
}

// Swatch renders a size x size PNG filled with c. Channels outside 0-255
// are clamped for drawing; the text forms report c unchanged.
func Swatch(c colorutil.RGBA, size int) (*SwatchResult, error) {
	if size <= 0 || size > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size must be between 1 and %d, got %d", MaxSwatchSize, size)
	}

	alpha := uint8(255)
	if c.HasAlpha && c.A >= 0 && c.A <= 1 {
		alpha = uint8(math.Round(c.A * 255))
	}
	fill := color.NRGBA{R: clamp8(c.R), G: clamp8(c.G), B: clamp8(c.B), A: alpha}

	img, err := encodePNG(imaging.New(size, size, fill))
	if err != nil {
		return nil, err
	}

	return &SwatchResult{
		ImageResult: *img,
		Hex:         colorutil.FormatHex(c),
		RGB:         colorutil.FormatRGB(c),
		HSL:         colorutil.FormatHSL(colorutil.RGBToHSL(c)),
	}, nil
}

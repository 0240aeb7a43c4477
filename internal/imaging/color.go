package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

// ColorSample is a color in every encoding the engine produces.
type ColorSample struct {
	Hex         string         `json:"hex"` // "#rrggbb", alpha excluded
	RGB         string         `json:"rgb"` // "rgb(...)" or "rgba(...)" for translucent pixels
	HSL         string         `json:"hsl"` // "hsl(...)" or "hsla(...)"
	Channels    colorutil.RGBA `json:"channels"`
	HSLChannels colorutil.HSLA `json:"hsl_channels"`
}

// SampleColor reads the pixel at (x, y).
//
// Returns an error if the coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	s := Describe(pixelColor(img.At(x, y)))
	return &s, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorSample is a ColorSample together with where it was taken.
type LabeledColorSample struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorSample `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorSample `json:"samples"`
}

// SampleColorsMulti samples every point. If any point is out of bounds no
// partial result is returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorSample, 0, len(points))

	for _, p := range points {
		sample, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorSample{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *sample,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle; (X1, Y1) inclusive, (X2, Y2) exclusive.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency is a quantized color and its share of the pixels.
type ColorFrequency struct {
	Hex        string  `json:"hex"`
	RGB        string  `json:"rgb"`
	HSL        string  `json:"hsl"`
	Percentage float64 `json:"percentage"` // 0-100
}

// DominantColorsResult lists colors by descending frequency.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in img, or
// in region when it is non-nil.
//
// Channels are quantized to multiples of 16 before counting, so #F0F0F0 and
// #FAFAFA fall in the same bucket. Ties keep the hex order so results are
// deterministic.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	src := img
	if region != nil {
		rect := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if rect.Empty() || !rect.In(img.Bounds()) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) is empty or outside image bounds",
				region.X1, region.Y1, region.X2, region.Y2)
		}
		src = imaging.Crop(img, rect)
	}

	bounds := src.Bounds()
	counts := make(map[colorutil.RGBA]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := pixelColor(src.At(x, y))
			key := colorutil.RGB(c.R/16*16, c.G/16*16, c.B/16*16)
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        colorutil.FormatHex(c),
			RGB:        colorutil.FormatRGB(c),
			HSL:        colorutil.FormatHSL(colorutil.RGBToHSL(c)),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// Describe renders c in every encoding. It is also used for colors that do
// not come from an image.
func Describe(c colorutil.RGBA) ColorSample {
	hsl := colorutil.RGBToHSL(c)
	return ColorSample{
		Hex:         colorutil.FormatHex(c),
		RGB:         colorutil.FormatRGB(c),
		HSL:         colorutil.FormatHSL(hsl),
		Channels:    c,
		HSLChannels: hsl,
	}
}

// pixelColor converts any color to 8-bit straight-alpha channels. Opaque
// pixels carry no alpha; others carry alpha rounded to two decimals.
func pixelColor(c color.Color) colorutil.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	rgb := colorutil.RGB(int(n.R), int(n.G), int(n.B))
	if n.A != 255 {
		rgb = rgb.WithAlpha(float64(int(float64(n.A)/255*100+0.5)) / 100)
	}
	return rgb
}

package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

// InvertImage returns img with every pixel passed through colorutil.Invert.
// Alpha is preserved.
func InvertImage(img image.Image) (*ImageResult, error) {
	out := applyRGB(img, func(c colorutil.RGBA) colorutil.RGBA {
		return colorutil.Invert(c)
	})
	return encodePNG(out)
}

// GrayscaleImage returns img reduced to gray with colorutil.ToGrayscale.
// The method is validated before any pixel is touched.
func GrayscaleImage(img image.Image, method colorutil.GrayscaleMethod) (*ImageResult, error) {
	if _, err := colorutil.ToGrayscale(colorutil.RGB(0, 0, 0), method); err != nil {
		return nil, err
	}

	out := applyRGB(img, func(c colorutil.RGBA) colorutil.RGBA {
		gray, _ := colorutil.ToGrayscale(c, method)
		return gray
	})
	return encodePNG(out)
}

// applyRGB runs fn over straight-alpha channels. bild hands out
// premultiplied color.RGBA, so pixels are converted on the way in and out.
func applyRGB(img image.Image, fn func(colorutil.RGBA) colorutil.RGBA) *image.RGBA {
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		res := fn(colorutil.RGB(int(n.R), int(n.G), int(n.B)))
		out := color.NRGBA{R: clamp8(res.R), G: clamp8(res.G), B: clamp8(res.B), A: n.A}
		return color.RGBAModel.Convert(out).(color.RGBA)
	})
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

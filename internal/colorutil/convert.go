package colorutil

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToHSL converts an RGB channel set to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to the 0-1 range
//  2. Find the min and max components
//  3. Lightness is (max + min) / 2
//  4. Saturation depends on whether lightness is above one half
//  5. Hue depends on which component is max
//
// When several channels tie for max, the first of r, g, b wins. Pure yellow
// therefore takes the red branch. All math stays in floating point; H, S and
// L are rounded only when the result is built. Alpha passes through.
//
// Channel ranges are not validated.
func RGBToHSL(c RGBA) HSLA {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	light := (max + min) / 2

	var hue, sat float64
	if max != min {
		if light > 0.5 {
			sat = delta / (2 - max - min)
		} else {
			sat = delta / (max + min)
		}

		switch max {
		case r:
			hue = (g - b) / delta
			if g < b {
				hue += 6
			}
		case g:
			hue = (b-r)/delta + 2
		case b:
			hue = (r-g)/delta + 4
		}
		hue /= 6
	}

	return HSLA{
		H:        int(math.Round(hue * 360)),
		S:        int(math.Round(sat * 100)),
		L:        int(math.Round(light * 100)),
		A:        c.A,
		HasAlpha: c.HasAlpha,
	}
}

// HSLToRGB converts an HSL channel set to RGB, rounding each channel to the
// nearest 8-bit value. Alpha passes through.
//
// Because RGBToHSL rounds to whole degrees and percents, a round trip is
// lossy; most colors come back within one unit per channel.
func HSLToRGB(c HSLA) RGBA {
	r, g, b := colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).RGB255()
	return RGBA{
		R:        int(r),
		G:        int(g),
		B:        int(b),
		A:        c.A,
		HasAlpha: c.HasAlpha,
	}
}

package colorutil

import (
	"fmt"
	"math"
)

// GrayscaleMethod selects the formula used by ToGrayscale.
type GrayscaleMethod string

const (
	// Luminosity weights channels by perceived brightness: 0.21R + 0.72G + 0.07B.
	Luminosity GrayscaleMethod = "luminosity"
	// Average is (R + G + B) / 3.
	Average GrayscaleMethod = "average"
	// Lightness is (max(R,G,B) + min(R,G,B)) / 2.
	Lightness GrayscaleMethod = "lightness"
)

// ParseGrayscaleMethod validates a method name. The empty string selects
// Luminosity.
func ParseGrayscaleMethod(s string) (GrayscaleMethod, error) {
	switch m := GrayscaleMethod(s); m {
	case "":
		return Luminosity, nil
	case Luminosity, Average, Lightness:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGrayscaleMethod, s)
}

// Invert replaces every channel with 255 - channel. Alpha is untouched.
func Invert(c RGBA) RGBA {
	c.R = 255 - c.R
	c.G = 255 - c.G
	c.B = 255 - c.B
	return c
}

// ToGrayscale reduces c to a gray of equal R, G and B using method.
// An empty method means Luminosity. Alpha is untouched.
func ToGrayscale(c RGBA, method GrayscaleMethod) (RGBA, error) {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	var grey float64
	switch method {
	case Luminosity, "":
		grey = r*0.21 + g*0.72 + b*0.07
	case Average:
		grey = (r + g + b) / 3
	case Lightness:
		grey = (math.Max(r, math.Max(g, b)) + math.Min(r, math.Min(g, b))) / 2
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidGrayscaleMethod, string(method))
	}

	v := int(math.Round(grey))
	c.R, c.G, c.B = v, v, v
	return c, nil
}

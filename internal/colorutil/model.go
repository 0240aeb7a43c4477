package colorutil

// RGBA is a red/green/blue channel set with optional alpha.
//
// R, G and B are nominally 0-255. A is opacity in [0,1] and defaults to 1.
// HasAlpha records whether alpha was present in the source value; it is what
// makes FormatRGB emit the rgba(...) form.
type RGBA struct {
	R        int     `json:"r"`        // Red: 0-255
	G        int     `json:"g"`        // Green: 0-255
	B        int     `json:"b"`        // Blue: 0-255
	A        float64 `json:"a"`        // Alpha: 0 (transparent) to 1 (opaque)
	HasAlpha bool    `json:"-"`
}

// HSLA is a hue/saturation/lightness channel set with optional alpha.
type HSLA struct {
	H        int     `json:"h"` // Hue: 0-360 degrees
	S        int     `json:"s"` // Saturation: 0-100 percent
	L        int     `json:"l"` // Lightness: 0-100 percent
	A        float64 `json:"a"` // Alpha: 0-1
	HasAlpha bool    `json:"-"`
}

// RGB returns an opaque channel set without alpha.
func RGB(r, g, b int) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// HSL returns an opaque HSL channel set without alpha.
func HSL(h, s, l int) HSLA {
	return HSLA{H: h, S: s, L: l, A: 1}
}

// WithAlpha returns a copy of c carrying an explicit alpha value.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	c.HasAlpha = true
	return c
}

// WithAlpha returns a copy of c carrying an explicit alpha value.
func (c HSLA) WithAlpha(a float64) HSLA {
	c.A = a
	c.HasAlpha = true
	return c
}

// String implements fmt.Stringer using FormatRGB.
func (c RGBA) String() string {
	return FormatRGB(c)
}

// String implements fmt.Stringer using FormatHSL.
func (c HSLA) String() string {
	return FormatHSL(c)
}

// Package colorutil converts colors between hex, RGB(A) and HSL(A) encodings.
//
// The package parses the CSS-like color strings used by the server and CLI,
// converts RGB channel sets to HSL (and back), formats channel sets into
// canonical strings and offers a few derived operations: inversion,
// grayscale reduction and random color generation.
//
// # Grammars
//
// The accepted string forms are:
//
//	hex   := '#' HEX{6} | '#' HEX{3}
//	rgb   := 'rgb(' INT ',' INT ',' INT ')'
//	rgba  := 'rgba(' INT ',' INT ',' INT ',' FLOAT ')'
//	hsl   := 'hsl(' INT ',' INT '%,' INT '%)'
//	hsla  := 'hsla(' INT ',' INT '%,' INT '%,' FLOAT ')'
//
// Whitespace is permitted around every field inside the parentheses. INT is
// one to three decimal digits; values are not range checked, so rgb(999,0,0)
// parses. Hex digits are case-insensitive, keywords are not.
//
// # Output Shape
//
// Dual-shape operations (ToRGB, ToHSL) return either a formatted string or a
// channel set. The choice is made by a Config value passed to NewConverter,
// never by package state:
//
//	conv := colorutil.NewConverter(colorutil.DefaultConfig())
//	res, err := conv.ToRGB("#f92", colorutil.ShapeObject)
//
// Callers that know the shape they want can use ToRGBText, ToRGBChannels,
// ToHSLText and ToHSLChannels directly.
//
// # Error Handling
//
// Every failure wraps one of the sentinel errors (ErrInvalidHexColor,
// ErrInvalidRgbString, ErrInvalidHslString, ErrInvalidGrayscaleMethod,
// ErrInvalidOutputType). Use errors.Is to classify them.
//
// # Thread Safety
//
// All functions are pure. Generator is safe for concurrent use.
package colorutil

package colorutil

import "errors"

// Sentinel errors returned (wrapped) by the parsers and option validators.
var (
	ErrInvalidHexColor        = errors.New("not a valid hex color")
	ErrInvalidRgbString       = errors.New("not a valid rgb(a) string")
	ErrInvalidHslString       = errors.New("not a valid hsl(a) string")
	ErrInvalidGrayscaleMethod = errors.New("not a valid grayscale method")
	ErrInvalidOutputType      = errors.New("not a valid output type")
)

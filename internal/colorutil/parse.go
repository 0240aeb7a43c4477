package colorutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#RRGGBB" or "#RGB" (hex digits in either case).
//
// In the short form each digit d expands to d*17, so "#F92" becomes
// {255, 153, 34}. The result is opaque and carries no alpha.
func ParseHex(text string) (RGBA, error) {
	if len(text) == 0 || text[0] != '#' {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, text)
	}
	digits := text[1:]

	var ch [3]int
	switch len(digits) {
	case 6:
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(digits[2*i])
			lo, ok2 := hexNibble(digits[2*i+1])
			if !ok1 || !ok2 {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, text)
			}
			ch[i] = hi<<4 | lo
		}
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexNibble(digits[i])
			if !ok {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, text)
			}
			ch[i] = d * 17
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, text)
	}

	return RGB(ch[0], ch[1], ch[2]), nil
}

// ParseRGBString parses "rgb(r, g, b)" or "rgba(r, g, b, a)".
//
// Channels are one to three decimal digits and alpha is a decimal number.
// Strings without alpha yield A=1 and HasAlpha=false.
func ParseRGBString(text string) (RGBA, error) {
	f, ok := scanFunc(text, "rgb", [3]bool{false, false, false})
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidRgbString, text)
	}
	c := RGB(f.vals[0], f.vals[1], f.vals[2])
	if f.hasAlpha {
		c = c.WithAlpha(f.alpha)
	}
	return c, nil
}

// ParseHSLString parses "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)".
func ParseHSLString(text string) (HSLA, error) {
	f, ok := scanFunc(text, "hsl", [3]bool{false, true, true})
	if !ok {
		return HSLA{}, fmt.Errorf("%w: %q", ErrInvalidHslString, text)
	}
	c := HSL(f.vals[0], f.vals[1], f.vals[2])
	if f.hasAlpha {
		c = c.WithAlpha(f.alpha)
	}
	return c, nil
}

// Parse accepts any of the supported encodings and returns RGB channels.
// HSL input is converted with HSLToRGB. The error names the grammar that
// was attempted, chosen by the text's prefix.
func Parse(text string) (RGBA, error) {
	switch {
	case strings.HasPrefix(text, "#"):
		return ParseHex(text)
	case strings.HasPrefix(text, "rgb"):
		return ParseRGBString(text)
	case strings.HasPrefix(text, "hsl"):
		hsl, err := ParseHSLString(text)
		if err != nil {
			return RGBA{}, err
		}
		return HSLToRGB(hsl), nil
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, text)
	}
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// funcValue is the result of scanning a three-channel functional notation.
type funcValue struct {
	vals     [3]int
	alpha    float64
	hasAlpha bool
}

// scanFunc scans "<name>(a, b, c)" or "<name>a(a, b, c, alpha)".
// percent[i] requires a '%' after the i-th channel.
func scanFunc(text, name string, percent [3]bool) (funcValue, bool) {
	var f funcValue
	sc := &scanner{s: text}

	switch {
	case sc.consume(name + "a("):
		f.hasAlpha = true
	case sc.consume(name + "("):
	default:
		return f, false
	}

	for i := 0; i < 3; i++ {
		sc.skipSpace()
		v, ok := sc.integer()
		if !ok {
			return f, false
		}
		f.vals[i] = v
		sc.skipSpace()
		if percent[i] {
			if !sc.consume("%") {
				return f, false
			}
			sc.skipSpace()
		}
		if i < 2 || f.hasAlpha {
			if !sc.consume(",") {
				return f, false
			}
		}
	}

	if f.hasAlpha {
		sc.skipSpace()
		a, ok := sc.float()
		if !ok {
			return f, false
		}
		f.alpha = a
		sc.skipSpace()
	}

	if !sc.consume(")") || !sc.eof() {
		return f, false
	}
	return f, true
}

// scanner is a cursor over an ASCII color string.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.s)
}

func (sc *scanner) consume(lit string) bool {
	if strings.HasPrefix(sc.s[sc.pos:], lit) {
		sc.pos += len(lit)
		return true
	}
	return false
}

func (sc *scanner) skipSpace() {
	for !sc.eof() {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			sc.pos++
		default:
			return
		}
	}
}

// integer reads one to three decimal digits.
func (sc *scanner) integer() (int, bool) {
	start := sc.pos
	v := 0
	for !sc.eof() && isDigit(sc.s[sc.pos]) {
		v = v*10 + int(sc.s[sc.pos]-'0')
		sc.pos++
	}
	n := sc.pos - start
	return v, n >= 1 && n <= 3
}

// float reads a run of digits and dots and parses it as a decimal number.
func (sc *scanner) float() (float64, bool) {
	start := sc.pos
	for !sc.eof() && (isDigit(sc.s[sc.pos]) || sc.s[sc.pos] == '.') {
		sc.pos++
	}
	if sc.pos == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package colorutil

import (
	"strconv"
	"strings"
)

// FormatHex renders c as "#rrggbb" in lower case. Alpha is dropped.
//
// The channels are packed below a sentinel bit at 1<<24 so that the hex
// string always has seven digits; the sentinel digit is then stripped,
// which leaves the zero padding in place.
func FormatHex(c RGBA) string {
	packed := int64(1)<<24 + int64(c.R)<<16 + int64(c.G)<<8 + int64(c.B)
	return "#" + strconv.FormatInt(packed, 16)[1:]
}

// FormatRGB renders "rgb(r, g, b)", or "rgba(r, g, b, a)" when the value
// carries an alpha in [0,1].
func FormatRGB(c RGBA) string {
	var sb strings.Builder
	withAlpha := hasValidAlpha(c.HasAlpha, c.A)
	if withAlpha {
		sb.WriteString("rgba(")
	} else {
		sb.WriteString("rgb(")
	}
	sb.WriteString(strconv.Itoa(c.R))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(c.G))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(c.B))
	if withAlpha {
		sb.WriteString(", ")
		sb.WriteString(formatAlpha(c.A))
	}
	sb.WriteByte(')')
	return sb.String()
}

// FormatHSL renders "hsl(h, s%, l%)", or "hsla(h, s%, l%, a)" when the value
// carries an alpha in [0,1].
func FormatHSL(c HSLA) string {
	var sb strings.Builder
	withAlpha := hasValidAlpha(c.HasAlpha, c.A)
	if withAlpha {
		sb.WriteString("hsla(")
	} else {
		sb.WriteString("hsl(")
	}
	sb.WriteString(strconv.Itoa(c.H))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(c.S))
	sb.WriteString("%, ")
	sb.WriteString(strconv.Itoa(c.L))
	sb.WriteByte('%')
	if withAlpha {
		sb.WriteString(", ")
		sb.WriteString(formatAlpha(c.A))
	}
	sb.WriteByte(')')
	return sb.String()
}

func hasValidAlpha(present bool, a float64) bool {
	return present && a >= 0 && a <= 1
}

// formatAlpha uses the shortest decimal that round-trips: 0.75, 0.08, 1.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

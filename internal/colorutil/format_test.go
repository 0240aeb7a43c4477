package colorutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHex(t *testing.T) {
	tests := []struct {
		in   RGBA
		want string
	}{
		{RGB(255, 255, 255), "#ffffff"},
		{RGB(0, 0, 0), "#000000"},
		{RGB(103, 232, 66), "#67e842"},
		{RGB(1, 2, 3), "#010203"},
		{RGB(0, 0, 15), "#00000f"},
		{RGB(16, 0, 0).WithAlpha(0.5), "#100000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHex(tt.in))
		})
	}
}

func TestFormatHex_RoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#FFFFFF", "#9f3ff1", "#0A0B0C", "#67E842", "#00ff00", "#123456"}
	for _, in := range inputs {
		c, err := ParseHex(in)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(in), FormatHex(c))
	}
}

func TestFormatRGB(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want string
	}{
		{"no alpha", RGB(220, 100, 73), "rgb(220, 100, 73)"},
		{"alpha", RGB(34, 78, 255).WithAlpha(0.75), "rgba(34, 78, 255, 0.75)"},
		{"explicit opaque alpha", RGB(1, 2, 3).WithAlpha(1), "rgba(1, 2, 3, 1)"},
		{"transparent", RGB(1, 2, 3).WithAlpha(0), "rgba(1, 2, 3, 0)"},
		{"alpha out of range", RGB(1, 2, 3).WithAlpha(1.5), "rgb(1, 2, 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRGB(tt.in))
		})
	}
}

func TestFormatHSL(t *testing.T) {
	tests := []struct {
		name string
		in   HSLA
		want string
	}{
		{"no alpha", HSL(220, 100, 50), "hsl(220, 100%, 50%)"},
		{"alpha", HSL(360, 75, 20).WithAlpha(0.08), "hsla(360, 75%, 20%, 0.08)"},
		{"alpha out of range", HSL(1, 2, 3).WithAlpha(-0.1), "hsl(1, 2%, 3%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHSL(tt.in))
		})
	}
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	rgbInputs := []string{"rgb(244, 14, 0)", "rgba(100, 50, 255, 0.17)"}
	for _, in := range rgbInputs {
		c, err := ParseRGBString(in)
		require.NoError(t, err)
		assert.Equal(t, in, c.String())
	}

	hslInputs := []string{"hsl(120, 100%, 50%)", "hsla(240, 75%, 80%, 0.84)"}
	for _, in := range hslInputs {
		c, err := ParseHSLString(in)
		require.NoError(t, err)
		assert.Equal(t, in, c.String())
	}
}

package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	assert.Equal(t, RGB(55, 155, 180), Invert(RGB(200, 100, 75)))
	assert.Equal(t, RGB(255, 255, 255), Invert(RGB(0, 0, 0)))

	withAlpha := Invert(RGB(0, 128, 255).WithAlpha(0.4))
	assert.Equal(t, RGB(255, 127, 0).WithAlpha(0.4), withAlpha)
}

func TestToGrayscale(t *testing.T) {
	tests := []struct {
		name   string
		in     RGBA
		method GrayscaleMethod
		want   int
	}{
		{"luminosity default", RGB(255, 0, 0), "", 54},
		{"luminosity", RGB(255, 0, 0), Luminosity, 54},
		{"lightness", RGB(255, 0, 0), Lightness, 128},
		{"average", RGB(200, 100, 30), Average, 110},
		{"white", RGB(255, 255, 255), Luminosity, 255},
		{"black", RGB(0, 0, 0), Average, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToGrayscale(tt.in, tt.method)
			require.NoError(t, err)
			assert.Equal(t, RGB(tt.want, tt.want, tt.want), got)
		})
	}
}

func TestToGrayscale_KeepsAlpha(t *testing.T) {
	got, err := ToGrayscale(RGB(255, 0, 0).WithAlpha(0.5), Lightness)
	require.NoError(t, err)
	assert.Equal(t, RGB(128, 128, 128).WithAlpha(0.5), got)
}

func TestToGrayscale_InvalidMethod(t *testing.T) {
	_, err := ToGrayscale(RGB(100, 255, 0), "foobar")
	assert.ErrorIs(t, err, ErrInvalidGrayscaleMethod)
}

func TestParseGrayscaleMethod(t *testing.T) {
	m, err := ParseGrayscaleMethod("")
	require.NoError(t, err)
	assert.Equal(t, Luminosity, m)

	for _, name := range []string{"luminosity", "average", "lightness"} {
		m, err := ParseGrayscaleMethod(name)
		require.NoError(t, err)
		assert.Equal(t, GrayscaleMethod(name), m)
	}

	_, err = ParseGrayscaleMethod("sepia")
	assert.ErrorIs(t, err, ErrInvalidGrayscaleMethod)
}

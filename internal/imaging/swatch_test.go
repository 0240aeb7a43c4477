package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

func TestSwatch(t *testing.T) {
	result, err := Swatch(colorutil.RGB(65, 234, 208), 16)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}

	if result.Width != 16 || result.Height != 16 {
		t.Errorf("dimensions: got %dx%d, want 16x16", result.Width, result.Height)
	}
	if result.Hex != "#41ead0" {
		t.Errorf("Hex: got %s, want #41ead0", result.Hex)
	}
	if result.HSL != "hsl(171, 80%, 59%)" {
		t.Errorf("HSL: got %s", result.HSL)
	}

	got := nrgbaAt(decodeResult(t, &result.ImageResult), 15, 15)
	if got != (color.NRGBA{65, 234, 208, 255}) {
		t.Errorf("pixel: got %v", got)
	}
}

func TestSwatch_Alpha(t *testing.T) {
	result, err := Swatch(colorutil.RGB(0, 0, 255).WithAlpha(0.2), 4)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}
	if result.RGB != "rgba(0, 0, 255, 0.2)" {
		t.Errorf("RGB: got %s", result.RGB)
	}

	got := nrgbaAt(decodeResult(t, &result.ImageResult), 0, 0)
	if got.A != 51 {
		t.Errorf("alpha: got %d, want 51", got.A)
	}
}

func TestSwatch_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, MaxSwatchSize + 1} {
		if _, err := Swatch(colorutil.RGB(0, 0, 0), size); err == nil {
			t.Errorf("Swatch(size=%d) should fail", size)
		}
	}
}

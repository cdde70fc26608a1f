package wmf

import (
	"image/color"
	"testing"
)

func TestHatchPattern(t *testing.T) {
	fg := Color{R: 255}
	tests := []struct {
		style HatchStyle
		on    [][2]int
		off   [][2]int
	}{
		{HatchHorizontal, [][2]int{{0, 4}, {7, 4}}, [][2]int{{4, 0}, {0, 0}}},
		{HatchVertical, [][2]int{{4, 0}, {4, 7}}, [][2]int{{0, 4}, {0, 0}}},
		{HatchFDiagonal, [][2]int{{0, 0}, {7, 7}}, [][2]int{{7, 0}, {1, 0}}},
		{HatchBDiagonal, [][2]int{{7, 0}, {0, 7}}, [][2]int{{0, 0}, {7, 7}}},
		{HatchCross, [][2]int{{4, 0}, {0, 4}, {4, 4}}, [][2]int{{0, 0}, {7, 7}}},
		{HatchDiagCross, [][2]int{{0, 0}, {7, 0}, {3, 3}, {3, 4}}, [][2]int{{4, 0}, {0, 4}}},
	}
	line := color.RGBA{R: 255, A: 255}
	for _, tt := range tests {
		img, ok := hatchPattern(tt.style, fg, nil)
		if !ok {
			t.Fatalf("hatchPattern(%d) not ok", tt.style)
		}
		if b := img.Bounds(); b.Dx() != hatchSize || b.Dy() != hatchSize {
			t.Errorf("hatchPattern(%d) bounds = %v, want 8x8", tt.style, b)
		}
		for _, p := range tt.on {
			if got := img.RGBAAt(p[0], p[1]); got != line {
				t.Errorf("hatchPattern(%d) at %v = %v, want the line color", tt.style, p, got)
			}
		}
		for _, p := range tt.off {
			if got := img.RGBAAt(p[0], p[1]); got.A != 0 {
				t.Errorf("hatchPattern(%d) at %v = %v, want transparent", tt.style, p, got)
			}
		}
	}
}

func TestHatchPatternBackground(t *testing.T) {
	bg := Color{G: 128}
	img, ok := hatchPattern(HatchHorizontal, Black, &bg)
	if !ok {
		t.Fatal("hatchPattern() not ok")
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{G: 128, A: 255}) {
		t.Errorf("background pixel = %v, want opaque green", got)
	}
	if got := img.RGBAAt(0, 4); got != (color.RGBA{A: 255}) {
		t.Errorf("line pixel = %v, want black", got)
	}
}

func TestHatchPatternUnknown(t *testing.T) {
	if img, ok := hatchPattern(HatchStyle(6), Black, nil); ok || img != nil {
		t.Errorf("hatchPattern(6) = %v, %v, want nil, false", img, ok)
	}
}

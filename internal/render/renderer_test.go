package render

import (
	"image/color"
	"testing"
)

func TestSetSize(t *testing.T) {
	r := New()
	r.SetSize(800, 600)
	r.SetSize(1200, 800)
	if w, h := r.Size(); w != 1200 || h != 800 {
		t.Errorf("Size = %dx%d, want 1200x800", w, h)
	}
}

func TestWithOpacity(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		opacity float64
		alpha   uint8
	}{
		{0.1, 25},
		{1, 255},
		{0, 0},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		got := withOpacity(white, tt.opacity)
		if got.A != tt.alpha || got.R != 255 {
			t.Errorf("withOpacity(%v) = %v, want alpha %d", tt.opacity, got, tt.alpha)
		}
	}
}

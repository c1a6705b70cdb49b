package pixbuf

import (
	"image/color"
	"math"
	"testing"
)

func TestColor_StdRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Color
	}{
		{"opaque", NewColor(255, 10, 20, 30)},
		{"translucent", NewColor(128, 200, 100, 50)},
		{"transparent black", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromStdColor(tt.c.Std()); got != tt.c {
				t.Errorf("got %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestFromStdColor_Premultiplied(t *testing.T) {
	// A premultiplied RGBA value converts through the straight-alpha model.
	got := FromStdColor(color.RGBA{R: 64, G: 32, B: 16, A: 128})
	if got.A != 128 {
		t.Errorf("alpha: got %d, want 128", got.A)
	}
	if got.R < 125 || got.R > 130 {
		t.Errorf("red: got %d, want ~127 after unpremultiplying", got.R)
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"red", NewColor(255, 255, 0, 0), "#FF0000"},
		{"green", NewColor(255, 0, 255, 0), "#00FF00"},
		{"blue", NewColor(255, 0, 0, 255), "#0000FF"},
		{"white", NewColor(255, 255, 255, 255), "#FFFFFF"},
		{"black", NewColor(255, 0, 0, 0), "#000000"},
		{"mixed", NewColor(255, 255, 128, 64), "#FF8040"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColor_HSL(t *testing.T) {
	tests := []struct {
		name  string
		c     Color
		wantH float64
	}{
		{"red", NewColor(255, 255, 0, 0), 0},
		{"green", NewColor(255, 0, 255, 0), 120},
		{"blue", NewColor(255, 0, 0, 255), 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.c.HSL()
			if math.Abs(h-tt.wantH) > 1 {
				t.Errorf("hue: got %.1f, want %.1f", h, tt.wantH)
			}
			if math.Abs(s-1) > 0.01 {
				t.Errorf("saturation: got %.2f, want 1.0", s)
			}
			if math.Abs(l-0.5) > 0.01 {
				t.Errorf("lightness: got %.2f, want 0.5", l)
			}
		})
	}
}

func TestColor_IsEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty should report IsEmpty")
	}
	if NewColor(0, 0, 0, 1).IsEmpty() {
		t.Error("non-zero color should not report IsEmpty")
	}
}

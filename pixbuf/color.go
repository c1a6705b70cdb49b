package pixbuf

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel ARGB color value. It has no identity beyond
// its channel values; two colors are the same iff all four channels match.
//
// The zero value is Empty, the sentinel returned by accessors that have
// nothing to report (uninitialized buffer, exhausted scanner).
type Color struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Empty is the sentinel "no color" value: fully transparent black.
var Empty = Color{}

// NewColor builds a Color from its four channels.
func NewColor(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromStdColor converts any standard-library color to a straight-alpha Color.
func FromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Std returns the color as a straight-alpha standard-library value.
func (c Color) Std() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// IsEmpty reports whether the color is the Empty sentinel.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// Hex returns the color as "#RRGGBB"; alpha is not represented.
func (c Color) Hex() string {
	return strings.ToUpper(c.toColorful().Hex())
}

// HSL returns hue in degrees [0,360) and saturation/lightness in [0,1],
// ignoring alpha.
func (c Color) HSL() (h, s, l float64) {
	return c.toColorful().Hsl()
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

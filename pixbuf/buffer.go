package pixbuf

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/TongZhai/rasterbuf/raster"
)

// ErrOutOfRange is returned by ColorAt and SetColor for coordinates outside
// the buffer's extent.
var ErrOutOfRange = errors.New("pixel coordinates out of range")

// PixelBuffer is a mutable 32-bit ARGB raster held as a flat byte slice.
// Pixel bytes are laid out B,G,R,A starting at row*stride + col*4; rows may
// carry alignment padding when stride exceeds width*4. A buffer is never
// resized after creation.
type PixelBuffer struct {
	width  int
	height int
	stride int
	pix    []byte
	source raster.Raster
}

// New creates a blank (all-zero) buffer. The stride is width*4, the
// canonical row size for a 32-bit raster; 32bpp rows need no alignment
// padding. Negative dimensions are clamped to zero.
func New(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 4
	return &PixelBuffer{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, height*stride),
	}
}

// Width returns the number of pixel columns.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the number of pixel rows.
func (b *PixelBuffer) Height() int { return b.height }

// Stride returns the byte count per row, at least Width()*4.
func (b *PixelBuffer) Stride() int { return b.stride }

// Bytes returns the live backing slice, Height()*Stride() bytes. Callers may
// write individual bytes directly but must not resize the slice.
func (b *PixelBuffer) Bytes() []byte { return b.pix }

// uninitialized reports whether the buffer has no addressable pixel memory.
func (b *PixelBuffer) uninitialized() bool {
	return len(b.pix) == 0 || b.stride == 0
}

// ColorAt returns the color at (row, col). An uninitialized buffer yields
// the Empty sentinel without error; coordinates outside the buffer's extent
// yield an ErrOutOfRange error.
func (b *PixelBuffer) ColorAt(row, col int) (Color, error) {
	if b.uninitialized() {
		return Empty, nil
	}
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Empty, fmt.Errorf("%w: (%d,%d) in %dx%d buffer", ErrOutOfRange, row, col, b.width, b.height)
	}
	i := row*b.stride + col*4
	s := b.pix[i : i+4 : i+4]
	return Color{A: s[3], R: s[2], G: s[1], B: s[0]}, nil
}

// SetColor overwrites the 4 bytes at (row, col) with the color's channels in
// B,G,R,A order. A no-op on an uninitialized buffer; coordinates outside the
// buffer's extent yield an ErrOutOfRange error.
func (b *PixelBuffer) SetColor(row, col int, c Color) error {
	if b.uninitialized() {
		return nil
	}
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return fmt.Errorf("%w: (%d,%d) in %dx%d buffer", ErrOutOfRange, row, col, b.width, b.height)
	}
	i := row*b.stride + col*4
	s := b.pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.B, c.G, c.R, c.A
	return nil
}

// Clear sets every byte, padding included, to zero.
func (b *PixelBuffer) Clear() {
	clear(b.pix)
}

// Fill writes the color into every pixel cell in row-major order. Stride
// padding bytes are left untouched.
func (b *PixelBuffer) Fill(c Color) {
	if b.uninitialized() {
		return
	}
	for row := 0; row < b.height; row++ {
		i := row * b.stride
		for col := 0; col < b.width; col++ {
			s := b.pix[i : i+4 : i+4]
			s[0], s[1], s[2], s[3] = c.B, c.G, c.R, c.A
			i += 4
		}
	}
}

// Randomize overwrites every byte, padding included, with values drawn from
// rng. Pass a seeded source for reproducible output; a nil rng draws from a
// program-global source. Padding bytes are randomized too, so the result is
// not a valid pixel grid when padding carries meaning elsewhere.
func (b *PixelBuffer) Randomize(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	for i := range b.pix {
		b.pix[i] = byte(rng.UintN(256))
	}
}

// Matches reports byte-for-byte equality with other. Buffers with differing
// width, height, or stride never match; padding bytes participate in the
// comparison.
func (b *PixelBuffer) Matches(other *PixelBuffer) bool {
	if other == nil {
		return false
	}
	if b.width != other.width || b.height != other.height || b.stride != other.stride {
		return false
	}
	return bytes.Equal(b.pix, other.pix)
}

// Clone returns an independent copy of the buffer's dimensions, stride, and
// bytes. The clone shares no storage with the source and carries no backing
// raster; the source keeps sole ownership of its raster handle.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.pix))
	copy(pix, b.pix)
	return &PixelBuffer{
		width:  b.width,
		height: b.height,
		stride: b.stride,
		pix:    pix,
	}
}

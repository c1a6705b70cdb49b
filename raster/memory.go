package raster

import "fmt"

// MemoryRaster is an in-memory Raster backed by a flat byte slice. It stands
// in for a native raster handle: pixel memory is reached only through the
// Lock/Unlock pair, and Close drops the storage for good.
type MemoryRaster struct {
	width  int
	height int
	stride int
	format PixelFormat
	pix    []byte
	lock   *Lock
	closed bool
}

// NewMemoryRaster allocates a zeroed raster with the tightest stride for the
// format (width * bytes-per-pixel). Negative dimensions are clamped to zero.
func NewMemoryRaster(width, height int, format PixelFormat) *MemoryRaster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * format.BytesPerPixel()
	return &MemoryRaster{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    make([]byte, height*stride),
	}
}

// NewMemoryRasterWithStride allocates a zeroed raster with an explicit row
// stride, allowing alignment padding beyond width * bytes-per-pixel. It
// returns an error when the stride is too small for the row's pixel data.
func NewMemoryRasterWithStride(width, height int, format PixelFormat, stride int) (*MemoryRaster, error) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if min := width * format.BytesPerPixel(); stride < min {
		return nil, fmt.Errorf("stride %d is smaller than row size %d (%dx%d %s)",
			stride, min, width, height, format)
	}
	return &MemoryRaster{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    make([]byte, height*stride),
	}, nil
}

func (r *MemoryRaster) Width() int          { return r.width }
func (r *MemoryRaster) Height() int         { return r.height }
func (r *MemoryRaster) Format() PixelFormat { return r.format }

// Lock borrows the raster's pixel memory as a live view. It fails on a
// closed raster and on a raster whose previous lock has not been released.
func (r *MemoryRaster) Lock(mode AccessMode) (*Lock, error) {
	if r.closed {
		return nil, fmt.Errorf("lock %dx%d raster: %w", r.width, r.height, ErrClosed)
	}
	if r.lock != nil {
		return nil, fmt.Errorf("lock %dx%d raster for %s: %w", r.width, r.height, mode, ErrLocked)
	}
	r.lock = &Lock{Pix: r.pix, Stride: r.stride, Mode: mode}
	return r.lock, nil
}

// Unlock releases the region returned by the matching Lock call.
func (r *MemoryRaster) Unlock(region *Lock) error {
	if region == nil || region != r.lock {
		return ErrNotLocked
	}
	r.lock = nil
	return nil
}

// Close releases the raster's storage. Closing twice or while locked is an
// error; the owner is expected to call it exactly once.
func (r *MemoryRaster) Close() error {
	if r.closed {
		return fmt.Errorf("close raster: %w", ErrClosed)
	}
	if r.lock != nil {
		return fmt.Errorf("close raster: %w", ErrLocked)
	}
	r.closed = true
	r.pix = nil
	return nil
}

// Canonical returns a raster holding the same pixels in the canonical
// FormatBGRA32 layout. A raster already in that format is returned as-is
// without copying; otherwise a new MemoryRaster is allocated and the source
// is read under a scoped lock. The caller owns the returned raster only when
// it differs from the input.
func Canonical(r Raster) (Raster, error) {
	if r == nil {
		return nil, fmt.Errorf("canonicalize raster: nil source")
	}
	if r.Format() == FormatBGRA32 {
		return r, nil
	}
	switch r.Format() {
	case FormatRGBA32, FormatBGRX32, FormatGray8:
	default:
		return nil, fmt.Errorf("canonicalize %s raster: %w", r.Format(), ErrUnsupportedFormat)
	}

	src, err := r.Lock(ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("canonicalize raster: %w", err)
	}
	defer func() {
		_ = r.Unlock(src)
	}()

	width, height := r.Width(), r.Height()
	dst := NewMemoryRaster(width, height, FormatBGRA32)
	for row := 0; row < height; row++ {
		si := row * src.Stride
		di := row * dst.stride
		for col := 0; col < width; col++ {
			d := dst.pix[di : di+4 : di+4]
			switch r.Format() {
			case FormatRGBA32:
				s := src.Pix[si : si+4 : si+4]
				d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
				si += 4
			case FormatBGRX32:
				s := src.Pix[si : si+4 : si+4]
				d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xFF
				si += 4
			case FormatGray8:
				v := src.Pix[si]
				d[0], d[1], d[2], d[3] = v, v, v, 0xFF
				si++
			}
			di += 4
		}
	}
	return dst, nil
}

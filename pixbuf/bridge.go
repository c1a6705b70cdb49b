package pixbuf

import (
	"fmt"
	"image"

	"github.com/TongZhai/rasterbuf/raster"
)

// FromRaster snapshots a raster's pixel memory into a new buffer. The raster
// is normalized to the canonical BGRA32 format first (reused without copying
// when it already is canonical), then its bytes are copied out under a
// scoped read lock. Dimensions and stride are taken from the locked raster,
// not recomputed.
//
// The canonical raster becomes the buffer's backing resource: ToRaster
// writes back into it and Close releases it. When normalization had to
// convert, the input raster stays owned by the caller. On error no buffer
// state is populated.
func FromRaster(r raster.Raster) (*PixelBuffer, error) {
	c, err := raster.Canonical(r)
	if err != nil {
		return nil, fmt.Errorf("buffer from raster: %w", err)
	}
	region, err := c.Lock(raster.ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("buffer from raster: %w", err)
	}
	defer func() {
		_ = c.Unlock(region)
	}()

	height := c.Height()
	pix := make([]byte, height*region.Stride)
	copy(pix, region.Pix)
	return &PixelBuffer{
		width:  c.Width(),
		height: height,
		stride: region.Stride,
		pix:    pix,
		source: c,
	}, nil
}

// ToRaster writes the buffer's bytes back into its backing raster under a
// write lock and returns the raster handle. A buffer without a backing
// raster gets a fresh canonical raster of its own width and height, which is
// retained as the backing resource from then on. Rows are copied
// individually, so a raster whose stride differs from the buffer's receives
// exactly width*4 pixel bytes per row.
func (b *PixelBuffer) ToRaster() (raster.Raster, error) {
	if b.source == nil {
		b.source = raster.NewMemoryRaster(b.width, b.height, raster.FormatBGRA32)
	}
	region, err := b.source.Lock(raster.WriteOnly)
	if err != nil {
		return nil, fmt.Errorf("buffer to raster: %w", err)
	}

	rows := min(b.height, b.source.Height())
	rowBytes := min(b.width, b.source.Width()) * 4
	for row := 0; row < rows; row++ {
		copy(region.Pix[row*region.Stride:][:rowBytes], b.pix[row*b.stride:][:rowBytes])
	}

	if err := b.source.Unlock(region); err != nil {
		return nil, fmt.Errorf("buffer to raster: %w", err)
	}
	return b.source, nil
}

// Close releases the backing raster resource. The buffer's owner must call
// it exactly once when a backing raster is attached; without one it is a
// no-op. The buffer's own bytes stay valid after Close.
func (b *PixelBuffer) Close() error {
	if b.source == nil {
		return nil
	}
	src := b.source
	b.source = nil
	if err := src.Close(); err != nil {
		return fmt.Errorf("release backing raster: %w", err)
	}
	return nil
}

// Image converts the buffer's pixels to a straight-alpha NRGBA image without
// touching the backing raster. The returned image owns its storage.
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for row := 0; row < b.height; row++ {
		si := row * b.stride
		di := row * img.Stride
		for col := 0; col < b.width; col++ {
			s := b.pix[si : si+4 : si+4]
			d := img.Pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
			si += 4
			di += 4
		}
	}
	return img
}

package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FromImage snapshots an image into a canonical FormatBGRA32 raster. The
// source is first normalized to straight-alpha NRGBA, so any image.Image
// implementation is accepted; the returned raster does not alias the
// source's pixel storage.
func FromImage(img image.Image) *MemoryRaster {
	n := imaging.Clone(img)
	width := n.Rect.Dx()
	height := n.Rect.Dy()
	r := NewMemoryRaster(width, height, FormatBGRA32)
	for row := 0; row < height; row++ {
		si := row * n.Stride
		di := row * r.stride
		for col := 0; col < width; col++ {
			s := n.Pix[si : si+4 : si+4]
			d := r.pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
			si += 4
			di += 4
		}
	}
	return r
}

// Image converts the raster's pixels to a straight-alpha NRGBA image,
// normalizing non-canonical formats first. The returned image owns its
// pixel storage.
func (r *MemoryRaster) Image() (*image.NRGBA, error) {
	if r.closed {
		return nil, fmt.Errorf("raster to image: %w", ErrClosed)
	}
	c, err := Canonical(r)
	if err != nil {
		return nil, fmt.Errorf("raster to image: %w", err)
	}
	cm := c.(*MemoryRaster)
	if cm != r {
		defer func() {
			_ = cm.Close()
		}()
	}

	img := image.NewNRGBA(image.Rect(0, 0, cm.width, cm.height))
	for row := 0; row < cm.height; row++ {
		si := row * cm.stride
		di := row * img.Stride
		for col := 0; col < cm.width; col++ {
			s := cm.pix[si : si+4 : si+4]
			d := img.Pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
			si += 4
			di += 4
		}
	}
	return img, nil
}

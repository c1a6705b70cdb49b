// Package imgload decodes image files for the CLI and reports basic
// metadata about them. Importing it registers the standard PNG/JPEG/GIF
// decoders plus BMP and TIFF from golang.org/x/image.
package imgload

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// Info describes a decoded image file.
type Info struct {
	// Width and Height are the decoded dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the registered name of the detected format ("png", "jpeg",
	// "gif", "bmp", "tiff"), taken from the decoder rather than the file
	// extension.
	Format string `json:"format"`

	// HasAlpha reports whether the decoded color model carries an alpha
	// channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the on-disk size of the file.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Open decodes an image file and returns it with the detected format name.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %q: %w", path, err)
	}
	return img, format, nil
}

// Describe decodes an image file and returns its metadata.
func Describe(path string) (*Info, error) {
	img, format, err := Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

package raster

// PixelFormat identifies the channel layout of a raster's pixel memory.
type PixelFormat int

const (
	// FormatUnknown is the zero value; rasters in this format cannot be
	// converted or bridged.
	FormatUnknown PixelFormat = iota

	// FormatBGRA32 is the canonical format: 4 bytes per pixel in
	// Blue, Green, Red, Alpha order with straight alpha.
	FormatBGRA32

	// FormatRGBA32 is 4 bytes per pixel in Red, Green, Blue, Alpha order.
	FormatRGBA32

	// FormatBGRX32 is 4 bytes per pixel in Blue, Green, Red order with an
	// ignored filler byte; pixels are fully opaque.
	FormatBGRX32

	// FormatGray8 is a single luminance byte per pixel.
	FormatGray8
)

// BytesPerPixel returns the storage size of one pixel in the format, or 0
// for FormatUnknown.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatBGRA32, FormatRGBA32, FormatBGRX32:
		return 4
	case FormatGray8:
		return 1
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case FormatBGRA32:
		return "bgra32"
	case FormatRGBA32:
		return "rgba32"
	case FormatBGRX32:
		return "bgrx32"
	case FormatGray8:
		return "gray8"
	default:
		return "unknown"
	}
}

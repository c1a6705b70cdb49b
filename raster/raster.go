package raster

import "errors"

var (
	// ErrClosed is returned when a raster's pixel memory is accessed after
	// Close has released it.
	ErrClosed = errors.New("raster is closed")

	// ErrLocked is returned by Lock when the raster's memory is already
	// locked by an earlier, not yet released region.
	ErrLocked = errors.New("raster is already locked")

	// ErrNotLocked is returned by Unlock when the given region is not the
	// raster's current lock.
	ErrNotLocked = errors.New("region is not the current lock")

	// ErrUnsupportedFormat is returned when a raster's pixel format cannot
	// be converted to the canonical layout.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
)

// AccessMode declares the intended use of a locked region.
type AccessMode int

const (
	ReadOnly AccessMode = iota
	WriteOnly
	ReadWrite
)

func (m AccessMode) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Lock is a borrowed view into a raster's pixel memory. Pix and Stride are
// valid only between the Lock call that produced the region and the matching
// Unlock. Writing through Pix after a ReadOnly lock is undefined.
type Lock struct {
	// Pix is the raster's pixel memory, Height()*Stride bytes.
	Pix []byte

	// Stride is the actual byte count per row, at least
	// Width()*Format().BytesPerPixel().
	Stride int

	// Mode is the access mode the region was locked with.
	Mode AccessMode
}

// Raster is an external raster resource: dimensions, a pixel format, and a
// lockable memory region. Implementations are not safe for concurrent use.
type Raster interface {
	Width() int
	Height() int
	Format() PixelFormat

	// Lock borrows the raster's pixel memory. Every successful Lock must be
	// paired with an Unlock of the returned region before the raster can be
	// locked again or closed.
	Lock(mode AccessMode) (*Lock, error)

	// Unlock releases a region obtained from Lock.
	Unlock(region *Lock) error

	// Close releases the raster resource. The owner must call it exactly
	// once; any later Lock fails with ErrClosed.
	Close() error
}

// Package pixbuf provides a mutable, byte-addressable view over a 32-bit
// ARGB raster.
//
// A PixelBuffer owns a flat byte slice together with its width, height, and
// row stride. Pixel channels live at row*stride + col*4 in Blue, Green, Red,
// Alpha byte order with straight alpha; a stride larger than width*4 leaves
// opaque alignment padding at the end of each row. Individual channels can
// be read and written without going through a general-purpose image API.
//
// # Coordinate System
//
// All coordinates are 0-based (row, col) pairs: row 0 is the top row, col 0
// the leftmost column. ColorAt and SetColor validate bounds and report an
// ErrOutOfRange error for coordinates outside [0,height) x [0,width).
//
// # Raster Bridge
//
// FromRaster snapshots the pixel memory of a raster.Raster (normalized to
// the canonical BGRA32 format first) and retains the canonical raster as the
// buffer's backing resource. ToRaster writes the buffer back into that
// raster, or builds a fresh one when none is attached. The backing raster is
// an unmanaged handle: the buffer's owner must release it with Close exactly
// once; nothing happens at garbage-collection time.
//
// # Concurrency
//
// A PixelBuffer is a plain mutable byte slice with no internal locking.
// Concurrent readers and writers need external synchronization.
package pixbuf

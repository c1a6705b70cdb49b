// Package raster models an external raster resource whose pixel memory can
// be borrowed for bulk byte copies.
//
// A Raster is an opaque handle with a pixel format, dimensions, and a
// lockable memory region. Callers obtain the raw bytes and the actual row
// stride through Lock, copy data in or out, and release the region with
// Unlock. The handle itself is released with Close, which must be called
// explicitly by the owner; nothing in this package relies on finalization.
//
// # Canonical Format
//
// The canonical pixel format is FormatBGRA32: 32 bits per pixel, one byte
// each of Blue, Green, Red, Alpha in that order, straight (non-premultiplied)
// alpha. Canonical converts any supported raster to this layout, reusing the
// input when it is already canonical. FromImage and Image bridge to the
// standard library's image types for decoding and encoding.
//
// # Locking Discipline
//
// A raster holds at most one lock at a time. Lock fails on a closed or
// already-locked raster, and Unlock fails when handed a region that is not
// the current lock. The Lock's Pix slice is a live view of the raster's
// memory, valid only until Unlock.
package raster

package pixbuf

type scanState int

const (
	scanNotStarted scanState = iota
	scanPositioned
	scanExhausted
)

// Scanner walks a buffer's pixels in raster-scan order: row 0 left to right,
// then row 1, and so on. A full pass yields exactly width*height successful
// Advance calls; the next Advance reports false and the scanner stays
// exhausted until Reset.
//
// The scanner reads the buffer's live bytes, so pixel mutations made between
// advances are visible through Current. It is not safe against the buffer
// being swapped out underneath it, and not safe for concurrent use.
type Scanner struct {
	buf   *PixelBuffer
	state scanState
	row   int
	col   int
}

// Scan returns a scanner positioned before the buffer's first pixel.
func (b *PixelBuffer) Scan() *Scanner {
	return &Scanner{buf: b, col: -1}
}

// Advance moves the cursor to the next pixel and reports whether one exists.
// Once it has returned false the scanner is exhausted and keeps returning
// false until Reset.
func (s *Scanner) Advance() bool {
	if s.state == scanExhausted {
		return false
	}
	s.col++
	if s.col >= s.buf.width {
		s.col = 0
		s.row++
	}
	if s.buf.width == 0 || s.row >= s.buf.height {
		s.state = scanExhausted
		return false
	}
	s.state = scanPositioned
	return true
}

// Current returns the color under the cursor, read from the buffer's live
// bytes. Before the first Advance and after exhaustion it returns Empty.
func (s *Scanner) Current() Color {
	if s.state != scanPositioned {
		return Empty
	}
	c, err := s.buf.ColorAt(s.row, s.col)
	if err != nil {
		return Empty
	}
	return c
}

// Position returns the cursor's (row, col), meaningful only while the
// scanner is positioned on a pixel.
func (s *Scanner) Position() (row, col int) {
	return s.row, s.col
}

// Reset returns the cursor to before the first pixel, so the next Advance
// starts a fresh pass at (0, 0).
func (s *Scanner) Reset() {
	s.state = scanNotStarted
	s.row = 0
	s.col = -1
}

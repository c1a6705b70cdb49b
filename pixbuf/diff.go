package pixbuf

// Difference computes the element-wise absolute difference between the
// buffer and other. The result spans the union of both extents:
// max(widths) x max(heights), blank-allocated with stride width*4.
//
// Cells in the overlap of both extents receive abs(a-b) per R,G,B channel;
// the alpha channel is abs(a-b) as well unless ignoreAlpha is set, in which
// case it is forced to 255. Real images often carry a uniform alpha of 255,
// making a literal alpha difference near zero and the diff image invisible,
// so callers can force full opacity instead. Cells inside exactly one
// buffer's extent receive that buffer's pixel verbatim, alpha included.
// Cells outside both extents stay fully transparent black.
func (b *PixelBuffer) Difference(other *PixelBuffer, ignoreAlpha bool) *PixelBuffer {
	width := max(b.width, other.width)
	height := max(b.height, other.height)
	out := New(width, height)

	overlapW := min(b.width, other.width)
	overlapH := min(b.height, other.height)

	for row := 0; row < height; row++ {
		di := row * out.stride
		for col := 0; col < width; col++ {
			d := out.pix[di : di+4 : di+4]
			switch {
			case row < overlapH && col < overlapW:
				ai := row*b.stride + col*4
				bi := row*other.stride + col*4
				s := b.pix[ai : ai+4 : ai+4]
				t := other.pix[bi : bi+4 : bi+4]
				d[0] = absDiff(s[0], t[0])
				d[1] = absDiff(s[1], t[1])
				d[2] = absDiff(s[2], t[2])
				if ignoreAlpha {
					d[3] = 0xFF
				} else {
					d[3] = absDiff(s[3], t[3])
				}
			case row < b.height && col < b.width:
				i := row*b.stride + col*4
				copy(d, b.pix[i:i+4])
			case row < other.height && col < other.width:
				i := row*other.stride + col*4
				copy(d, other.pix[i:i+4])
			default:
				// outside both extents: stays (0,0,0,0)
			}
			di += 4
		}
	}
	return out
}

func absDiff(a, b byte) byte {
	if a > b {
		return a - b
	}
	return b - a
}

// Stats summarizes how much two buffers differ.
type Stats struct {
	// Changed counts union cells that differ: overlap cells with any
	// differing channel byte, plus every cell present in only one buffer.
	Changed int `json:"changed"`

	// Total is the union cell count, max(widths) * max(heights).
	Total int `json:"total"`

	// Ratio is Changed/Total, 0 for empty buffers.
	Ratio float64 `json:"ratio"`

	// MeanDistanceLab is the mean perceptual (CIE Lab) distance between the
	// RGB values of changed overlap cells, 0 when none changed.
	MeanDistanceLab float64 `json:"mean_distance_lab"`
}

// DiffStats compares two buffers cell by cell over the union of their
// extents and reports aggregate change figures. Unlike Matches it tolerates
// differing dimensions, and unlike Difference it produces numbers rather
// than a diff image.
func DiffStats(a, b *PixelBuffer) Stats {
	width := max(a.width, b.width)
	height := max(a.height, b.height)
	overlapW := min(a.width, b.width)
	overlapH := min(a.height, b.height)

	var st Stats
	st.Total = width * height

	var labSum float64
	var labCount int
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if row >= overlapH || col >= overlapW {
				// Present in at most one buffer; nothing to compare against.
				st.Changed++
				continue
			}
			ai := row*a.stride + col*4
			bi := row*b.stride + col*4
			s := a.pix[ai : ai+4 : ai+4]
			t := b.pix[bi : bi+4 : bi+4]
			if s[0] == t[0] && s[1] == t[1] && s[2] == t[2] && s[3] == t[3] {
				continue
			}
			st.Changed++
			ca := Color{A: s[3], R: s[2], G: s[1], B: s[0]}
			cb := Color{A: t[3], R: t[2], G: t[1], B: t[0]}
			labSum += ca.toColorful().DistanceLab(cb.toColorful())
			labCount++
		}
	}
	if st.Total > 0 {
		st.Ratio = float64(st.Changed) / float64(st.Total)
	}
	if labCount > 0 {
		st.MeanDistanceLab = labSum / float64(labCount)
	}
	return st
}

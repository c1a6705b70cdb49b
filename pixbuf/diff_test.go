package pixbuf

import "testing"

func TestDifference_SelfIdentity(t *testing.T) {
	b := New(3, 2)
	b.Fill(NewColor(200, 10, 20, 30))

	d := b.Difference(b, false)
	if d.Width() != 3 || d.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", d.Width(), d.Height())
	}
	for i, v := range d.Bytes() {
		if v != 0 {
			t.Fatalf("byte %d: got %d, want 0", i, v)
		}
	}
}

func TestDifference_DimensionLaw(t *testing.T) {
	tests := []struct {
		name                  string
		aw, ah, bw, bh        int
		wantWidth, wantHeight int
	}{
		{"equal", 2, 2, 2, 2, 2, 2},
		{"b larger", 2, 2, 3, 3, 3, 3},
		{"a wider b taller", 4, 1, 1, 5, 4, 5},
		{"a empty", 0, 0, 2, 3, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.aw, tt.ah).Difference(New(tt.bw, tt.bh), false)
			if d.Width() != tt.wantWidth || d.Height() != tt.wantHeight {
				t.Errorf("got %dx%d, want %dx%d", d.Width(), d.Height(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestDifference_MismatchedSizes(t *testing.T) {
	a := New(2, 2)
	b := New(3, 3)
	b.Fill(NewColor(5, 5, 5, 5))

	d := a.Difference(b, false)
	if d.Width() != 3 || d.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", d.Width(), d.Height())
	}

	// Overlap cell: abs(5-0) per channel.
	got, err := d.ColorAt(0, 0)
	if err != nil {
		t.Fatalf("ColorAt(0,0): %v", err)
	}
	if want := NewColor(5, 5, 5, 5); got != want {
		t.Errorf("overlap cell: got %+v, want %+v", got, want)
	}

	// Outside a's extent, inside b's: b verbatim.
	got, err = d.ColorAt(2, 2)
	if err != nil {
		t.Fatalf("ColorAt(2,2): %v", err)
	}
	if want := NewColor(5, 5, 5, 5); got != want {
		t.Errorf("b-only cell: got %+v, want %+v", got, want)
	}
}

func TestDifference_DisjointExtents(t *testing.T) {
	// a covers row 0, b covers column 0; cell (2,2) is outside both.
	a := New(3, 1)
	a.Fill(NewColor(10, 11, 12, 13))
	b := New(1, 3)
	b.Fill(NewColor(20, 21, 22, 23))

	d := a.Difference(b, false)
	if d.Width() != 3 || d.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", d.Width(), d.Height())
	}

	tests := []struct {
		name     string
		row, col int
		want     Color
	}{
		{"overlap", 0, 0, NewColor(10, 10, 10, 10)},
		{"a only", 0, 2, NewColor(10, 11, 12, 13)},
		{"b only", 2, 0, NewColor(20, 21, 22, 23)},
		{"outside both", 2, 2, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.ColorAt(tt.row, tt.col)
			if err != nil {
				t.Fatalf("ColorAt(%d,%d): %v", tt.row, tt.col, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDifference_IgnoreAlpha(t *testing.T) {
	a := New(2, 1)
	a.Fill(NewColor(255, 100, 100, 100))
	b := New(2, 1)
	b.Fill(NewColor(255, 40, 50, 60))

	t.Run("alpha differenced", func(t *testing.T) {
		got, err := a.Difference(b, false).ColorAt(0, 0)
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if want := NewColor(0, 60, 50, 40); got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("alpha forced opaque", func(t *testing.T) {
		got, err := a.Difference(b, true).ColorAt(0, 0)
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if want := NewColor(255, 60, 50, 40); got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("verbatim region keeps its alpha", func(t *testing.T) {
		wide := New(3, 1)
		wide.Fill(NewColor(7, 1, 2, 3))
		got, err := wide.Difference(b, true).ColorAt(0, 2)
		if err != nil {
			t.Fatalf("ColorAt failed: %v", err)
		}
		if want := NewColor(7, 1, 2, 3); got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
}

func TestDifference_PaddedStride(t *testing.T) {
	a := paddedBuffer(2, 2, 8)
	a.Fill(NewColor(255, 50, 60, 70))
	b := New(2, 2)
	b.Fill(NewColor(255, 20, 20, 20))

	got, err := a.Difference(b, false).ColorAt(1, 1)
	if err != nil {
		t.Fatalf("ColorAt failed: %v", err)
	}
	if want := NewColor(0, 30, 40, 50); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDiffStats(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		a := New(4, 4)
		a.Fill(NewColor(255, 10, 20, 30))
		st := DiffStats(a, a.Clone())
		if st.Changed != 0 || st.Ratio != 0 || st.MeanDistanceLab != 0 {
			t.Errorf("got %+v, want no change", st)
		}
		if st.Total != 16 {
			t.Errorf("total: got %d, want 16", st.Total)
		}
	})

	t.Run("single pixel changed", func(t *testing.T) {
		a := New(4, 4)
		a.Fill(NewColor(255, 10, 20, 30))
		b := a.Clone()
		if err := b.SetColor(2, 2, NewColor(255, 200, 20, 30)); err != nil {
			t.Fatalf("SetColor failed: %v", err)
		}
		st := DiffStats(a, b)
		if st.Changed != 1 {
			t.Errorf("changed: got %d, want 1", st.Changed)
		}
		if st.Ratio != 1.0/16.0 {
			t.Errorf("ratio: got %v, want %v", st.Ratio, 1.0/16.0)
		}
		if st.MeanDistanceLab <= 0 {
			t.Errorf("mean Lab distance: got %v, want > 0", st.MeanDistanceLab)
		}
	})

	t.Run("size mismatch counts outside cells", func(t *testing.T) {
		a := New(2, 2)
		b := New(3, 3)
		st := DiffStats(a, b)
		// 3x3 union, 2x2 overlap of identical zero pixels.
		if st.Total != 9 {
			t.Errorf("total: got %d, want 9", st.Total)
		}
		if st.Changed != 5 {
			t.Errorf("changed: got %d, want 5", st.Changed)
		}
	})

	t.Run("empty buffers", func(t *testing.T) {
		st := DiffStats(New(0, 0), New(0, 0))
		if st.Total != 0 || st.Changed != 0 || st.Ratio != 0 {
			t.Errorf("got %+v, want zero stats", st)
		}
	})
}

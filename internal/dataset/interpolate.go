package dataset

import "math"

// InterpolateByTime fills interior NaN gaps in every column by linear
// interpolation weighted by the time distance between the surrounding
// observations. Leading and trailing gaps have no surrounding points and
// are left missing. Whether interpolation is appropriate for long gaps is
// a caller policy choice; the loader applies it unconditionally, matching
// the campaign notebooks.
func (t *Table) InterpolateByTime() {
	for col := range t.Columns {
		t.interpolateColumn(col)
	}
}

func (t *Table) interpolateColumn(col int) {
	n := len(t.rows)
	prev := -1 // index of the last known value seen

	for i := 0; i < n; i++ {
		if !math.IsNaN(t.rows[i][col]) {
			if prev >= 0 && i-prev > 1 {
				t.fillGap(col, prev, i)
			}
			prev = i
		}
	}
}

// fillGap interpolates the NaN run strictly between rows lo and hi, both of
// which hold known values.
func (t *Table) fillGap(col, lo, hi int) {
	t0 := t.Times[lo]
	t1 := t.Times[hi]
	span := t1.Sub(t0).Seconds()
	v0 := t.rows[lo][col]
	v1 := t.rows[hi][col]

	for i := lo + 1; i < hi; i++ {
		if span <= 0 {
			t.rows[i][col] = v0
			continue
		}
		frac := t.Times[i].Sub(t0).Seconds() / span
		t.rows[i][col] = v0 + (v1-v0)*frac
	}
}

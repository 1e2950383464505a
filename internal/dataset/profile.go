package dataset

import (
	"fmt"
	"math"
	"time"

	"github.com/mfribeiro/windprof/internal/profile"
)

// VerticalProfile is one observation restricted to one variable's height
// columns: co-indexed heights and values, ready for plotting or for the
// shear estimator.
type VerticalProfile struct {
	Time    time.Time
	Prefix  string
	Heights []float64
	Values  []float64
}

// ProfileAt extracts the vertical profile of one variable at one row.
// Heights come from the column naming convention via the resolver; rows
// where a height's value is missing are skipped, keeping the two slices
// co-indexed.
func (t *Table) ProfileAt(row int, prefix string) (*VerticalProfile, error) {
	if row < 0 || row >= t.Len() {
		return nil, fmt.Errorf("row %d out of range, table has %d rows", row, t.Len())
	}

	mapping, err := profile.ResolveHeightColumns(t.Columns, prefix)
	if err != nil {
		return nil, err
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("no columns match prefix %q", prefix)
	}

	vp := &VerticalProfile{Time: t.Times[row], Prefix: prefix}
	for _, hc := range mapping {
		v := t.Value(row, hc.Column)
		if math.IsNaN(v) {
			continue
		}
		vp.Heights = append(vp.Heights, float64(hc.Height))
		vp.Values = append(vp.Values, v)
	}
	return vp, nil
}

// Stats summarizes the profile values for the annotation box.
func (p *VerticalProfile) Stats() (mean, std, min, max float64) {
	if len(p.Values) == 0 {
		nan := math.NaN()
		return nan, nan, nan, nan
	}

	min = p.Values[0]
	max = p.Values[0]
	for _, v := range p.Values {
		mean += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean /= float64(len(p.Values))

	for _, v := range p.Values {
		std += (v - mean) * (v - mean)
	}
	// Population standard deviation, as in the campaign notebooks.
	std = math.Sqrt(std / float64(len(p.Values)))
	return mean, std, min, max
}

// ShearFit estimates the power-law exponent and R² from this profile.
func (p *VerticalProfile) ShearFit() (alpha, r2 float64, err error) {
	return profile.EstimateShearExponent(p.Heights, p.Values)
}

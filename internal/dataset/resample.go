package dataset

import (
	"fmt"
	"math"
	"time"
)

// Resample buckets rows by truncating their timestamps to the given
// interval and averages each column within a bucket, ignoring NaN. Buckets
// with no finite value for a column stay NaN. The result keeps the source
// column set and is ordered chronologically.
func (t *Table) Resample(interval time.Duration) (*Table, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("resample interval must be positive, got %s", interval)
	}

	type bucket struct {
		sums   []float64
		counts []int
	}

	buckets := make(map[time.Time]*bucket)
	var order []time.Time
	for r, row := range t.rows {
		key := t.Times[r].Truncate(interval)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				sums:   make([]float64, len(t.Columns)),
				counts: make([]int, len(t.Columns)),
			}
			buckets[key] = b
			order = append(order, key)
		}
		for c, v := range row {
			if math.IsNaN(v) {
				continue
			}
			b.sums[c] += v
			b.counts[c]++
		}
	}

	out := New(t.Columns)
	for _, key := range order {
		b := buckets[key]
		values := make([]float64, len(t.Columns))
		for c := range values {
			if b.counts[c] == 0 {
				values[c] = math.NaN()
				continue
			}
			values[c] = b.sums[c] / float64(b.counts[c])
		}
		if err := out.AppendRow(key, values); err != nil {
			return nil, err
		}
	}
	out.SortByTime()
	return out, nil
}

package dataset

import (
	"math"
	"testing"
	"time"
)

func TestInterpolateByTime_UniformSpacing(t *testing.T) {
	table := New([]string{"ws10"})
	start := baseTime()
	values := []float64{4.0, math.NaN(), math.NaN(), 10.0}
	for i, v := range values {
		table.AppendRow(start.Add(time.Duration(i)*time.Hour), []float64{v})
	}

	table.InterpolateByTime()

	col, _ := table.Column("ws10")
	want := []float64{4.0, 6.0, 8.0, 10.0}
	for i := range want {
		if math.Abs(col[i]-want[i]) > 1e-9 {
			t.Errorf("row %d = %v, want %v", i, col[i], want[i])
		}
	}
}

func TestInterpolateByTime_WeightsByTimeDistance(t *testing.T) {
	// The missing row sits 3 hours after the first known value in a 4-hour
	// gap, so it takes 3/4 of the step.
	table := New([]string{"ws10"})
	start := baseTime()
	table.AppendRow(start, []float64{2.0})
	table.AppendRow(start.Add(3*time.Hour), []float64{math.NaN()})
	table.AppendRow(start.Add(4*time.Hour), []float64{6.0})

	table.InterpolateByTime()

	got := table.Value(1, "ws10")
	if math.Abs(got-5.0) > 1e-9 {
		t.Errorf("interpolated value = %v, want 5.0", got)
	}
}

func TestInterpolateByTime_LeavesEdgeGaps(t *testing.T) {
	table := New([]string{"ws10"})
	start := baseTime()
	values := []float64{math.NaN(), 4.0, math.NaN(), 6.0, math.NaN()}
	for i, v := range values {
		table.AppendRow(start.Add(time.Duration(i)*time.Hour), []float64{v})
	}

	table.InterpolateByTime()

	if got := table.Value(0, "ws10"); !math.IsNaN(got) {
		t.Errorf("leading gap = %v, want NaN", got)
	}
	if got := table.Value(4, "ws10"); !math.IsNaN(got) {
		t.Errorf("trailing gap = %v, want NaN", got)
	}
	if got := table.Value(2, "ws10"); math.Abs(got-5.0) > 1e-9 {
		t.Errorf("interior gap = %v, want 5.0", got)
	}
}

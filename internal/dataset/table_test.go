package dataset

import (
	"math"
	"testing"
	"time"
)

func baseTime() time.Time {
	return time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestTable_AppendAndLookup(t *testing.T) {
	table := New([]string{"ws10", "ws50"})

	if err := table.AppendRow(baseTime(), []float64{4.2, 6.1}); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}
	if err := table.AppendRow(baseTime().Add(10*time.Minute), []float64{4.4, 6.3}); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	if got := table.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := table.Value(0, "ws50"); got != 6.1 {
		t.Errorf("Value(0, ws50) = %v, want 6.1", got)
	}
	if got := table.Value(0, "missing"); !math.IsNaN(got) {
		t.Errorf("Value(0, missing) = %v, want NaN", got)
	}

	col, err := table.Column("ws10")
	if err != nil {
		t.Fatalf("Column(ws10) error = %v", err)
	}
	if col[0] != 4.2 || col[1] != 4.4 {
		t.Errorf("Column(ws10) = %v, want [4.2 4.4]", col)
	}
}

func TestTable_AppendRowShapeMismatch(t *testing.T) {
	table := New([]string{"ws10", "ws50"})
	if err := table.AppendRow(baseTime(), []float64{4.2}); err == nil {
		t.Error("AppendRow() with short row should fail")
	}
}

func TestTable_AddColumn(t *testing.T) {
	table := New([]string{"ws10"})
	table.AppendRow(baseTime(), []float64{4.2})
	table.AppendRow(baseTime().Add(time.Hour), []float64{4.4})

	if err := table.AddColumn("hour_of_day", []float64{0, 1}); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	if got := table.Value(1, "hour_of_day"); got != 1 {
		t.Errorf("Value(1, hour_of_day) = %v, want 1", got)
	}

	if err := table.AddColumn("hour_of_day", []float64{0, 1}); err == nil {
		t.Error("AddColumn() with duplicate name should fail")
	}
	if err := table.AddColumn("short", []float64{0}); err == nil {
		t.Error("AddColumn() with wrong length should fail")
	}
}

func TestTable_SortByTime(t *testing.T) {
	table := New([]string{"ws10"})
	table.AppendRow(baseTime().Add(2*time.Hour), []float64{3})
	table.AppendRow(baseTime(), []float64{1})
	table.AppendRow(baseTime().Add(time.Hour), []float64{2})

	table.SortByTime()

	col, _ := table.Column("ws10")
	for i, want := range []float64{1, 2, 3} {
		if col[i] != want {
			t.Errorf("after sort, row %d = %v, want %v", i, col[i], want)
		}
	}
}

func TestTable_VariablePrefixes(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{
			name:    "speed and direction",
			columns: []string{"ws10", "ws50", "wdir10", "wdir50", "hour_of_day"},
			want:    []string{"wdir", "ws"},
		},
		{
			name:    "single-height variable included",
			columns: []string{"ws10", "ws50", "temp2"},
			want:    []string{"temp", "ws"},
		},
		{
			name:    "no height columns",
			columns: []string{"id", "hour_of_day"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New(tt.columns)
			got := table.VariablePrefixes()
			if len(got) != len(tt.want) {
				t.Fatalf("VariablePrefixes() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("VariablePrefixes()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTable_MissingCount(t *testing.T) {
	table := New([]string{"ws10", "ws50"})
	table.AppendRow(baseTime(), []float64{4.2, math.NaN()})
	table.AppendRow(baseTime().Add(time.Hour), []float64{math.NaN(), 6.3})

	if got := table.MissingCount(); got != 2 {
		t.Errorf("MissingCount() = %d, want 2", got)
	}
}

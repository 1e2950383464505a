// Package dataset holds the in-memory measurement table for a wind-profile
// campaign: time-stamped rows of float channels, loaded from CSV or from
// the provisioned database, plus the transforms the chart panes need
// (time-based interpolation, resampling, vertical profile extraction).
package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Table is a wide-format measurement table. Each row is one observation
// time; each column is one channel ("ws10", "wdir80", "hour_of_day").
// Missing values are NaN.
type Table struct {
	Times   []time.Time
	Columns []string

	rows  [][]float64
	index map[string]int
}

// New creates an empty table with the given column set.
func New(columns []string) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		t.index[col] = i
	}
}

// Len returns the number of observation rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow adds one observation. The values must be co-indexed with the
// table's columns.
func (t *Table) AppendRow(ts time.Time, values []float64) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}
	t.Times = append(t.Times, ts)
	t.rows = append(t.rows, append([]float64(nil), values...))
	return nil
}

// ColumnIndex reports the position of a column, if present.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Column returns a copy of one channel's values across all rows.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	values := make([]float64, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values, nil
}

// Value returns the value at one row for one column, NaN if the column is
// unknown.
func (t *Table) Value(row int, name string) float64 {
	i, ok := t.index[name]
	if !ok || row < 0 || row >= len(t.rows) {
		return math.NaN()
	}
	return t.rows[row][i]
}

// AddColumn appends a derived channel. The values must be co-indexed with
// the table's rows.
func (t *Table) AddColumn(name string, values []float64) error {
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(values) != len(t.rows) {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.rows))
	}
	t.Columns = append(t.Columns, name)
	t.index[name] = len(t.Columns) - 1
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], values[r])
	}
	return nil
}

// SortByTime orders rows chronologically. Loading requires this before
// interpolation or resampling.
func (t *Table) SortByTime() {
	order := make([]int, len(t.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.Times[order[a]].Before(t.Times[order[b]])
	})

	times := make([]time.Time, len(t.rows))
	rows := make([][]float64, len(t.rows))
	for i, src := range order {
		times[i] = t.Times[src]
		rows[i] = t.rows[src]
	}
	t.Times = times
	t.rows = rows
}

// MissingCount reports how many values are NaN across the whole table.
func (t *Table) MissingCount() int {
	count := 0
	for _, row := range t.rows {
		for _, v := range row {
			if math.IsNaN(v) {
				count++
			}
		}
	}
	return count
}

// VariablePrefixes lists the variable prefixes present in the column set:
// every distinct stem that is followed by an integer height in at least one
// column ("ws", "wdir"). Calendar and scalar columns have no trailing
// height and are excluded.
func (t *Table) VariablePrefixes() []string {
	seen := make(map[string]bool)
	for _, col := range t.Columns {
		stem := strings.TrimRightFunc(col, unicode.IsDigit)
		if stem == "" || stem == col {
			continue
		}
		if strings.ContainsFunc(stem, unicode.IsDigit) {
			continue
		}
		seen[stem] = true
	}

	var prefixes []string
	for stem := range seen {
		prefixes = append(prefixes, stem)
	}
	sort.Strings(prefixes)
	return prefixes
}

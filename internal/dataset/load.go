package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// timestampColumn is the CSV column that carries the observation time. The
// logger writes it as a datetime string, sometimes with fractional seconds
// appended after a dot.
const timestampColumn = "id"

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadCSV reads a campaign CSV and applies the load-time preprocessing:
// rows sorted chronologically, interior gaps interpolated linearly in time,
// and calendar channels appended for grouping (hour_of_day, day_of_week,
// month, day, year).
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	tsIdx := -1
	var columns []string
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == timestampColumn {
			tsIdx = i
			continue
		}
		columns = append(columns, name)
	}
	if tsIdx < 0 {
		return nil, fmt.Errorf("dataset %s has no %q column", path, timestampColumn)
	}

	table := New(columns)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line++

		ts, err := parseTimestamp(record[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		values := make([]float64, 0, len(columns))
		for i, field := range record {
			if i == tsIdx {
				continue
			}
			values = append(values, parseValue(field))
		}
		if err := table.AppendRow(ts, values); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if table.Len() == 0 {
		return nil, fmt.Errorf("dataset %s has no observation rows", path)
	}

	table.SortByTime()

	if missing := table.MissingCount(); missing > 0 {
		log.Printf("Dataset has %d missing values, interpolating interior gaps by time", missing)
		table.InterpolateByTime()
	}

	if err := addCalendarColumns(table); err != nil {
		return nil, err
	}
	return table, nil
}

// parseTimestamp handles the campaign id format: a datetime string with an
// optional fractional-seconds part after a dot, which is stripped before
// parsing.
func parseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", raw)
}

func parseValue(field string) float64 {
	field = strings.TrimSpace(field)
	if field == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// addCalendarColumns appends the grouping channels used by the diurnal and
// seasonal views. day_of_week counts Monday as 0.
func addCalendarColumns(t *Table) error {
	n := t.Len()
	hour := make([]float64, n)
	dow := make([]float64, n)
	month := make([]float64, n)
	day := make([]float64, n)
	year := make([]float64, n)

	for i, ts := range t.Times {
		hour[i] = float64(ts.Hour())
		dow[i] = float64((int(ts.Weekday()) + 6) % 7)
		month[i] = float64(int(ts.Month()))
		day[i] = float64(ts.Day())
		year[i] = float64(ts.Year())
	}

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"hour_of_day", hour},
		{"day_of_week", dow},
		{"month", month},
		{"day", day},
		{"year", year},
	} {
		if err := t.AddColumn(col.name, col.values); err != nil {
			return fmt.Errorf("adding calendar column: %w", err)
		}
	}
	return nil
}

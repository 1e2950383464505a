// Package profile holds the numeric core of the wind-profile analysis:
// resolving measurement-height columns from the dataset naming convention,
// power-law wind speed extrapolation, and empirical shear-exponent
// estimation.
package profile

import (
	"sort"
	"strconv"
	"strings"
)

// HeightColumn pairs a physical measurement height in meters with the
// dataset column carrying that variable at that height.
type HeightColumn struct {
	Height int
	Column string
}

// ResolveHeightColumns finds the columns that encode one variable across
// measurement heights. Column names follow the campaign convention of a
// variable prefix followed by an integer height in meters ("ws10", "ws120",
// "wdir80"). The result is ordered by ascending height, with the column
// names and heights co-indexed.
//
// Non-matching columns are ignored; an empty match set returns an empty
// mapping, not an error. A matching column whose remainder is not a
// non-negative integer returns a *ParseError naming it. Duplicate heights
// violate the dataset invariant but are kept in input order rather than
// silently dropped.
func ResolveHeightColumns(columns []string, prefix string) ([]HeightColumn, error) {
	var resolved []HeightColumn
	for _, col := range columns {
		if !strings.HasPrefix(col, prefix) {
			continue
		}
		suffix := strings.TrimPrefix(col, prefix)
		height, err := strconv.Atoi(suffix)
		if err != nil || height < 0 {
			return nil, &ParseError{Column: col, Suffix: suffix}
		}
		resolved = append(resolved, HeightColumn{Height: height, Column: col})
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Height < resolved[j].Height
	})
	return resolved, nil
}

// Heights returns the height values of a resolved mapping, in order.
func Heights(mapping []HeightColumn) []int {
	heights := make([]int, len(mapping))
	for i, hc := range mapping {
		heights[i] = hc.Height
	}
	return heights
}

// Columns returns the column names of a resolved mapping, in order.
func Columns(mapping []HeightColumn) []string {
	columns := make([]string, len(mapping))
	for i, hc := range mapping {
		columns[i] = hc.Column
	}
	return columns
}

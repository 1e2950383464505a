package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHeightColumns_SortsByHeight(t *testing.T) {
	columns := []string{"ws100", "ws10", "timestamp", "ws50", "wdir10", "ws20"}

	resolved, err := ResolveHeightColumns(columns, "ws")
	require.NoError(t, err)

	want := []HeightColumn{
		{Height: 10, Column: "ws10"},
		{Height: 20, Column: "ws20"},
		{Height: 50, Column: "ws50"},
		{Height: 100, Column: "ws100"},
	}
	assert.Equal(t, want, resolved)
	assert.Equal(t, []int{10, 20, 50, 100}, Heights(resolved))
	assert.Equal(t, []string{"ws10", "ws20", "ws50", "ws100"}, Columns(resolved))
}

func TestResolveHeightColumns_EmptyMatchSet(t *testing.T) {
	resolved, err := ResolveHeightColumns([]string{"temp2", "pressure0"}, "ws")
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveHeightColumns_IgnoresNonMatchingMalformedNames(t *testing.T) {
	// "wdirX" is malformed but does not match the "ws" prefix, so it must
	// not trigger a parse error.
	resolved, err := ResolveHeightColumns([]string{"ws10", "ws50", "wdirX"}, "ws")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 50}, Heights(resolved))
}

func TestResolveHeightColumns_ParseError(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		prefix  string
		column  string
	}{
		{"non-numeric suffix", []string{"ws10", "wsX"}, "ws", "wsX"},
		{"empty suffix", []string{"ws", "ws10"}, "ws", "ws"},
		{"negative height", []string{"ws-5"}, "ws", "ws-5"},
		{"mixed suffix", []string{"wsgust10"}, "ws", "wsgust10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveHeightColumns(tt.columns, tt.prefix)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.column, parseErr.Column)
		})
	}
}

func TestResolveHeightColumns_DuplicateHeightsKept(t *testing.T) {
	// Duplicate heights break the dataset invariant; the resolver must not
	// silently drop either column.
	resolved, err := ResolveHeightColumns([]string{"ws010", "ws10"}, "ws")
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "ws010", resolved[0].Column)
	assert.Equal(t, "ws10", resolved[1].Column)
}

func TestResolveHeightColumns_ErrorsAreMatchable(t *testing.T) {
	_, err := ResolveHeightColumns([]string{"wsX"}, "ws")
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*ParseError)))
	assert.Contains(t, err.Error(), "wsX")
}

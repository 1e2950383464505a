package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mfribeiro/windprof/internal/profile"
)

// renderHeatmapPane renders the selected variable as a height × time color
// grid over the resampled table: one row per measurement height (highest on
// top), one cell per time bucket.
func (m Model) renderHeatmapPane(width, height int) string {
	mapping, err := profile.ResolveHeightColumns(m.resampled.Columns, m.prefix())
	if err != nil {
		return m.theme.Muted.Render(fmt.Sprintf("Cannot resolve height columns: %v", err))
	}
	if len(mapping) == 0 {
		return m.theme.Muted.Render(fmt.Sprintf("No height columns for %q", m.prefix()))
	}

	// Global color scale across all heights and buckets.
	lo := math.Inf(1)
	hi := math.Inf(-1)
	grid := make([][]float64, len(mapping))
	for i, hc := range mapping {
		col, err := m.resampled.Column(hc.Column)
		if err != nil {
			return m.theme.Muted.Render(err.Error())
		}
		grid[i] = col
		for _, v := range col {
			if math.IsNaN(v) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo > hi {
		return m.theme.Muted.Render("No finite values to plot")
	}

	// Downsample buckets to the available width; each cell is two runes.
	cells := (width - 12) / 2
	if cells < 4 {
		cells = 4
	}
	buckets := m.resampled.Len()
	stride := (buckets + cells - 1) / cells
	if stride < 1 {
		stride = 1
	}

	var content strings.Builder
	content.WriteString(m.theme.Label.Render(fmt.Sprintf("%s by height and time, %s mean, range %.2f – %.2f",
		m.prefix(), m.opts.Resample, lo, hi)))
	content.WriteString("\n\n")

	for i := len(mapping) - 1; i >= 0; i-- {
		content.WriteString(fmt.Sprintf("%5d m  ", mapping[i].Height))
		for b := 0; b < buckets; b += stride {
			v := strideMean(grid[i], b, stride)
			if math.IsNaN(v) {
				content.WriteString(m.theme.Muted.Render("··"))
				continue
			}
			style := lipgloss.NewStyle().Foreground(m.rampColor(v, lo, hi))
			content.WriteString(style.Render("██"))
		}
		content.WriteString("\n")
	}

	// Time axis: first and last bucket.
	first := m.resampled.Times[0].Format("2006-01-02")
	last := m.resampled.Times[buckets-1].Format("2006-01-02")
	axisWidth := ((buckets + stride - 1) / stride) * 2
	gap := axisWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	content.WriteString("\n         ")
	content.WriteString(m.theme.Muted.Render(first + strings.Repeat(" ", gap) + last))

	return content.String()
}

// strideMean averages the finite values of one downsampled cell.
func strideMean(col []float64, start, stride int) float64 {
	sum := 0.0
	count := 0
	for i := start; i < len(col) && i < start+stride; i++ {
		if math.IsNaN(col[i]) {
			continue
		}
		sum += col[i]
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// rampColor maps a value onto the theme's heatmap gradient.
func (m Model) rampColor(v, lo, hi float64) lipgloss.Color {
	stops := m.theme.Ramp
	if len(stops) == 0 {
		return lipgloss.Color("#FFFFFF")
	}
	if len(stops) == 1 || hi <= lo {
		return stops[0]
	}

	frac := (v - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	segments := float64(len(stops) - 1)
	pos := frac * segments
	idx := int(pos)
	if idx >= len(stops)-1 {
		idx = len(stops) - 2
	}
	return blendHex(stops[idx], stops[idx+1], pos-float64(idx))
}

// blendHex linearly interpolates two #RRGGBB colors.
func blendHex(a, b lipgloss.Color, frac float64) lipgloss.Color {
	ar, ag, ab, okA := parseHex(string(a))
	br, bg, bb, okB := parseHex(string(b))
	if !okA || !okB {
		return a
	}
	mix := func(x, y int) int {
		return x + int(math.Round(float64(y-x)*frac))
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", mix(ar, br), mix(ag, bg), mix(ab, bb)))
}

func parseHex(s string) (r, g, b int, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}

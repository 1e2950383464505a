package ui

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/mfribeiro/windprof/internal/profile"
)

// sectorNames are the 16 compass sectors of the wind rose, clockwise from
// north.
var sectorNames = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// renderRosePane renders a 16-sector wind rose from the lowest height that
// carries both a speed and a direction channel: bar height is the sector's
// share of observations, bar color its mean speed.
func (m Model) renderRosePane(width, height int) string {
	wsCol, wdirCol, h, err := m.roseChannels()
	if err != nil {
		return m.theme.Muted.Render(err.Error())
	}

	speeds, err := m.table.Column(wsCol)
	if err != nil {
		return m.theme.Muted.Render(err.Error())
	}
	directions, err := m.table.Column(wdirCol)
	if err != nil {
		return m.theme.Muted.Render(err.Error())
	}

	var counts [16]int
	var speedSums [16]float64
	total := 0
	for i := range speeds {
		if math.IsNaN(speeds[i]) || math.IsNaN(directions[i]) {
			continue
		}
		s := sectorIndex(directions[i])
		counts[s]++
		speedSums[s] += speeds[i]
		total++
	}
	if total == 0 {
		return m.theme.Muted.Render("No paired speed/direction observations")
	}

	maxMean := 0.0
	for s := range counts {
		if counts[s] > 0 && speedSums[s]/float64(counts[s]) > maxMean {
			maxMean = speedSums[s] / float64(counts[s])
		}
	}

	chartHeight := height - 5
	if chartHeight < 6 {
		chartHeight = 6
	}
	chartWidth := width - 4
	if chartWidth < 32 {
		chartWidth = 32
	}

	bc := barchart.New(chartWidth, chartHeight)
	data := make([]barchart.BarData, 0, 16)
	for s := range counts {
		freq := 100 * float64(counts[s]) / float64(total)
		mean := 0.0
		if counts[s] > 0 {
			mean = speedSums[s] / float64(counts[s])
		}
		data = append(data, barchart.BarData{
			Label: sectorNames[s],
			Values: []barchart.BarValue{
				{
					Name:  "frequency",
					Value: freq,
					Style: lipgloss.NewStyle().Foreground(m.speedColor(mean, maxMean)),
				},
			},
		})
	}
	bc.PushAll(data)
	bc.Draw()

	header := m.theme.Label.Render(fmt.Sprintf("Wind rose at %d m (%s vs %s), %% of %d observations",
		h, wsCol, wdirCol, total))
	return header + "\n\n" + bc.View()
}

// roseChannels finds the lowest height with both a speed and a direction
// channel.
func (m Model) roseChannels() (wsCol, wdirCol string, height int, err error) {
	wsMapping, err := profile.ResolveHeightColumns(m.table.Columns, "ws")
	if err != nil {
		return "", "", 0, err
	}
	wdirMapping, err := profile.ResolveHeightColumns(m.table.Columns, "wdir")
	if err != nil {
		return "", "", 0, err
	}

	wdirByHeight := make(map[int]string, len(wdirMapping))
	for _, hc := range wdirMapping {
		wdirByHeight[hc.Height] = hc.Column
	}
	for _, hc := range wsMapping {
		if wdir, ok := wdirByHeight[hc.Height]; ok {
			return hc.Column, wdir, hc.Height, nil
		}
	}
	return "", "", 0, fmt.Errorf("no height carries both ws and wdir channels")
}

// sectorIndex maps a direction in degrees onto one of 16 compass sectors.
func sectorIndex(deg float64) int {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return int((deg+11.25)/22.5) % 16
}

// speedColor picks a series color by mean speed relative to the windiest
// sector.
func (m Model) speedColor(mean, maxMean float64) lipgloss.Color {
	if len(m.theme.Series) == 0 {
		return lipgloss.Color("#FFFFFF")
	}
	if maxMean <= 0 {
		return m.theme.Series[0]
	}
	idx := int(mean / maxMean * float64(len(m.theme.Series)-1))
	if idx >= len(m.theme.Series) {
		idx = len(m.theme.Series) - 1
	}
	return m.theme.Series[idx]
}

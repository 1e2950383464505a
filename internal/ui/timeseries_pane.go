package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
)

// renderTimeSeriesPane renders the resampled series of the selected
// channel as a braille line chart, with a sparkline of the most recent raw
// values underneath.
func (m Model) renderTimeSeriesPane(width, height int) string {
	values, err := m.resampled.Column(m.channel)
	if err != nil {
		return m.theme.Muted.Render(fmt.Sprintf("No channel selected: %v", err))
	}

	var content strings.Builder
	content.WriteString(m.theme.Label.Render(fmt.Sprintf("%s, %s mean", m.channel, m.opts.Resample)))
	content.WriteString("\n")

	chartHeight := height - 6
	if chartHeight < 4 {
		chartHeight = 4
	}
	chartWidth := width - 4
	if chartWidth < 20 {
		chartWidth = 20
	}

	chart := timeserieslinechart.New(chartWidth, chartHeight)
	pushed := 0
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		chart.Push(timeserieslinechart.TimePoint{Time: m.resampled.Times[i], Value: v})
		pushed++
	}
	if pushed == 0 {
		return m.theme.Muted.Render("Channel has no finite values after resampling")
	}
	chart.DrawBraille()
	content.WriteString(chart.View())
	content.WriteString("\n")

	content.WriteString(m.theme.Label.Render("Recent raw values"))
	content.WriteString("\n")
	content.WriteString(m.renderRecentSparkline(chartWidth))

	return content.String()
}

// renderRecentSparkline shows the last raw observations of the channel.
// NaN gaps draw as zero.
func (m Model) renderRecentSparkline(width int) string {
	raw, err := m.table.Column(m.channel)
	if err != nil {
		return ""
	}

	n := width
	if len(raw) < n {
		n = len(raw)
	}
	recent := make([]float64, 0, n)
	for _, v := range raw[len(raw)-n:] {
		if math.IsNaN(v) {
			v = 0
		}
		recent = append(recent, v)
	}

	sl := sparkline.New(width, 3)
	sl.PushAll(recent)
	sl.Draw()
	return sl.View()
}

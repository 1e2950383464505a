package ui

import (
	"math"
	"strings"
	"testing"
)

func TestRenderProfilePane(t *testing.T) {
	m := displayModel(t)
	m.prefixIdx = 1 // "ws"

	pane := m.renderProfilePane(80)

	for _, want := range []string{"ws profile", "10 m", "50 m", "100 m", "Stats", "Shear fit", "α", "R²"} {
		if !strings.Contains(pane, want) {
			t.Errorf("profile pane missing %q", want)
		}
	}
	// The test data follows an exact 0.2 power law.
	if !strings.Contains(pane, "α = 0.200") {
		t.Errorf("profile pane missing fitted exponent, got:\n%s", pane)
	}
	if !strings.Contains(pane, "Extrapolation") || !strings.Contains(pane, "150 m") {
		t.Error("profile pane missing extrapolation above the mast")
	}
}

func TestRenderProfilePane_DirectionHasNoFit(t *testing.T) {
	m := displayModel(t)
	m.prefixIdx = 0 // "wdir" has a single height

	pane := m.renderProfilePane(80)
	if !strings.Contains(pane, "Shear fit unavailable") {
		t.Errorf("single-height profile should report fit unavailable, got:\n%s", pane)
	}
}

func TestRenderTimeSeriesPane(t *testing.T) {
	m := displayModel(t)
	m.channel = "ws10"

	pane := m.renderTimeSeriesPane(90, 30)

	if !strings.Contains(pane, "ws10") {
		t.Error("time series pane missing channel name")
	}
	if !strings.Contains(pane, "Recent raw values") {
		t.Error("time series pane missing sparkline section")
	}
	if len(strings.Split(pane, "\n")) < 5 {
		t.Error("time series pane suspiciously short")
	}
}

func TestRenderTimeSeriesPane_UnknownChannel(t *testing.T) {
	m := displayModel(t)
	m.channel = "nope"

	pane := m.renderTimeSeriesPane(90, 30)
	if !strings.Contains(pane, "No channel selected") {
		t.Errorf("expected missing-channel notice, got:\n%s", pane)
	}
}

func TestRenderHeatmapPane(t *testing.T) {
	m := displayModel(t)
	m.prefixIdx = 1 // "ws"

	pane := m.renderHeatmapPane(90, 30)

	if !strings.Contains(pane, "ws by height and time") {
		t.Error("heatmap pane missing title")
	}
	if !strings.Contains(pane, "██") {
		t.Error("heatmap pane has no cells")
	}
	if !strings.Contains(pane, "2023-06-01") {
		t.Error("heatmap pane missing time axis")
	}
}

func TestRenderRosePane(t *testing.T) {
	m := displayModel(t)

	pane := m.renderRosePane(90, 30)
	if !strings.Contains(pane, "Wind rose at 10 m") {
		t.Errorf("rose pane missing header, got:\n%s", pane)
	}
}

func TestSectorIndex(t *testing.T) {
	tests := []struct {
		deg  float64
		want int
	}{
		{0, 0},
		{11, 0},
		{12, 1},
		{90, 4},
		{180, 8},
		{270, 12},
		{340, 15},
		{359, 0},
		{-90, 12},
		{450, 4},
	}
	for _, tt := range tests {
		if got := sectorIndex(tt.deg); got != tt.want {
			t.Errorf("sectorIndex(%v) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

func TestStrideMean(t *testing.T) {
	col := []float64{1, 2, math.NaN(), 4}

	if got := strideMean(col, 0, 2); got != 1.5 {
		t.Errorf("strideMean(0,2) = %v, want 1.5", got)
	}
	if got := strideMean(col, 2, 2); got != 4 {
		t.Errorf("strideMean(2,2) = %v, want 4 (NaN ignored)", got)
	}
	if got := strideMean([]float64{math.NaN()}, 0, 1); !math.IsNaN(got) {
		t.Errorf("strideMean of all-NaN = %v, want NaN", got)
	}
}

func TestBlendHex(t *testing.T) {
	if got := blendHex("#000000", "#FFFFFF", 0); got != "#000000" {
		t.Errorf("blend at 0 = %v, want #000000", got)
	}
	if got := blendHex("#000000", "#FFFFFF", 1); got != "#FFFFFF" {
		t.Errorf("blend at 1 = %v, want #FFFFFF", got)
	}
	if got := blendHex("#000000", "#FFFFFF", 0.5); got != "#808080" {
		t.Errorf("blend at 0.5 = %v, want #808080", got)
	}
}

func TestRampColor_Bounds(t *testing.T) {
	m := displayModel(t)

	if got := m.rampColor(0, 0, 10); got != m.theme.Ramp[0] {
		t.Errorf("ramp at minimum = %v, want first stop %v", got, m.theme.Ramp[0])
	}
	if got := m.rampColor(10, 0, 10); got != m.theme.Ramp[len(m.theme.Ramp)-1] {
		t.Errorf("ramp at maximum = %v, want last stop %v", got, m.theme.Ramp[len(m.theme.Ramp)-1])
	}
}

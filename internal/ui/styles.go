package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the explicit style configuration passed to every render call.
// Rendering never mutates process-wide style state.
type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
	Header lipgloss.Style

	Pane       lipgloss.Style
	ActivePane lipgloss.Style

	// Series are the per-series accent colors, in plotting order.
	Series []lipgloss.Color
	// Ramp holds the ordered color stops of the heatmap gradient.
	Ramp []lipgloss.Color
}

// DefaultTheme returns the campaign palette.
func DefaultTheme() Theme {
	var (
		colorPrimary = lipgloss.Color("#1E88E5")
		colorDanger  = lipgloss.Color("#D81B60")
		colorMuted   = lipgloss.Color("#6C757D")
		colorBorder  = lipgloss.Color("#4A90E2")
	)

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),

		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),

		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0),

		Error: lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2),

		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2),

		Series: []lipgloss.Color{
			"#1E88E5", "#FFC107", "#D81B60", "#8D6E63", "#5E35B1", "#00ACC1", "#43A047",
		},

		Ramp: []lipgloss.Color{
			"#1E88E5", "#43A047", "#FFC107", "#D81B60",
		},
	}
}

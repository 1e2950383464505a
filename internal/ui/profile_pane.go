package ui

import (
	"fmt"
	"strings"

	"github.com/mfribeiro/windprof/internal/dataset"
	"github.com/mfribeiro/windprof/internal/profile"
)

// renderProfilePane renders the vertical profile at the selected timestamp:
// one bar per measurement height, the stats box, and the power-law shear
// fit with an extrapolation above the mast.
func (m Model) renderProfilePane(width int) string {
	vp, err := m.table.ProfileAt(m.rowIdx, m.prefix())
	if err != nil {
		return m.theme.Muted.Render(fmt.Sprintf("No profile available: %v", err))
	}
	if len(vp.Values) == 0 {
		return m.theme.Muted.Render("All heights missing at this timestamp")
	}

	var content strings.Builder

	content.WriteString(m.theme.Label.Render(fmt.Sprintf("%s profile at %s",
		vp.Prefix, vp.Time.Format("2006-01-02 15:04"))))
	content.WriteString("\n\n")

	mean, std, min, max := vp.Stats()

	// Bars scale against the profile maximum; highest measurement on top.
	barWidth := width - 24
	if barWidth < 8 {
		barWidth = 8
	}
	barStyle := m.theme.Value.Foreground(m.theme.Series[0])
	for i := len(vp.Heights) - 1; i >= 0; i-- {
		n := 0
		if max > 0 {
			n = int(float64(barWidth) * vp.Values[i] / max)
		}
		if n < 1 && vp.Values[i] > 0 {
			n = 1
		}
		content.WriteString(fmt.Sprintf("%5.0f m  %s %s\n",
			vp.Heights[i],
			barStyle.Render(strings.Repeat("█", n)),
			m.theme.Value.Render(fmt.Sprintf("%.2f", vp.Values[i]))))
	}

	content.WriteString("\n")
	content.WriteString(m.theme.Label.Render("Stats"))
	content.WriteString(fmt.Sprintf("  mean %.2f  std %.2f  min %.2f  max %.2f\n",
		mean, std, min, max))
	content.WriteString(m.renderShearFit(vp))

	return content.String()
}

// renderShearFit shows the fitted exponent and R², plus an extrapolation
// 50 m above the highest measurement using both the fitted and the
// configured exponent. Direction profiles and degenerate inputs render a
// muted note instead.
func (m Model) renderShearFit(vp *dataset.VerticalProfile) string {
	alpha, r2, err := vp.ShearFit()
	if err != nil {
		return m.theme.Muted.Render(fmt.Sprintf("Shear fit unavailable: %v", err)) + "\n"
	}

	var content strings.Builder
	content.WriteString(m.theme.Label.Render("Shear fit"))
	content.WriteString(fmt.Sprintf("  α = %.3f  R² = %.3f\n", alpha, r2))

	top := len(vp.Heights) - 1
	target := vp.Heights[top] + 50
	fitted, errFit := profile.WindSpeedAtHeight(target, vp.Heights[top], vp.Values[top], alpha)
	assumed, errAssumed := profile.WindSpeedAtHeight(target, vp.Heights[top], vp.Values[top], m.opts.Alpha)
	if errFit == nil && errAssumed == nil {
		content.WriteString(m.theme.Label.Render("Extrapolation"))
		content.WriteString(fmt.Sprintf("  %.0f m: %.2f (fitted α)  %.2f (α=%.3f)\n",
			target, fitted, assumed, m.opts.Alpha))
	}
	return content.String()
}

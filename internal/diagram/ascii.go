package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// CurveData holds a factor of safety sweep over candidate diameters
type CurveData struct {
	Material string

	Diameters      []float64 // mm
	FactorOfSafety []float64 // actual FoS at each diameter, Kt applied

	Target   float64 // desired FoS
	Selected float64 // accepted diameter (mm), 0 if none
}

// DrawFactorOfSafetyCurve plots actual FoS against diameter, with the
// desired FoS as a second flat series
func DrawFactorOfSafetyCurve(data CurveData) string {
	if len(data.FactorOfSafety) == 0 {
		return ""
	}

	target := make([]float64, len(data.FactorOfSafety))
	for i := range target {
		target[i] = data.Target
	}

	caption := fmt.Sprintf("FoS vs diameter %.1f-%.1f mm (target %.2f)",
		data.Diameters[0], data.Diameters[len(data.Diameters)-1], data.Target)
	if data.Selected > 0 {
		caption += fmt.Sprintf(", selected %.2f mm", data.Selected)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  FACTOR OF SAFETY CURVE\n")
	sb.WriteString("  ──────────────────────\n\n")
	sb.WriteString(asciigraph.PlotMany([][]float64{data.FactorOfSafety, target},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(4),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	gaugeFilledRune = '█'
	gaugeEmptyRune  = '░'
)

// GaugeStyle configures a horizontal bar gauge.
type GaugeStyle struct {
	Label       string  // left label, e.g. "CPU"
	LabelWidth  int     // fixed label column width (0 = len(Label)+1)
	FilledColor string  // hex color for the filled portion
	EmptyColor  string  // hex color for the empty portion
	WarnAt      float64 // ratio (0-1) where the fill turns warning-colored
	CritAt      float64 // ratio (0-1) where the fill turns critical-colored
	WarnColor   string
	CritColor   string
}

// Gauge renders a labeled bar like "CPU [████░░░░░░]  42.0%" at the
// given total width. value/maxValue define the fill ratio, clamped to
// [0, 1]. The percentage suffix always shows one decimal place.
func Gauge(value, maxValue float64, width int, style GaugeStyle) string {
	if width <= 0 {
		return ""
	}

	ratio := 0.0
	if maxValue > 0 {
		ratio = value / maxValue
	}
	ratio = math.Min(math.Max(ratio, 0), 1)

	pct := fmt.Sprintf(" %5.1f%%", ratio*100)

	labelW := style.LabelWidth
	if labelW <= 0 && style.Label != "" {
		labelW = len(style.Label) + 1
	}

	barW := width - labelW - len(pct) - 2 // brackets
	if barW < 4 {
		barW = 4
	}

	filled := int(math.Round(ratio * float64(barW)))
	if filled > barW {
		filled = barW
	}

	fillColor := style.FilledColor
	if style.WarnAt > 0 && ratio >= style.WarnAt && style.WarnColor != "" {
		fillColor = style.WarnColor
	}
	if style.CritAt > 0 && ratio >= style.CritAt && style.CritColor != "" {
		fillColor = style.CritColor
	}

	fill := strings.Repeat(string(gaugeFilledRune), filled)
	rest := strings.Repeat(string(gaugeEmptyRune), barW-filled)

	if fillColor != "" {
		fill = lipgloss.NewStyle().Foreground(lipgloss.Color(fillColor)).Render(fill)
	}
	if style.EmptyColor != "" {
		rest = lipgloss.NewStyle().Foreground(lipgloss.Color(style.EmptyColor)).Render(rest)
	}

	var b strings.Builder
	if labelW > 0 {
		b.WriteString(PadRight(Truncate(style.Label, labelW), labelW))
	}
	b.WriteString("[")
	b.WriteString(fill)
	b.WriteString(rest)
	b.WriteString("]")
	b.WriteString(pct)
	return b.String()
}

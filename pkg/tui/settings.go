package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/hostpulse/pkg/theme"
)

// Settings renders the refresh-interval input and the theme selector.
// intervalView is the rendered settings text input; interval is the
// currently applied numeric period.
func Settings(intervalView string, interval int, darkMode bool, th theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true)

	var b strings.Builder

	b.WriteString("Refresh interval (seconds)\n")
	b.WriteString(intervalView)
	b.WriteString("\n")
	b.WriteString(dimText(fmt.Sprintf("applied: every %ds  [i edit]", interval), th))
	b.WriteString("\n\n")

	b.WriteString("Theme  ")
	light, dark := "light", "dark"
	if darkMode {
		dark = accent.Render("● " + dark)
	} else {
		light = accent.Render("● " + light)
	}
	b.WriteString(light)
	b.WriteString("  ")
	b.WriteString(dark)
	b.WriteString("\n")
	b.WriteString(dimText("[t toggle]", th))

	return b.String()
}

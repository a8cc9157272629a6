package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/hostpulse/pkg/components"
	"gitlab.com/tinyland/lab/hostpulse/pkg/theme"
)

// Tabs renders the screen selector line with the active tab accented.
func Tabs(labels []string, active int, th theme.Theme, width int) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true)

	line := ""
	for i, l := range labels {
		if i > 0 {
			line += "  "
		}
		if i == active {
			line += accent.Render("[" + l + "]")
		} else {
			line += dimTheme(th).Render(" " + l + " ")
		}
	}
	return components.Truncate(line, width)
}

// StatusBar renders the bottom line: the notice when one is pending
// (colored by severity), otherwise the key hints. Pads or truncates to
// exactly width cells.
func StatusBar(notice string, noticeIsError bool, th theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}

	if notice != "" {
		color := th.StatusOK
		if noticeIsError {
			color = th.StatusError
		}
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(
			components.TruncateWithTail(notice, width, "…"))
		return components.PadRight(styled, width)
	}

	hints := "tab:screen  /:filter  c/m:sort  e:export  t:theme  q:quit"
	return dimTheme(th).Render(components.PadRight(components.Truncate(hints, width), width))
}

func dimTheme(th theme.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))
}

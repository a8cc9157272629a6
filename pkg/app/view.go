package app

import (
	"strings"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/hostpulse/pkg/theme"
	"gitlab.com/tinyland/lab/hostpulse/pkg/tui"
)

// View projects the model into the terminal frame. It performs no
// mutation and no I/O.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	th := theme.ForMode(m.darkMode)

	var b strings.Builder

	b.WriteString(tui.Tabs(
		[]string{ScreenOverview.String(), ScreenProcesses.String(), ScreenSettings.String()},
		int(m.screen), th, width))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenProcesses:
		var detail *sysmetrics.Process
		if p, ok := m.Selected(); ok {
			detail = &p
		}
		sortLabel := "cpu"
		if m.sortOrder == SortByMemory {
			sortLabel = "memory"
		}
		b.WriteString(tui.Processes(tui.ProcessView{
			Rows:        m.Visible(),
			SelectedPID: m.selectedPID,
			Detail:      detail,
			FilterView:  m.filterInput.View(),
			SortLabel:   sortLabel,
			Exporting:   m.exporting,
		}, th, width))

	case ScreenSettings:
		b.WriteString(tui.Settings(m.intervalInput.View(), m.interval, m.darkMode, th, width))

	default:
		b.WriteString(tui.Overview(m.metrics, th, width))
	}

	b.WriteString("\n\n")

	noticeText := ""
	noticeErr := false
	if m.notice != nil {
		noticeText = m.notice.Text
		noticeErr = m.notice.Severity == SeverityError
	}
	b.WriteString(tui.StatusBar(noticeText, noticeErr, th, width))

	return b.String()
}

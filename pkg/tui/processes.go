package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/hostpulse/pkg/components"
	"gitlab.com/tinyland/lab/hostpulse/pkg/theme"
)

// Column widths for the process table.
const (
	colPID = 8
	colCPU = 7
	colMem = 10
)

// ProcessView carries everything the process screen needs, already
// projected by the model.
type ProcessView struct {
	Rows        []sysmetrics.Process
	SelectedPID int32
	Detail      *sysmetrics.Process // nil when nothing resolves
	FilterView  string              // rendered filter input
	SortLabel   string              // "cpu" or "memory"
	Exporting   bool
}

// Processes renders the filter bar, the process table, and the detail
// panel for the current selection.
func Processes(v ProcessView, th theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder

	action := "e export"
	if v.Exporting {
		action = "exporting..."
	}
	b.WriteString(v.FilterView)
	b.WriteString("   ")
	b.WriteString(dimText(fmt.Sprintf("sort:%s  [c/m sort  %s]", v.SortLabel, action), th))
	b.WriteString("\n\n")

	b.WriteString(procHeader(th, width))
	b.WriteString("\n")

	if len(v.Rows) == 0 {
		b.WriteString(dimText("No matching processes", th))
		return b.String()
	}

	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true)
	for _, p := range v.Rows {
		line := procRow(p, width)
		if p.PID == v.SelectedPID {
			line = selStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if v.Detail != nil {
		b.WriteString("\n")
		b.WriteString(procDetail(*v.Detail, th, width))
	}

	return b.String()
}

func procHeader(th theme.Theme, width int) string {
	h := "  " +
		components.PadRight("PID", colPID) +
		components.PadRight("CPU%", colCPU) +
		components.PadRight("MEM", colMem) +
		"NAME"
	return dimText(components.Truncate(h, width), th)
}

func procRow(p sysmetrics.Process, width int) string {
	line := components.PadRight(fmt.Sprintf("%d", p.PID), colPID) +
		components.PadRight(fmt.Sprintf("%.1f", p.CPU), colCPU) +
		components.PadRight(humanize.IBytes(p.Memory), colMem) +
		p.Name
	return components.TruncateWithTail(line, width-2, "…")
}

// procDetail renders the selected-process panel: name, pid, status,
// user, cpu, and memory.
func procDetail(p sysmetrics.Process, th theme.Theme, width int) string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Border)).
		Padding(0, 1)

	status := p.Status
	if status == "" {
		status = "unknown"
	}

	body := fmt.Sprintf("%s (pid %d)\nstatus: %s  user: %s\ncpu: %.1f%%  memory: %s",
		p.Name, p.PID, status, p.User, p.CPU, humanize.IBytes(p.Memory))

	inner := width - 6
	if inner < 10 {
		inner = 10
	}
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = components.TruncateWithTail(l, inner, "…")
	}

	return panel.Render(strings.Join(lines, "\n"))
}

func dimText(s string, th theme.Theme) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).Render(s)
}

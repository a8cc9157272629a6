package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

// noticeTTL is how long a notice stays on screen before the expiry
// command clears it.
const noticeTTL = 3 * time.Second

// tickCmd arms the refresh timer for one period. The period is read at
// arm time, so an interval change takes effect on the next tick.
func tickCmd(seconds int) tea.Cmd {
	if seconds < 1 {
		seconds = 1
	}
	return tea.Tick(time.Duration(seconds)*time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// fetchCmd samples the provider off the event loop and delivers the
// result as a single MetricsMsg.
func fetchCmd(s sysmetrics.Sampler) tea.Cmd {
	return func() tea.Msg {
		snap, err := s.Sample(context.Background())
		return MetricsMsg{Snapshot: snap, Err: err}
	}
}

// exportCmd writes rows to the exporter's fixed path off the event loop
// and delivers exactly one ExportDoneMsg. rows must be a snapshot taken
// at issue time; the command never re-queries.
func exportCmd(e Exporter, rows []sysmetrics.Process) tea.Cmd {
	return func() tea.Msg {
		return ExportDoneMsg{Path: e.Path(), Err: e.Write(rows)}
	}
}

// expireNoticeCmd clears the notice after noticeTTL.
func expireNoticeCmd() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{}
	})
}

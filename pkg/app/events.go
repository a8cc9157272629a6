// Package app contains the dashboard's state machine: the single
// mutable model, the typed messages that mutate it, and the async
// commands those mutations may schedule.
//
// Every state change flows through Model.Update, one message at a time.
// User keystrokes are translated into the same typed messages that
// tests use, so the whole transition table can be exercised without a
// terminal. Async work (the metric sample, the export write, the notice
// expiry delay) runs off the loop as bubbletea commands, each of which
// re-enters the loop as exactly one completion message.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

// Screen identifies the active view.
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenProcesses
	ScreenSettings
)

// String returns the tab label for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenProcesses:
		return "Processes"
	case ScreenSettings:
		return "Settings"
	default:
		return "Overview"
	}
}

// SortOrder selects the process table ordering. It is purely a display
// instruction; the cached snapshot itself is never reordered.
type SortOrder int

const (
	SortByCPU SortOrder = iota
	SortByMemory
)

// Severity classifies a transient notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Notice is a transient user-visible message.
type Notice struct {
	Text     string
	Severity Severity
}

// --- user-action messages ---

// NavigateMsg switches the active screen.
type NavigateMsg struct {
	Screen Screen
}

// ToggleThemeMsg flips the dark-mode preference and persists it.
type ToggleThemeMsg struct{}

// SetSortMsg changes the process table ordering.
type SetSortMsg struct {
	Order SortOrder
}

// FilterChangedMsg replaces the process filter text.
type FilterChangedMsg struct {
	Text string
}

// SelectProcessMsg selects a process row by PID. The selection is a
// weak reference: the process may be gone by the next snapshot.
type SelectProcessMsg struct {
	PID int32
}

// ClearNoticeMsg dismisses the current notice.
type ClearNoticeMsg struct{}

// IntervalInputMsg carries the raw settings text for the refresh
// interval. The text is stored verbatim; the numeric interval changes
// only when the text parses.
type IntervalInputMsg struct {
	Text string
}

// RequestExportMsg asks for a CSV export of the current process cache.
// A no-op while an export is already in flight.
type RequestExportMsg struct{}

// --- async lifecycle messages ---

// TickMsg is emitted by the refresh timer.
type TickMsg struct {
	Time time.Time
}

// MetricsMsg delivers the result of one sample. Err may be set alongside
// a partially populated snapshot.
type MetricsMsg struct {
	Snapshot sysmetrics.Snapshot
	Err      error
}

// ExportDoneMsg delivers the outcome of one export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// NoticeExpiredMsg clears the notice from the timer path.
type NoticeExpiredMsg struct{}

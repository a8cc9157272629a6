package app

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

// Update applies one message to the model. Messages are processed
// strictly in arrival order; no handler blocks, and each returns at
// most the async follow-up work the message calls for.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case NavigateMsg:
		return m.navigate(msg.Screen), nil

	case ToggleThemeMsg:
		m.darkMode = !m.darkMode
		// The toggle stands even when persistence fails; in-memory and
		// on-disk state are allowed to diverge on I/O errors.
		if err := m.store.Save(m.prefs()); err != nil {
			m.logger.Error("save preferences", "error", err)
			m.notice = &Notice{
				Text:     fmt.Sprintf("Could not save settings: %v", err),
				Severity: SeverityError,
			}
		}
		return m, nil

	case SetSortMsg:
		m.sortOrder = msg.Order
		return m, nil

	case FilterChangedMsg:
		m.filterInput.SetValue(msg.Text)
		return m, nil

	case SelectProcessMsg:
		m.selectedPID = msg.PID
		return m, nil

	case ClearNoticeMsg:
		m.notice = nil
		return m, nil

	case IntervalInputMsg:
		return m.applyIntervalInput(msg.Text), nil

	case TickMsg:
		// Rearm with the current period, then sample off the loop. The
		// handler itself never touches metrics.
		return m, tea.Batch(tickCmd(m.interval), fetchCmd(m.sampler))

	case MetricsMsg:
		return m.applyMetrics(msg), nil

	case RequestExportMsg:
		if m.exporting {
			// An export is already in flight and cannot be cancelled;
			// never issue a second one against the same path.
			return m, nil
		}
		m.exporting = true
		rows := append([]sysmetrics.Process(nil), m.procCache...)
		return m, exportCmd(m.exporter, rows)

	case ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.logger.Error("export", "path", msg.Path, "error", msg.Err)
			m.notice = &Notice{
				Text:     fmt.Sprintf("Export failed: %v", msg.Err),
				Severity: SeverityError,
			}
		} else {
			m.notice = &Notice{
				Text:     fmt.Sprintf("Processes exported to %s", msg.Path),
				Severity: SeverityInfo,
			}
		}
		return m, expireNoticeCmd()

	case NoticeExpiredMsg:
		m.notice = nil
		return m, nil
	}

	return m, nil
}

// navigate switches the active screen, refreshing the process cache
// synchronously when the process view becomes active and moving input
// focus to the screen's text field.
func (m Model) navigate(s Screen) Model {
	m.screen = s

	m.filterInput.Blur()
	m.intervalInput.Blur()

	if s == ScreenProcesses {
		m.refreshProcessCache()
	}
	return m
}

// refreshProcessCache re-reads the process list from the provider. This
// is the cheap on-demand path used when the process view opens; the
// periodic async sample handles everything else.
func (m *Model) refreshProcessCache() {
	snap, err := m.sampler.Sample(context.Background())
	if err != nil {
		m.logger.Warn("process refresh", "error", err)
	}
	if !snap.Timestamp.IsZero() {
		m.procCache = snap.Processes
	}
}

// applyMetrics lands a sample result. Results are latest-wins: a result
// arriving after the user moved on is still applied, there is no
// cancellation of in-flight samples.
func (m Model) applyMetrics(msg MetricsMsg) Model {
	if msg.Err != nil {
		m.logger.Warn("metrics sample", "error", msg.Err)
	}
	if msg.Snapshot.Timestamp.IsZero() {
		// Nothing usable was gathered; keep the last good sample.
		return m
	}

	m.metrics = msg.Snapshot
	if m.screen == ScreenProcesses {
		m.procCache = msg.Snapshot.Processes
	}
	m.logger.Debug("sample applied",
		"cpu", msg.Snapshot.CPUPercent,
		"processes", len(msg.Snapshot.Processes),
	)
	return m
}

// applyIntervalInput stores the raw settings text and, only when it
// parses as a non-negative integer, updates the interval (clamped to a
// minimum of 1 second) and persists the preference pair. Non-parsing
// input changes nothing but the text buffer.
func (m Model) applyIntervalInput(text string) Model {
	m.intervalInput.SetValue(text)

	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return m
	}

	iv := int(n)
	if iv < 1 {
		iv = 1
	}
	m.interval = iv

	if err := m.store.Save(m.prefs()); err != nil {
		m.logger.Error("save preferences", "error", err)
		m.notice = &Notice{
			Text:     fmt.Sprintf("Could not save settings: %v", err),
			Severity: SeverityError,
		}
	}
	return m
}

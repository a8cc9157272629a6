package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey translates keystrokes into the typed messages the rest of
// the dispatcher understands. While a text field is focused it swallows
// everything except escape/enter and quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterInput.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}

	if m.intervalInput.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.intervalInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.intervalInput, cmd = m.intervalInput.Update(msg)
			// Reparse on every edit so a valid value applies and
			// persists immediately, original-typing or backspacing.
			return m.applyIntervalInput(m.intervalInput.Value()), cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "o":
		return m.Update(NavigateMsg{Screen: ScreenOverview})
	case "2", "p":
		return m.Update(NavigateMsg{Screen: ScreenProcesses})
	case "3", "g":
		return m.Update(NavigateMsg{Screen: ScreenSettings})
	case "tab":
		return m.Update(NavigateMsg{Screen: m.cycleScreen(1)})
	case "shift+tab":
		return m.Update(NavigateMsg{Screen: m.cycleScreen(-1)})

	case "t":
		return m.Update(ToggleThemeMsg{})

	case "c":
		if m.screen == ScreenProcesses {
			return m.Update(SetSortMsg{Order: SortByCPU})
		}
	case "m":
		if m.screen == ScreenProcesses {
			return m.Update(SetSortMsg{Order: SortByMemory})
		}

	case "/":
		if m.screen == ScreenProcesses {
			m.filterInput.Focus()
			return m, textinput.Blink
		}
	case "i":
		if m.screen == ScreenSettings {
			m.intervalInput.Focus()
			return m, textinput.Blink
		}

	case "e":
		if m.screen == ScreenProcesses {
			return m.Update(RequestExportMsg{})
		}

	case "down", "j":
		if m.screen == ScreenProcesses {
			return m.moveSelection(1), nil
		}
	case "up", "k":
		if m.screen == ScreenProcesses {
			return m.moveSelection(-1), nil
		}

	case "esc":
		if m.notice != nil {
			return m.Update(ClearNoticeMsg{})
		}
		m.selectedPID = 0
		return m, nil
	}

	return m, nil
}

// cycleScreen returns the screen delta steps away in tab order.
func (m Model) cycleScreen(delta int) Screen {
	const n = 3
	return Screen((int(m.screen) + delta + n) % n)
}

// moveSelection moves the selection within the currently visible rows,
// clamping at both ends. With no prior selection, any movement selects
// the first row.
func (m Model) moveSelection(delta int) Model {
	rows := m.Visible()
	if len(rows) == 0 {
		return m
	}

	idx := -1
	for i, p := range rows {
		if p.PID == m.selectedPID {
			idx = i
			break
		}
	}

	if idx == -1 {
		idx = 0
	} else {
		idx += delta
		if idx < 0 {
			idx = 0
		}
		if idx >= len(rows) {
			idx = len(rows) - 1
		}
	}

	m.selectedPID = rows[idx].PID
	return m
}

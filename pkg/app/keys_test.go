package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	panic("unknown key " + s)
}

func TestNumberKeysNavigate(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, key("3"))
	if m.Screen() != ScreenSettings {
		t.Errorf("'3' -> %v, want ScreenSettings", m.Screen())
	}
	m, _ = update(m, key("1"))
	if m.Screen() != ScreenOverview {
		t.Errorf("'1' -> %v, want ScreenOverview", m.Screen())
	}
}

func TestTabCyclesScreens(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, key("tab"))
	if m.Screen() != ScreenProcesses {
		t.Fatalf("tab -> %v, want ScreenProcesses", m.Screen())
	}
	m, _ = update(m, key("tab"))
	m, _ = update(m, key("tab"))
	if m.Screen() != ScreenOverview {
		t.Errorf("three tabs must wrap back to Overview, got %v", m.Screen())
	}
	m, _ = update(m, key("shift+tab"))
	if m.Screen() != ScreenSettings {
		t.Errorf("shift+tab from Overview -> %v, want ScreenSettings", m.Screen())
	}
}

func TestSortKeysOnlyOnProcessesScreen(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, key("m"))
	if m.Sort() != SortByCPU {
		t.Error("'m' changed the sort outside the Processes screen")
	}

	m, _ = update(m, key("2"))
	m, _ = update(m, key("m"))
	if m.Sort() != SortByMemory {
		t.Errorf("Sort() = %v, want SortByMemory", m.Sort())
	}
	m, _ = update(m, key("c"))
	if m.Sort() != SortByCPU {
		t.Errorf("Sort() = %v, want SortByCPU", m.Sort())
	}
}

func TestFilterFocusSwallowsGlobalKeys(t *testing.T) {
	m, f := newTestModel()
	f.sampler.snap = testSnapshot(sysmetrics.Process{PID: 1, Name: "init"})
	m, _ = update(m, key("2"))

	m, cmd := update(m, key("/"))
	if cmd == nil {
		t.Fatal("focusing the filter should start the cursor blink")
	}

	// "q" is quit when unfocused; focused it is text.
	m, cmd = update(m, key("q"))
	if cmd != nil {
		t.Error("'q' while filtering must not quit")
	}
	if m.FilterText() != "q" {
		t.Errorf("FilterText() = %q, want %q", m.FilterText(), "q")
	}

	m, _ = update(m, key("esc"))
	m, _ = update(m, key("t"))
	if !m.DarkMode() {
		t.Error("'t' after blur should reach the global handler again")
	}
}

func TestSelectionMovementClamps(t *testing.T) {
	m, f := newTestModel()
	f.sampler.snap = testSnapshot(
		sysmetrics.Process{PID: 1, Name: "a", CPU: 3},
		sysmetrics.Process{PID: 2, Name: "b", CPU: 2},
		sysmetrics.Process{PID: 3, Name: "c", CPU: 1},
	)
	m, _ = update(m, key("2"))

	// First movement selects the first visible row.
	m, _ = update(m, key("down"))
	if m.SelectedPID() != 1 {
		t.Fatalf("SelectedPID = %d, want 1", m.SelectedPID())
	}

	m, _ = update(m, key("down"))
	m, _ = update(m, key("down"))
	m, _ = update(m, key("down"))
	if m.SelectedPID() != 3 {
		t.Errorf("SelectedPID = %d, want clamped at 3", m.SelectedPID())
	}

	m, _ = update(m, key("up"))
	m, _ = update(m, key("up"))
	m, _ = update(m, key("up"))
	if m.SelectedPID() != 1 {
		t.Errorf("SelectedPID = %d, want clamped at 1", m.SelectedPID())
	}
}

func TestEscClearsNoticeBeforeSelection(t *testing.T) {
	m, f := newTestModel()
	f.sampler.snap = testSnapshot(sysmetrics.Process{PID: 1, Name: "a"})
	m, _ = update(m, key("2"))
	m, _ = update(m, key("down"))
	m, _ = update(m, ExportDoneMsg{Path: "processes.csv"})

	m, _ = update(m, key("esc"))
	if m.Notice() != nil {
		t.Fatal("first esc must clear the notice")
	}
	if m.SelectedPID() == 0 {
		t.Error("first esc must leave the selection alone")
	}

	m, _ = update(m, key("esc"))
	if m.SelectedPID() != 0 {
		t.Error("second esc must clear the selection")
	}
}

func TestExportKeyOnlyOnProcessesScreen(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, key("e"))
	if m.Exporting() {
		t.Error("'e' started an export outside the Processes screen")
	}

	m, _ = update(m, key("2"))
	m, cmd := update(m, key("e"))
	if !m.Exporting() || cmd == nil {
		t.Error("'e' on the Processes screen must start an export")
	}
}

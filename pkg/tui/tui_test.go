package tui

import (
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/hostpulse/pkg/components"
	"gitlab.com/tinyland/lab/hostpulse/pkg/theme"
)

var testTheme = theme.Dark()

func TestOverviewWaitingState(t *testing.T) {
	out := Overview(sysmetrics.Snapshot{}, testTheme, 80)
	if !strings.Contains(out, "Waiting for first sample") {
		t.Errorf("empty snapshot rendered %q", out)
	}
}

func TestOverviewGaugesAndTotals(t *testing.T) {
	snap := sysmetrics.Snapshot{
		CPUPercent:  42.0,
		MemoryUsed:  8 << 30,
		MemoryTotal: 16 << 30,
		DiskUsed:    250 << 30,
		DiskTotal:   500 << 30,
		Timestamp:   time.Now(),
	}
	out := Overview(snap, testTheme, 80)

	for _, want := range []string{"CPU", "Mem", "Disk", "42.0%", "50.0%", "8.0 GiB", "16 GiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("overview missing %q:\n%s", want, out)
		}
	}
}

func TestProcessesRendersRowsAndSelection(t *testing.T) {
	v := ProcessView{
		Rows: []sysmetrics.Process{
			{PID: 1, Name: "init", CPU: 0.5, Memory: 1 << 20},
			{PID: 42, Name: "hostpulse", CPU: 3.2, Memory: 10 << 20},
		},
		SelectedPID: 42,
		FilterView:  "/",
		SortLabel:   "cpu",
	}
	out := Processes(v, testTheme, 80)

	for _, want := range []string{"init", "hostpulse", "PID", "sort:cpu", "e export"} {
		if !strings.Contains(out, want) {
			t.Errorf("process screen missing %q:\n%s", want, out)
		}
	}
}

func TestProcessesExportingLabel(t *testing.T) {
	out := Processes(ProcessView{SortLabel: "cpu", Exporting: true}, testTheme, 80)
	if !strings.Contains(out, "exporting...") {
		t.Errorf("in-flight export not surfaced:\n%s", out)
	}
	if strings.Contains(out, "e export") {
		t.Errorf("export hint shown while in flight:\n%s", out)
	}
}

func TestProcessesEmptyFilterResult(t *testing.T) {
	out := Processes(ProcessView{SortLabel: "memory"}, testTheme, 80)
	if !strings.Contains(out, "No matching processes") {
		t.Errorf("empty table placeholder missing:\n%s", out)
	}
}

func TestProcessesDetailPanel(t *testing.T) {
	p := sysmetrics.Process{PID: 7, Name: "sshd", CPU: 1.5, Memory: 4 << 20, Status: "sleeping", User: "root"}
	v := ProcessView{
		Rows:        []sysmetrics.Process{p},
		SelectedPID: 7,
		Detail:      &p,
		SortLabel:   "cpu",
	}
	out := Processes(v, testTheme, 80)

	for _, want := range []string{"pid 7", "status: sleeping", "user: root"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail panel missing %q:\n%s", want, out)
		}
	}
}

func TestSettingsScreen(t *testing.T) {
	out := Settings("5", 5, true, testTheme, 80)

	for _, want := range []string{"Refresh interval", "applied: every 5s", "light", "dark", "[t toggle]"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings screen missing %q:\n%s", want, out)
		}
	}
}

func TestTabsMarksActive(t *testing.T) {
	out := Tabs([]string{"Overview", "Processes", "Settings"}, 1, testTheme, 80)
	if !strings.Contains(out, "[Processes]") {
		t.Errorf("active tab not bracketed:\n%s", out)
	}
	if strings.Contains(out, "[Overview]") {
		t.Errorf("inactive tab bracketed:\n%s", out)
	}
}

func TestStatusBarShowsNoticeOverHints(t *testing.T) {
	out := StatusBar("Processes exported to processes.csv", false, testTheme, 80)
	if !strings.Contains(out, "exported to processes.csv") {
		t.Errorf("notice missing:\n%s", out)
	}
	if strings.Contains(out, "q:quit") {
		t.Errorf("hints shown alongside a notice:\n%s", out)
	}
}

func TestStatusBarHintsWidth(t *testing.T) {
	out := StatusBar("", false, testTheme, 80)
	if !strings.Contains(out, "q:quit") {
		t.Errorf("hints missing:\n%s", out)
	}
	if got := components.VisibleLen(out); got != 80 {
		t.Errorf("visible width = %d, want 80", got)
	}
}

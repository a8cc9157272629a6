package app

import (
	"fmt"
	"testing"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

func procs(n int) []sysmetrics.Process {
	out := make([]sysmetrics.Process, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sysmetrics.Process{
			PID:    int32(i + 1),
			Name:   fmt.Sprintf("proc-%d", i+1),
			CPU:    float64(i),
			Memory: uint64(i) * 1024,
		})
	}
	return out
}

func TestVisibleProcessesSortByCPUDescending(t *testing.T) {
	rows := VisibleProcesses(procs(5), SortByCPU, "")
	for i := 1; i < len(rows); i++ {
		if rows[i].CPU > rows[i-1].CPU {
			t.Fatalf("rows not non-increasing by CPU at %d: %v > %v", i, rows[i].CPU, rows[i-1].CPU)
		}
	}
}

func TestVisibleProcessesSortByMemoryDescending(t *testing.T) {
	rows := VisibleProcesses(procs(5), SortByMemory, "")
	for i := 1; i < len(rows); i++ {
		if rows[i].Memory > rows[i-1].Memory {
			t.Fatalf("rows not non-increasing by memory at %d", i)
		}
	}
}

func TestVisibleProcessesSortIsStable(t *testing.T) {
	input := []sysmetrics.Process{
		{PID: 10, Name: "a", CPU: 5},
		{PID: 20, Name: "b", CPU: 5},
		{PID: 30, Name: "c", CPU: 5},
	}
	rows := VisibleProcesses(input, SortByCPU, "")
	for i, want := range []int32{10, 20, 30} {
		if rows[i].PID != want {
			t.Fatalf("equal-key rows reordered: got PID %d at %d, want %d", rows[i].PID, i, want)
		}
	}
}

func TestVisibleProcessesFilterMatchesNameCaseInsensitive(t *testing.T) {
	input := []sysmetrics.Process{
		{PID: 1, Name: "Firefox"},
		{PID: 2, Name: "sshd"},
	}
	rows := VisibleProcesses(input, SortByCPU, "FIRE")
	if len(rows) != 1 || rows[0].Name != "Firefox" {
		t.Fatalf("filter %q matched %v", "FIRE", rows)
	}
}

func TestVisibleProcessesFilterMatchesPID(t *testing.T) {
	input := []sysmetrics.Process{
		{PID: 1234, Name: "a"},
		{PID: 5678, Name: "b"},
	}
	rows := VisibleProcesses(input, SortByCPU, "23")
	if len(rows) != 1 || rows[0].PID != 1234 {
		t.Fatalf("filter %q matched %v", "23", rows)
	}
}

func TestVisibleProcessesFilterPrecedesTruncation(t *testing.T) {
	// 30 processes, only one matches; it must survive even though it
	// would fall outside the first displayLimit rows unfiltered.
	input := procs(30)
	input[0].Name = "needle"
	input[0].CPU = 0 // sorts last

	rows := VisibleProcesses(input, SortByCPU, "needle")
	if len(rows) != 1 || rows[0].Name != "needle" {
		t.Fatalf("filtered rows = %v, want the single match", rows)
	}
}

func TestVisibleProcessesLimit(t *testing.T) {
	rows := VisibleProcesses(procs(40), SortByCPU, "")
	if len(rows) != displayLimit {
		t.Fatalf("len(rows) = %d, want %d", len(rows), displayLimit)
	}
}

func TestVisibleProcessesDoesNotMutateInput(t *testing.T) {
	input := procs(5)
	firstPID := input[0].PID
	VisibleProcesses(input, SortByCPU, "")
	if input[0].PID != firstPID {
		t.Error("projection reordered the caller's slice")
	}
}

func TestSelectedProcess(t *testing.T) {
	input := procs(3)
	if p, ok := SelectedProcess(input, 2); !ok || p.PID != 2 {
		t.Errorf("SelectedProcess(2) = %v, %v", p, ok)
	}
	if _, ok := SelectedProcess(input, 99); ok {
		t.Error("SelectedProcess(99) found a process that does not exist")
	}
}

package app

import (
	"sort"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

// displayLimit caps the process table at the top rows after filtering
// and sorting. Filtering happens first so a matching row can never be
// pushed out by a non-matching one that merely sorts higher.
const displayLimit = 12

// VisibleProcesses produces the ordered rows for display: filter by the
// case-insensitive query against the process name or the textual PID,
// sort descending by the given order, then truncate to displayLimit.
// The input slice is never modified.
func VisibleProcesses(procs []sysmetrics.Process, order SortOrder, filter string) []sysmetrics.Process {
	q := strings.ToLower(filter)

	out := make([]sysmetrics.Process, 0, len(procs))
	for _, p := range procs {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strconv.Itoa(int(p.PID)), q) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortByMemory {
			return out[i].Memory > out[j].Memory
		}
		return out[i].CPU > out[j].CPU
	})

	if len(out) > displayLimit {
		out = out[:displayLimit]
	}
	return out
}

// SelectedProcess resolves a selection PID against the latest cache.
// ok is false when the process is no longer present; the caller treats
// that as "nothing to show", not an error.
func SelectedProcess(procs []sysmetrics.Process, pid int32) (sysmetrics.Process, bool) {
	for _, p := range procs {
		if p.PID == pid {
			return p, true
		}
	}
	return sysmetrics.Process{}, false
}

// Package tui renders the model into terminal screens. Everything here
// is a pure projection: the renderers take plain data and a palette and
// return strings, holding no state of their own.
package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/hostpulse/pkg/components"
	"gitlab.com/tinyland/lab/hostpulse/pkg/theme"
)

// Gauge color thresholds (ratio 0-1).
const (
	warnAt = 0.5
	critAt = 0.8

	diskWarnAt = 0.7
	diskCritAt = 0.85
)

// Overview renders the CPU, memory, and disk gauges with humanized
// totals underneath.
func Overview(snap sysmetrics.Snapshot, th theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}
	if snap.Timestamp.IsZero() {
		return dimText("Waiting for first sample...", th)
	}

	gaugeW := width - 2
	if gaugeW > 60 {
		gaugeW = 60
	}

	var b strings.Builder

	b.WriteString(ovGauge("CPU", snap.CPUPercent, 100, gaugeW, th, warnAt, critAt))
	b.WriteString("\n")

	memPct := ratioPercent(snap.MemoryUsed, snap.MemoryTotal)
	b.WriteString(ovGauge("Mem", memPct, 100, gaugeW, th, warnAt, critAt))
	b.WriteString("\n")

	diskPct := ratioPercent(snap.DiskUsed, snap.DiskTotal)
	b.WriteString(ovGauge("Disk", diskPct, 100, gaugeW, th, diskWarnAt, diskCritAt))
	b.WriteString("\n\n")

	b.WriteString(dimText(fmt.Sprintf("Memory  %s / %s",
		humanize.IBytes(snap.MemoryUsed), humanize.IBytes(snap.MemoryTotal)), th))
	b.WriteString("\n")
	b.WriteString(dimText(fmt.Sprintf("Disk    %s / %s",
		humanize.IBytes(snap.DiskUsed), humanize.IBytes(snap.DiskTotal)), th))

	return b.String()
}

func ovGauge(label string, value, max float64, width int, th theme.Theme, warn, crit float64) string {
	return components.Gauge(value, max, width, components.GaugeStyle{
		Label:       label,
		LabelWidth:  5,
		FilledColor: th.GaugeFilled,
		EmptyColor:  th.GaugeEmpty,
		WarnAt:      warn,
		CritAt:      crit,
		WarnColor:   th.StatusWarn,
		CritColor:   th.StatusError,
	})
}

// ratioPercent returns used/total as a percentage, 0 when total is 0.
func ratioPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

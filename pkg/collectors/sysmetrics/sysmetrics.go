// Package sysmetrics provides the host metrics provider for hostpulse.
// It uses gopsutil to gather CPU, memory, disk, and per-process data on
// both Darwin and Linux without /proc dependencies.
package sysmetrics

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Process describes one running process at sample time.
type Process struct {
	PID    int32
	Name   string
	CPU    float64 // percent (0-100, may exceed 100 on multi-core)
	Memory uint64  // resident set size in bytes
	Status string
	User   string
}

// Snapshot is one point-in-time read of system and process state.
type Snapshot struct {
	CPUPercent  float64
	MemoryUsed  uint64
	MemoryTotal uint64
	DiskUsed    uint64
	DiskTotal   uint64
	Processes   []Process
	Timestamp   time.Time
}

// Sampler is the provider contract consumed by the application. A zero
// Timestamp in the returned Snapshot means no usable data was gathered.
type Sampler interface {
	Sample(ctx context.Context) (Snapshot, error)
}

// Config controls the Collector behaviour.
type Config struct {
	// RootMount is the mount point reported as "disk" (default "/").
	RootMount string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{RootMount: "/"}
}

// Collector gathers host metrics via gopsutil.
type Collector struct {
	cfg     Config
	mu      sync.Mutex
	healthy bool
}

// New creates a Collector. Zero-value fields in cfg are replaced with
// defaults.
func New(cfg Config) *Collector {
	if cfg.RootMount == "" {
		cfg.RootMount = DefaultConfig().RootMount
	}
	return &Collector{
		cfg:     cfg,
		healthy: true, // healthy until proven otherwise
	}
}

// Name returns the collector's unique identifier.
func (c *Collector) Name() string {
	return "sysmetrics"
}

// Healthy reports whether the last sample produced any data.
func (c *Collector) Healthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}

func (c *Collector) setHealthy(h bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = h
}

// Sample gathers a full host snapshot. Individual sub-collectors that
// fail are skipped so the caller gets as much data as possible; their
// errors are aggregated into the returned error. Only when every
// sub-collector fails is the snapshot unusable (zero Timestamp).
func (c *Collector) Sample(ctx context.Context) (Snapshot, error) {
	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	default:
	}

	snap := Snapshot{Timestamp: time.Now()}

	var errs []string

	if err := c.sampleCPU(ctx, &snap); err != nil {
		errs = append(errs, fmt.Sprintf("cpu: %v", err))
	}
	if err := c.sampleMemory(ctx, &snap); err != nil {
		errs = append(errs, fmt.Sprintf("memory: %v", err))
	}
	if err := c.sampleDisk(ctx, &snap); err != nil {
		errs = append(errs, fmt.Sprintf("disk: %v", err))
	}
	if err := c.sampleProcesses(ctx, &snap); err != nil {
		errs = append(errs, fmt.Sprintf("processes: %v", err))
	}

	if len(errs) == 4 {
		c.setHealthy(false)
		return Snapshot{}, fmt.Errorf("sysmetrics: all sub-collectors failed: %s", strings.Join(errs, "; "))
	}

	c.setHealthy(true)

	if len(errs) > 0 {
		return snap, fmt.Errorf("sysmetrics: partial errors: %s", strings.Join(errs, "; "))
	}
	return snap, nil
}

func (c *Collector) sampleCPU(ctx context.Context, snap *Snapshot) error {
	// interval=0 measures since the previous call, which matches the
	// periodic sampling cadence.
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return err
	}
	if len(total) > 0 {
		snap.CPUPercent = total[0]
	}
	return nil
}

func (c *Collector) sampleMemory(ctx context.Context, snap *Snapshot) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	snap.MemoryUsed = vm.Used
	snap.MemoryTotal = vm.Total
	return nil
}

func (c *Collector) sampleDisk(ctx context.Context, snap *Snapshot) error {
	usage, err := disk.UsageWithContext(ctx, c.cfg.RootMount)
	if err != nil {
		return err
	}
	snap.DiskUsed = usage.Used
	snap.DiskTotal = usage.Total
	return nil
}

func (c *Collector) sampleProcesses(ctx context.Context, snap *Snapshot) error {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return err
	}

	rows := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			// Kernel threads and processes that exited mid-enumeration.
			continue
		}

		row := Process{PID: p.Pid, Name: name}

		if pct, err := p.CPUPercentWithContext(ctx); err == nil {
			row.CPU = pct
		}
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			row.Memory = mi.RSS
		}
		if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
			row.Status = strings.Join(st, "+")
		}
		if user, err := p.UsernameWithContext(ctx); err == nil {
			row.User = user
		}

		rows = append(rows, row)
	}

	snap.Processes = rows
	return nil
}

// compile-time check that Collector implements Sampler.
var _ Sampler = (*Collector)(nil)

// Package export serializes a process snapshot to a comma-delimited
// file. The output path is overwritten on each export; a failure at any
// stage (create, row write, flush) reports a descriptive error and the
// caller must treat the file as absent.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
)

// DefaultPath is the fixed relative path of the export file.
const DefaultPath = "processes.csv"

// header is the first row of every export.
var header = []string{"id", "name", "cpu_percent", "memory", "status"}

// Writer writes process snapshots to a fixed output path.
type Writer struct {
	path string
}

// NewWriter creates a Writer. An empty path selects DefaultPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Write serializes rows to the output file: one header row, then one
// row per process with the CPU percentage formatted to one decimal
// place and memory as the raw byte count captured at sample time.
func (w *Writer) Write(rows []sysmetrics.Process) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range rows {
		rec := []string{
			strconv.Itoa(int(p.PID)),
			p.Name,
			strconv.FormatFloat(p.CPU, 'f', 1, 64),
			strconv.FormatUint(p.Memory, 10),
			p.Status,
		}
		if err := cw.Write(rec); err != nil {
			_ = f.Close()
			return fmt.Errorf("write process %d: %w", p.PID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.path, err)
	}
	return nil
}

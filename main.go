// hostpulse is a live host-metrics dashboard for the terminal.
//
// It samples CPU, memory, disk, and per-process data on a timer,
// renders the result as a Bubbletea TUI with a browsable process table,
// persists the refresh interval and theme choice between runs, and can
// export the current process snapshot to a CSV file.
//
// Usage:
//
//	hostpulse [flags]
//
// Flags:
//
//	-config string  Path to the preference file (default: hostpulse.toml)
//	-export string  Path of the CSV export file (default: processes.csv)
//	-log string     Path of the log file (default: hostpulse.log)
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/hostpulse/pkg/app"
	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/hostpulse/pkg/config"
	"gitlab.com/tinyland/lab/hostpulse/pkg/export"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

const defaultLogFile = "hostpulse.log"

func main() {
	var (
		configPath  = flag.String("config", "", "Path to the preference file")
		exportPath  = flag.String("export", "", "Path of the CSV export file")
		logPath     = flag.String("log", defaultLogFile, "Path of the log file")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("hostpulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "hostpulse requires an interactive terminal")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file only.
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// A missing or corrupt preference file silently yields defaults. On
	// the very first run the terminal background picks the palette.
	store := config.NewStore(*configPath)
	cfg := store.Load()
	if !store.Exists() {
		cfg.DarkMode = termenv.HasDarkBackground()
	}

	collector := sysmetrics.New(sysmetrics.DefaultConfig())
	exporter := export.NewWriter(*exportPath)

	model := app.New(cfg, collector, store, exporter, logger)

	logger.Info("starting hostpulse",
		"refresh_interval", cfg.RefreshInterval,
		"dark_mode", cfg.DarkMode,
		"config", store.Path(),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "hostpulse: %v\n", err)
		os.Exit(1)
	}
}

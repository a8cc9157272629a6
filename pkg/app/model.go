package app

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/hostpulse/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/hostpulse/pkg/config"
)

// ConfigStore persists the preference record.
type ConfigStore interface {
	Save(config.Config) error
}

// Exporter writes a process snapshot to its fixed output path.
type Exporter interface {
	Write([]sysmetrics.Process) error
	Path() string
}

// Model is the single source of truth for the dashboard. It is mutated
// exclusively inside Update; async work only ever re-enters through
// typed messages.
type Model struct {
	screen      Screen
	metrics     sysmetrics.Snapshot
	procCache   []sysmetrics.Process
	sortOrder   SortOrder
	selectedPID int32 // 0 = no selection
	darkMode    bool
	interval    int // seconds, >= 1
	notice      *Notice
	exporting   bool

	// filterInput holds the process filter text; intervalInput holds the
	// raw settings buffer, decoupled from the parsed interval so invalid
	// intermediate input never corrupts the numeric value.
	filterInput   textinput.Model
	intervalInput textinput.Model

	sampler  sysmetrics.Sampler
	store    ConfigStore
	exporter Exporter
	logger   *slog.Logger

	width  int
	height int
}

// New creates the model from the loaded preferences and its external
// collaborators.
func New(cfg config.Config, sampler sysmetrics.Sampler, store ConfigStore, exporter Exporter, logger *slog.Logger) Model {
	if cfg.RefreshInterval < 1 {
		cfg.RefreshInterval = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	filter := textinput.New()
	filter.Placeholder = "name or pid"
	filter.Prompt = "/"
	filter.CharLimit = 64

	interval := textinput.New()
	interval.Placeholder = "seconds"
	interval.Prompt = ""
	interval.CharLimit = 6
	interval.SetValue(strconv.Itoa(cfg.RefreshInterval))

	return Model{
		screen:        ScreenOverview,
		sortOrder:     SortByCPU,
		darkMode:      cfg.DarkMode,
		interval:      cfg.RefreshInterval,
		filterInput:   filter,
		intervalInput: interval,
		sampler:       sampler,
		store:         store,
		exporter:      exporter,
		logger:        logger,
	}
}

// Init arms the refresh timer and issues one immediate sample so the
// overview is populated before the first tick lands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.sampler), tickCmd(m.interval))
}

// prefs assembles the current persisted preference pair.
func (m Model) prefs() config.Config {
	return config.Config{
		RefreshInterval: m.interval,
		DarkMode:        m.darkMode,
	}
}

// --- read accessors used by the views and tests ---

func (m Model) Screen() Screen                  { return m.screen }
func (m Model) Metrics() sysmetrics.Snapshot    { return m.metrics }
func (m Model) Processes() []sysmetrics.Process { return m.procCache }
func (m Model) Sort() SortOrder                 { return m.sortOrder }
func (m Model) FilterText() string              { return m.filterInput.Value() }
func (m Model) SelectedPID() int32              { return m.selectedPID }
func (m Model) DarkMode() bool                  { return m.darkMode }
func (m Model) RefreshInterval() int            { return m.interval }
func (m Model) IntervalText() string            { return m.intervalInput.Value() }
func (m Model) Notice() *Notice                 { return m.notice }
func (m Model) Exporting() bool                 { return m.exporting }

// Visible returns the process rows the table should display.
func (m Model) Visible() []sysmetrics.Process {
	return VisibleProcesses(m.procCache, m.sortOrder, m.FilterText())
}

// Selected resolves the weak selection against the latest cache.
// ok is false when nothing is selected or the process has exited.
func (m Model) Selected() (sysmetrics.Process, bool) {
	if m.selectedPID == 0 {
		return sysmetrics.Process{}, false
	}
	return SelectedProcess(m.procCache, m.selectedPID)
}

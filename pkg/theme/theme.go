// Package theme defines the two color palettes the dashboard can run
// in. The active palette is a pure function of the persisted dark-mode
// preference; nothing in here holds state.
package theme

// Theme defines the color palette for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Foreground string // hex color e.g. "#1a1b26"
	Dim        string // dimmed text
	Accent     string // active tab, focused input, selection

	// Panel colors
	Border string

	// Status colors
	StatusOK    string // green - success notices
	StatusWarn  string // yellow - gauge warning range
	StatusError string // red - error notices, gauge critical range

	// Gauge colors
	GaugeFilled string
	GaugeEmpty  string
}

// Dark returns the dark palette.
func Dark() Theme {
	return Theme{
		Name:        "dark",
		Foreground:  "#E5E7EB",
		Dim:         "#6B7280",
		Accent:      "#7C3AED",
		Border:      "#4B5563",
		StatusOK:    "#4CAF50",
		StatusWarn:  "#FF9800",
		StatusError: "#F47067",
		GaugeFilled: "#4CAF50",
		GaugeEmpty:  "#333333",
	}
}

// Light returns the light palette.
func Light() Theme {
	return Theme{
		Name:        "light",
		Foreground:  "#111827",
		Dim:         "#9CA3AF",
		Accent:      "#6D28D9",
		Border:      "#374151",
		StatusOK:    "#15803D",
		StatusWarn:  "#B45309",
		StatusError: "#B91C1C",
		GaugeFilled: "#15803D",
		GaugeEmpty:  "#D1D5DB",
	}
}

// ForMode returns the palette for the given dark-mode preference.
func ForMode(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// Package config handles the persisted hostpulse preferences: the
// refresh interval and the theme choice. The file is deliberately tiny
// and treated as disposable; a missing or corrupt file always yields
// defaults rather than an error.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the fixed relative path of the preference file.
const DefaultPath = "hostpulse.toml"

// Config is the persisted preference record.
type Config struct {
	// RefreshInterval is the sampling period in seconds (minimum 1).
	RefreshInterval int `toml:"refresh_interval"`

	// DarkMode selects the dark color palette.
	DarkMode bool `toml:"dark_mode"`
}

// Default returns the configuration used when no preference file exists.
func Default() Config {
	return Config{
		RefreshInterval: 1,
		DarkMode:        false,
	}
}

// Store reads and writes the preference file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store. An empty path selects DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the preference file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a preference file is present on disk. It does
// not validate the contents.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the preference file. Any read or parse failure silently
// falls back to defaults; startup must never fail because of a corrupt
// preference file.
func (s *Store) Load() Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default()
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}

	if cfg.RefreshInterval < 1 {
		cfg.RefreshInterval = 1
	}
	return cfg
}

// Package config defines the stretch configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < explicit config file <
// CLI flag overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CodexForgeBR/stretch/internal/storage"
)

// AppName names the per-user config and data directories.
const AppName = "stretch"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [8]string{
	"DATA_DIR",
	"CATALOG_FILE",
	"BREAK_SECONDS",
	"DEFAULT_ITEM_SECONDS",
	"CUE_ENABLED",
	"CUE_COMMAND",
	"TICK_MILLIS",
	"VERBOSE",
}

// Config holds every configuration field for the stretch CLI.
type Config struct {
	// Storage.
	DataDir     string
	CatalogFile string

	// Timer.
	BreakSeconds       int
	DefaultItemSeconds int
	TickMillis         int

	// Audio cues.
	CueEnabled bool
	CueCommand string

	// Runtime flags.
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// Defaults.
const (
	DefaultBreakSeconds  = 5
	DefaultItemSeconds   = 30
	DefaultTickMillis    = 1000
	GlobalConfigFileName = "config"
)

// NewDefaultConfig returns a Config populated with all built-in default values.
// DataDir stays empty and is resolved by ResolveDataDir.
func NewDefaultConfig() *Config {
	return &Config{
		BreakSeconds:       DefaultBreakSeconds,
		DefaultItemSeconds: DefaultItemSeconds,
		TickMillis:         DefaultTickMillis,
		CueEnabled:         true,
	}
}

// Normalize replaces out-of-range timer values with their defaults.
func (c *Config) Normalize() {
	if c.BreakSeconds < 1 {
		c.BreakSeconds = DefaultBreakSeconds
	}
	if c.DefaultItemSeconds < 1 {
		c.DefaultItemSeconds = DefaultItemSeconds
	}
	if c.TickMillis < 1 {
		c.TickMillis = DefaultTickMillis
	}
}

// ResolveDataDir returns DataDir, or <user config dir>/stretch when unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	dir, err := storage.DefaultDir(AppName)
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return dir, nil
}

// GlobalPath returns the per-user config file path, or "" when the user
// config dir cannot be determined.
func GlobalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, GlobalConfigFileName)
}

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// setters apply one whitelisted key. Integer values that fail to parse leave
// the field unchanged.
var setters = map[string]func(cfg *Config, value string){
	"DATA_DIR":             func(c *Config, v string) { c.DataDir = v },
	"CATALOG_FILE":         func(c *Config, v string) { c.CatalogFile = v },
	"BREAK_SECONDS":        intField(func(c *Config) *int { return &c.BreakSeconds }),
	"DEFAULT_ITEM_SECONDS": intField(func(c *Config) *int { return &c.DefaultItemSeconds }),
	"TICK_MILLIS":          intField(func(c *Config) *int { return &c.TickMillis }),
	"CUE_ENABLED":          func(c *Config, v string) { c.CueEnabled = parseBool(v) },
	"CUE_COMMAND":          func(c *Config, v string) { c.CueCommand = v },
	"VERBOSE":              func(c *Config, v string) { c.Verbose = parseBool(v) },
}

func intField(field func(*Config) *int) func(*Config, string) {
	return func(c *Config, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(c) = n
		}
	}
}

// LoadFile reads a KEY=VALUE config file. See Parse for the syntax.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return m, nil
}

// Parse reads KEY=VALUE lines and returns the whitelisted pairs.
//
// Blank lines, # comments, lines without "=" and keys outside WhitelistedVars
// are skipped. An optional "export " prefix and one pair of matching quotes
// around the value are stripped, so the same file can be sourced by a shell.
func Parse(r io.Reader) (map[string]string, error) {
	result := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if ok && slices.Contains(WhitelistedVars[:], key) {
			result[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), unquote(strings.TrimSpace(value)), true
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// LoadWithPrecedence assembles a Config from, in increasing priority:
// built-in defaults, the global file, the explicit file and cliOverrides.
//
// Empty paths are skipped. A missing global file is fine; a missing explicit
// file is an error. The result is normalized.
func LoadWithPrecedence(globalPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if globalPath != "" {
		m, err := LoadFile(globalPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("global config: %w", err)
		default:
			ApplyMapToConfig(cfg, m)
		}
	}

	if explicitPath != "" {
		m, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		ApplyMapToConfig(cfg, m)
		cfg.ConfigFile = explicitPath
	}

	ApplyMapToConfig(cfg, cliOverrides)
	cfg.Normalize()
	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from m, keyed like WhitelistedVars.
// Unknown keys are ignored.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		if set, ok := setters[key]; ok {
			set(cfg, value)
		}
	}
}

// parseBool accepts "true", "1" and "yes" in any case; anything else is false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/stretch/internal/config"
)

func TestNewDefaultConfigValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.DataDir)
	assert.Empty(t, cfg.CatalogFile)
	assert.Equal(t, 5, cfg.BreakSeconds)
	assert.Equal(t, 30, cfg.DefaultItemSeconds)
	assert.Equal(t, 1000, cfg.TickMillis)
	assert.True(t, cfg.CueEnabled)
	assert.Empty(t, cfg.CueCommand)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.ConfigFile)
}

func TestWhitelistedVars(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range config.WhitelistedVars {
		assert.NotEmpty(t, v)
		assert.False(t, seen[v], "duplicate key %s", v)
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}

func TestResolveDataDir(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.DataDir = "/explicit"
	dir, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/explicit", dir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg.DataDir = ""
	dir, err = cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, config.AppName, filepath.Base(dir))
}

func TestGlobalPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path := config.GlobalPath()
	require.NotEmpty(t, path)
	assert.Equal(t, config.GlobalConfigFileName, filepath.Base(path))
	assert.Equal(t, config.AppName, filepath.Base(filepath.Dir(path)))
}

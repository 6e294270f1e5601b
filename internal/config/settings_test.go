package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"seed": 42,
		"fortressHealth": 5,
		"journal": { "enabled": true, "path": "run.db" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 5, s.FortressHealth)
	assert.True(t, s.Journal.Enabled)
	assert.Equal(t, "run.db", s.Journal.Path)
	assert.Equal(t, RegistryCapacity, s.RegistryCapacity)
}

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(`{}`), 0644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "./assets/data", s.ContentDir)
	assert.Equal(t, WaveIntermission, s.Intermission)
	assert.False(t, s.Journal.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverridesNestedKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(`{"journal": {"path": "file.db"}}`), 0644))
	t.Setenv("FORTRESS_JOURNAL_ENABLED", "true")
	t.Setenv("FORTRESS_JOURNAL_PATH", "env.db")
	t.Setenv("FORTRESS_FORTRESSHEALTH", "7")

	s, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, s.Journal.Enabled)
	assert.Equal(t, "env.db", s.Journal.Path)
	assert.Equal(t, 7, s.FortressHealth)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLOCKPANEL_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "top-right", cfg.UI.Corner)
	require.True(t, cfg.UI.ShowOnStart)
	require.Equal(t, "Local", cfg.UI.Timezone)
	require.Equal(t, "info", cfg.Log.Level)
	require.Contains(t, cfg.Log.Path, "clockpanel.log")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[ui]
corner = "bottom-left"
show_on_start = false
timezone = "Asia/Tokyo"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CLOCKPANEL_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "bottom-left", cfg.UI.Corner)
	require.False(t, cfg.UI.ShowOnStart)
	require.Equal(t, "Asia/Tokyo", cfg.UI.Timezone)
	require.Equal(t, "debug", cfg.Log.Level)
	// unset keys keep defaults
	require.Contains(t, cfg.Log.Path, "clockpanel.log")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncorner = \"top-left\"\n"), 0o644))
	t.Setenv("CLOCKPANEL_CONFIG", path)
	t.Setenv("CLOCKPANEL_UI_CORNER", "bottom-right")
	t.Setenv("CLOCKPANEL_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "bottom-right", cfg.UI.Corner)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CLOCKPANEL_CONFIG", path)

	want := Config{
		UI:  UIConfig{Corner: "bottom-left", ShowOnStart: false, Timezone: "Europe/London"},
		Log: LogConfig{Path: "/tmp/clockpanel-test.log", Level: "debug"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveCreatesConfigDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	t.Setenv("CLOCKPANEL_CONFIG", path)

	require.NoError(t, Save(Config{
		UI:  UIConfig{Corner: "top-right", ShowOnStart: true, Timezone: "Local"},
		Log: LogConfig{Path: "/tmp/clockpanel-test.log", Level: "info"},
	}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

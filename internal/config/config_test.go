package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, 30, cfg.TimeoutSeconds)
	require.Equal(t, 2, cfg.Retries)
	require.NotEmpty(t, cfg.APIBase)
	require.False(t, cfg.BrowserFallback)
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	t.Setenv("SGET_CONFIG_DIR", t.TempDir())
	require.False(t, Exists())
	cfg := LoadOrDefault()
	require.Equal(t, Default(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("SGET_CONFIG_DIR", t.TempDir())

	cfg := Default()
	cfg.Listen = ":9000"
	cfg.BrowserFallback = true
	cfg.Twitter.AuthToken = "tok123"
	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SGET_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("listen: \":7070\"\n"), 0o600))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", got.Listen)
	require.Equal(t, 30, got.TimeoutSeconds)
	require.Equal(t, 2, got.Retries)
}

func TestSavePathUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SGET_CONFIG_DIR", dir)
	require.Equal(t, filepath.Join(dir, "config.yml"), SavePath())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pincerdbg/pincer/internal/constants"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("PINCER_CONFIG", t.TempDir())

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, cfg.Version)
	assert.True(t, cfg.Symbols.UndecorateNames)
	assert.Equal(t, constants.DefaultSymbolServerURL, cfg.Symbols.ServerURL)
	assert.Equal(t, constants.DefaultDownloadMaxRetries, cfg.Symbols.Download.MaxRetries)
	assert.Contains(t, cfg.Symbols.CachePath, constants.DefaultSymbolCacheDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PINCER_CONFIG", dir)

	path := filepath.Join(dir, constants.DefaultDir, constants.ConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1"
symbols:
  undecorate_names: false
  server_url: https://symbols.example.com
  download:
    max_retries: 7
    initial_backoff: 1s
`), 0o600))

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.False(t, cfg.Symbols.UndecorateNames)
	assert.Equal(t, "https://symbols.example.com", cfg.Symbols.ServerURL)
	assert.Equal(t, 7, cfg.Symbols.Download.MaxRetries)
	assert.Equal(t, time.Second, cfg.Symbols.Download.InitialBackoff.Std())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PINCER_CONFIG", t.TempDir())
	t.Setenv("PINCER_SYMBOL_SERVER", "https://env.example.com")
	t.Setenv("PINCER_SYMBOL_CACHE", "/var/cache/sym")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Symbols.ServerURL)
	assert.Equal(t, "/var/cache/sym", cfg.Symbols.CachePath)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("PINCER_CONFIG", t.TempDir())

	loader := NewLoader()
	cfg, err := loader.Load()
	require.NoError(t, err)

	cfg.Symbols.ServerURL = "https://mirror.example.com"
	require.NoError(t, loader.Save(cfg))

	reloaded, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.com", reloaded.Symbols.ServerURL)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PINCER_CONFIG", dir)

	path := filepath.Join(dir, constants.DefaultDir, constants.ConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("symbols: ["), 0o600))

	_, err := NewLoader().Load()
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("PRODVIEW_ENDPOINT", "")
	t.Setenv("PRODVIEW_THEME", "")
	t.Setenv("PRODVIEW_PAGE_SIZE", "")
	t.Setenv("PRODVIEW_DEBUG", "")
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://dummyjson.com/products", cfg.Source.Endpoint)
	assert.Equal(t, 100, cfg.Source.Limit)
	assert.Equal(t, 10, cfg.UI.PageSize)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	clearEnv(t)
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(ws), 0755))
	require.NoError(t, os.WriteFile(File(ws), []byte("ui:\n  page_size: 20\n"), 0644))

	cfg, err := Load(ws)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.UI.PageSize)
	assert.Equal(t, "https://dummyjson.com/products", cfg.Source.Endpoint, "unset fields keep defaults")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(ws), 0755))
	require.NoError(t, os.WriteFile(File(ws), []byte("{source: [broken"), 0644))

	_, err := Load(ws)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("endpoint", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PRODVIEW_ENDPOINT", "https://example.test/items")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/items", cfg.Source.Endpoint)
	})

	t.Run("page size", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PRODVIEW_PAGE_SIZE", "50")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.UI.PageSize)
	})

	t.Run("invalid page size ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PRODVIEW_PAGE_SIZE", "lots")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.UI.PageSize)
	})

	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		ws := t.TempDir()
		require.NoError(t, Save(ws, Config{UI: UIConfig{Theme: "light"}}))
		t.Setenv("PRODVIEW_THEME", "dark")
		cfg, err := Load(ws)
		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("debug flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PRODVIEW_DEBUG", "1")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.True(t, cfg.Logging.Debug)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	ws := t.TempDir()

	want := Default()
	want.UI.Theme = "dark"
	want.Source.Limit = 30
	require.NoError(t, Save(ws, want))

	_, err := os.Stat(filepath.Join(ws, ".prodview", "config.yaml"))
	require.NoError(t, err)

	got, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

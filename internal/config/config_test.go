package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StylusBoard/internal/board"
	"StylusBoard/internal/export"
	"StylusBoard/internal/store"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
height = 240
placeholder = "Sign here"
pen_color = "#ff0000"
pen_width = 5
export_erasure = false
state_key = "signature"
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 240.0, cfg.Height)
	assert.Equal(t, "Sign here", cfg.Placeholder)
	assert.Equal(t, "#ff0000", cfg.PenColor)
	assert.Equal(t, 5.0, cfg.PenWidth)
	assert.False(t, cfg.ExportErasure)
	assert.Equal(t, "signature", cfg.StateKey)
	assert.True(t, cfg.ShowToolbar, "unset keys keep defaults")
	assert.Equal(t, export.DefaultPadding, int(cfg.ExportPadding))

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "pen_colour = \"#000\"\n"))
	assert.ErrorContains(t, err, "pen_colour")
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	_, err := Load(writeConfig(t, "height = [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	bad := map[string]func(*Config){
		"pen_width":       func(c *Config) { c.PenWidth = 0 },
		"pen_color":       func(c *Config) { c.PenColor = "blue-ish" },
		"export_scale":    func(c *Config) { c.ExportScale = -1 },
		"export_padding":  func(c *Config) { c.ExportPadding = -1 },
		"history_limit":   func(c *Config) { c.HistoryLimit = -2 },
		"state_backend":   func(c *Config) { c.StateBackend = "cloud" },
		"state_dir":       func(c *Config) { c.StateDir = "" },
		"log_level":       func(c *Config) { c.LogLevel = "loud" },
		"export_max_side": func(c *Config) { c.ExportMaxSide = -3 },
	}
	for key, mutate := range bad {
		cfg := Default()
		mutate(&cfg)
		assert.ErrorContains(t, cfg.Validate(), key)
	}

	cfg := Default()
	cfg.StateBackend = BackendPrefs
	cfg.StateDir = ""
	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Placeholder = "Draw"
	cfg.AutoExport = true
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestBoardOptions(t *testing.T) {
	cfg := Default()
	cfg.Placeholder = "Sign"
	cfg.ShowToolbar = false
	cfg.PenWidth = 7
	cfg.StateDir = t.TempDir()

	b := board.New(append(cfg.BoardOptions(), board.WithStore(store.NewFileStore(cfg.StateDir), cfg.StateKey))...)
	assert.Equal(t, "Sign", b.Placeholder())
	assert.False(t, b.ShowToolbar())
	assert.Equal(t, 7.0, b.Width())
	assert.Equal(t, uint8(255), b.Color().A)
}

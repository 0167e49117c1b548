package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StylusBoard/internal/config"
	"StylusBoard/internal/export"
	"StylusBoard/internal/state"
	"StylusBoard/internal/store"
)

func writeTestConfig(t *testing.T) (cfgPath, stateDir string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.StateDir = filepath.Join(dir, "state")
	cfg.LogLevel = "error"
	cfgPath = filepath.Join(dir, "config.toml")
	require.NoError(t, cfg.Save(cfgPath))
	return cfgPath, cfg.StateDir
}

func saveDrawing(t *testing.T, stateDir string, paths state.PathList) {
	t.Helper()
	doc := store.Document{Paths: paths, Transform: state.Identity()}
	require.NoError(t, store.NewAdapter(store.NewFileStore(stateDir), store.DefaultKey).Save(doc))
}

func TestRunExportWritesFile(t *testing.T) {
	cfgPath, stateDir := writeTestConfig(t)
	stroke := state.NewStroke(state.Pen{Color: color.NRGBA{A: 255}, Width: 4}, state.Pt(0, 0))
	stroke.Append(state.Pt(40, 20))
	saveDrawing(t, stateDir, state.PathList{stroke})

	out := filepath.Join(t.TempDir(), "drawing.pdf")
	require.NoError(t, runExport([]string{"-config", cfgPath, "-format", "pdf", "-o", out}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestRunExportNothingToExport(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)
	out := filepath.Join(t.TempDir(), "drawing.png")
	err := runExport([]string{"-config", cfgPath, "-o", out})
	assert.ErrorIs(t, err, errNothingToExport)
	assert.NoFileExists(t, out)
}

func TestWriteExportFileReportsErrors(t *testing.T) {
	stroke := state.NewStroke(state.Pen{Color: color.NRGBA{A: 255}, Width: 4}, state.Pt(0, 0))
	doc := store.Document{Paths: state.PathList{stroke}, Transform: state.Identity()}

	missing := filepath.Join(t.TempDir(), "no-such-dir", "drawing.png")
	assert.Error(t, writeExportFile(missing, export.FormatPNG, doc, export.DefaultOptions()))

	path := filepath.Join(t.TempDir(), "drawing.png")
	require.NoError(t, writeExportFile(path, export.FormatPNG, doc, export.DefaultOptions()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

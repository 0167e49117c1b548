package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"StylusBoard/internal/store"
)

// SaveToFile writes the drawing and view as JSON and closes writer.
func (w *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) error {
	data, err := json.MarshalIndent(w.board.Document(), "", "  ")
	if err == nil {
		_, err = writer.Write(data)
	}
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save drawing: %w", err)
	}
	return nil
}

// LoadFromFile replaces the drawing with one saved by SaveToFile and
// closes reader. The board is left untouched when the file is invalid.
func (w *BoardWidget) LoadFromFile(reader fyne.URIReadCloser) error {
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read drawing: %w", err)
	}
	var doc store.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse drawing: %w", err)
	}
	w.board.Open(doc)
	w.changed()
	return nil
}

func showSave(win fyne.Window, w *BoardWidget, log *slog.Logger) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		uri := wc.URI().String()
		if err := w.SaveToFile(wc); err != nil {
			log.Error("drawing not saved", "uri", uri, "err", err)
			dialog.ShowError(err, win)
			return
		}
		log.Info("drawing saved", "uri", uri, "strokes", len(w.board.Paths()))
	}, win)
	d.SetFileName("drawing.json")
	d.Show()
}

func showOpen(win fyne.Window, w *BoardWidget, log *slog.Logger) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if rc == nil {
			return
		}
		uri := rc.URI().String()
		if err := w.LoadFromFile(rc); err != nil {
			log.Error("drawing not opened", "uri", uri, "err", err)
			dialog.ShowError(err, win)
			return
		}
		log.Info("drawing opened", "uri", uri, "strokes", len(w.board.Paths()))
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

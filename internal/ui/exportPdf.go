package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"StylusBoard/internal/board"
	"StylusBoard/internal/export"
)

var errNothingToExport = errors.New("the drawing is empty")

// showExport asks for a destination and writes the drawing there in
// format f.
func showExport(win fyne.Window, b *board.Board, f export.Format, log *slog.Logger) {
	if !b.HasInk() {
		dialog.ShowError(errNothingToExport, win)
		return
	}
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		if err := writeExport(wc, b, f); err != nil {
			log.Error("export failed", "uri", wc.URI().String(), "err", err)
			dialog.ShowError(err, win)
			return
		}
		log.Info("drawing exported", "uri", wc.URI().String(), "format", string(f))
	}, win)
	d.SetFileName("drawing" + f.Ext())
	d.Show()
}

func writeExport(wc fyne.URIWriteCloser, b *board.Board, f export.Format) error {
	ok, err := b.Export(wc, f)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	if err == nil && !ok {
		err = errNothingToExport
	}
	return err
}

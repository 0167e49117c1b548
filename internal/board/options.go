package board

import (
	"image/color"
	"log/slog"

	"StylusBoard/internal/export"
	"StylusBoard/internal/state"
	"StylusBoard/internal/store"
)

// ContentChange is reported to the host when the drawing changes.
type ContentChange struct {
	HasContent bool   `json:"hasContent"`
	Image      string `json:"image,omitempty"`
}

// Option configures a Board at mount time.
type Option func(*Board)

// WithHeight sets the visual height the host should give the surface.
// Zero leaves it to the host.
func WithHeight(h float64) Option { return func(b *Board) { b.height = h } }

// WithPlaceholder sets the text shown while the board is empty.
func WithPlaceholder(text string) Option { return func(b *Board) { b.placeholder = text } }

// WithToolbar shows or hides the host toolbar.
func WithToolbar(show bool) Option { return func(b *Board) { b.showToolbar = show } }

// WithAutoExport re-exports the drawing after every content change and
// reports the image through the content-change callback.
func WithAutoExport(on bool) Option { return func(b *Board) { b.autoExport = on } }

// WithContentChange registers the content-change callback. With auto
// export enabled it is also called from a background goroutine.
func WithContentChange(fn func(ContentChange)) Option {
	return func(b *Board) { b.onChange = fn }
}

// WithStore persists the drawing in s under key (store.DefaultKey when
// empty).
func WithStore(s store.Store, key string) Option {
	return func(b *Board) { b.persist = store.NewAdapter(s, key) }
}

// WithHistoryLimit bounds the undo stack. Zero means unbounded.
func WithHistoryLimit(n int) Option { return func(b *Board) { b.historyLimit = n } }

// WithExportOptions sets how ExportDrawing renders.
func WithExportOptions(o export.Options) Option { return func(b *Board) { b.exportOpts = o } }

// WithPen sets the initial pen color and width.
func WithPen(c color.Color, width float64) Option {
	return func(b *Board) {
		b.color = state.ToNRGBA(c)
		if width > 0 {
			b.width = width
		}
	}
}

// WithSurface sets the initial display size and pixel ratio.
func WithSurface(w, h, ratio float64) Option {
	return func(b *Board) { b.surfaceW, b.surfaceH, b.ratio = w, h, ratio }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option { return func(b *Board) { b.log = l } }

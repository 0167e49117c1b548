// Package board is the freehand drawing surface: it turns pointer input
// into strokes and owns the path list, the view transform and the
// undo/redo history for its lifetime.
//
// A Board is not safe for concurrent use; the host delivers every event
// and command from one goroutine.
package board

import (
	"image"
	"image/color"
	"io"
	"log/slog"

	"StylusBoard/internal/export"
	"StylusBoard/internal/render"
	"StylusBoard/internal/state"
	"StylusBoard/internal/store"
)

// Key is a keyboard key name as reported by the host.
type Key string

// KeyEscape leaves fullscreen mode.
const KeyEscape Key = "Escape"

const (
	defaultWidth        = 3.0
	defaultSurfaceW     = 800.0
	defaultSurfaceH     = 600.0
	defaultSurfaceRatio = 1.0
)

// Board is a drawing surface. Create one with New.
type Board struct {
	paths   state.PathList
	view    state.Transform
	history *state.History

	tool  state.Tool
	color color.NRGBA
	width float64

	input     InputState
	lastPos   state.Point
	panStart  state.Point
	panOrigin state.Transform

	renderer *render.Renderer
	surfaceW float64
	surfaceH float64
	ratio    float64

	persist    *store.Adapter
	exportOpts export.Options
	publisher  *export.Publisher
	autoExport bool
	onChange   func(ContentChange)
	hadContent bool

	height       float64
	placeholder  string
	showToolbar  bool
	historyLimit int
	fullscreen   bool
	onFullscreen func(bool)

	log *slog.Logger
}

// New mounts a board. Persisted state, if configured, is loaded here; a
// missing or unreadable record leaves the board empty.
func New(opts ...Option) *Board {
	b := &Board{
		view:        state.Identity(),
		color:       color.NRGBA{A: 255},
		width:       defaultWidth,
		surfaceW:    defaultSurfaceW,
		surfaceH:    defaultSurfaceH,
		ratio:       defaultSurfaceRatio,
		showToolbar: true,
		exportOpts:  export.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	if b.height > 0 && b.surfaceH == defaultSurfaceH {
		b.surfaceH = b.height
	}
	b.history = state.NewHistory(b.historyLimit)
	b.renderer = render.New(b.surfaceW, b.surfaceH, b.ratio)
	if b.autoExport {
		b.publisher = export.NewPublisher(b.exportOpts, b.deliverExport)
	}

	b.load()
	b.redraw()
	b.contentChanged()
	return b
}

func (b *Board) load() {
	if b.persist == nil {
		return
	}
	doc, err := b.persist.Load()
	if err != nil {
		b.log.Warn("saved drawing could not be loaded, starting empty",
			"key", b.persist.Key(), "err", err)
	}
	b.paths = doc.Paths
	b.view = doc.Transform
}

// Close waits for background exports to finish.
func (b *Board) Close() {
	if b.publisher != nil {
		b.publisher.Wait()
	}
}

// SetTool selects the pen, eraser or pan tool for the next gesture.
func (b *Board) SetTool(t state.Tool) { b.tool = t }

// Tool returns the active tool.
func (b *Board) Tool() state.Tool { return b.tool }

// SetColor sets the pen color. Colors are stored opaque.
func (b *Board) SetColor(c color.Color) { b.color = state.ToNRGBA(c) }

// Color returns the pen color.
func (b *Board) Color() color.NRGBA { return b.color }

// SetWidth sets the line width for pen and eraser. Non-positive widths are
// ignored.
func (b *Board) SetWidth(w float64) {
	if w > 0 {
		b.width = w
	}
}

// Width returns the line width.
func (b *Board) Width() float64 { return b.width }

func (b *Board) tip() state.Tip {
	if b.tool == state.ToolEraser {
		return state.Eraser{Width: b.width}
	}
	return state.Pen{Color: b.color, Width: b.width}
}

// State returns the input state machine's state.
func (b *Board) State() InputState { return b.input }

// HasContent reports whether any stroke is present.
func (b *Board) HasContent() bool { return len(b.paths) > 0 }

// Paths returns a copy of the path list.
func (b *Board) Paths() state.PathList { return b.paths.Clone() }

// Transform returns the current view.
func (b *Board) Transform() state.Transform { return b.view }

// CanUndo reports whether Undo would change anything.
func (b *Board) CanUndo() bool { return b.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (b *Board) CanRedo() bool { return b.history.CanRedo() }

// Undo restores the path list from before the last edit. It reports false
// and changes nothing when there is nothing to undo.
func (b *Board) Undo() bool {
	b.input = Idle
	prev, ok := b.history.Undo(b.paths)
	if !ok {
		return false
	}
	b.paths = prev
	b.commit(true)
	return true
}

// Redo re-applies the last undone edit.
func (b *Board) Redo() bool {
	b.input = Idle
	next, ok := b.history.Redo(b.paths)
	if !ok {
		return false
	}
	b.paths = next
	b.commit(true)
	return true
}

// Clear empties the board and resets the view. The cleared strokes can be
// brought back with Undo. The saved drawing is deleted.
func (b *Board) Clear() {
	b.input = Idle
	if len(b.paths) > 0 {
		b.history.SnapshotBeforeEdit(b.paths)
	}
	b.wipe()
}

// Reset starts a fresh document: like Clear, but the history is dropped
// too.
func (b *Board) Reset() {
	b.input = Idle
	b.history.Reset()
	b.wipe()
}

func (b *Board) wipe() {
	b.paths = nil
	b.view = state.Identity()
	b.redraw()
	if b.persist != nil {
		if err := b.persist.Remove(); err != nil {
			b.log.Warn("saved drawing could not be deleted", "key", b.persist.Key(), "err", err)
		}
	}
	b.contentChanged()
}

// Document returns the drawing and view in their saved form.
func (b *Board) Document() store.Document {
	return store.Document{Paths: b.paths.Clone(), Transform: b.view}
}

// Open replaces the drawing and view with doc. Like any other edit it can
// be undone.
func (b *Board) Open(doc store.Document) {
	b.input = Idle
	b.history.SnapshotBeforeEdit(b.paths)
	b.paths = doc.Paths.Clone()
	b.view = doc.Transform
	if b.view.Scale <= 0 {
		b.view = state.Identity()
	}
	b.commit(true)
}

// Resize sets up the backing raster for a w x h surface at the given
// pixel ratio and redraws. Repeating a call with the same size is cheap.
func (b *Board) Resize(w, h, ratio float64) {
	if b.renderer.Resize(w, h, ratio) {
		b.surfaceW, b.surfaceH, b.ratio = b.renderer.Size()
		b.redraw()
	}
}

// Frame returns the surface as last rendered. It is overwritten by the
// next redraw.
func (b *Board) Frame() *image.RGBA { return b.renderer.Image() }

// ExportDrawing renders the ink as a PNG data URI. ok is false when there
// is nothing to export.
func (b *Board) ExportDrawing() (uri string, ok bool, err error) {
	return export.DataURI(b.paths, b.exportOpts)
}

// ExportPNG renders the ink as PNG bytes.
func (b *Board) ExportPNG() ([]byte, bool, error) {
	return export.PNG(b.paths, b.exportOpts)
}

// ExportPDF writes the ink as a one-page PDF.
func (b *Board) ExportPDF(w io.Writer) (bool, error) {
	return export.PDF(w, b.paths, b.exportOpts)
}

// Export writes the ink to w in format f.
func (b *Board) Export(w io.Writer, f export.Format) (bool, error) {
	return export.Write(w, f, b.paths, b.exportOpts)
}

// HasInk reports whether an export would produce an image.
func (b *Board) HasInk() bool { return b.paths.HasInk() }

// Height is the mount height, zero when the host decides.
func (b *Board) Height() float64 { return b.height }

// Placeholder is the text to show while the board is empty.
func (b *Board) Placeholder() string { return b.placeholder }

// ShowToolbar reports whether the host should show its toolbar.
func (b *Board) ShowToolbar() bool { return b.showToolbar }

// OnFullscreenChange registers fn to be told when fullscreen mode changes.
func (b *Board) OnFullscreenChange(fn func(bool)) { b.onFullscreen = fn }

// SetFullscreen enters or leaves fullscreen drawing mode.
func (b *Board) SetFullscreen(on bool) {
	if b.fullscreen == on {
		return
	}
	b.fullscreen = on
	if b.onFullscreen != nil {
		b.onFullscreen(on)
	}
}

// Fullscreen reports whether fullscreen mode is active.
func (b *Board) Fullscreen() bool { return b.fullscreen }

// HandleKey handles a key press and reports whether it was used. Escape
// leaves fullscreen mode; nothing else is bound.
func (b *Board) HandleKey(k Key) bool {
	if k == KeyEscape && b.fullscreen {
		b.SetFullscreen(false)
		return true
	}
	return false
}

// commit finishes a mutation: redraw, persist, and, for content edits,
// notify the host.
func (b *Board) commit(content bool) {
	b.redraw()
	if b.input != Drawing {
		b.save()
	}
	if content {
		b.contentChanged()
	}
}

func (b *Board) redraw() {
	b.renderer.Draw(b.paths, b.view)
}

func (b *Board) save() {
	if b.persist == nil {
		return
	}
	doc := store.Document{Paths: b.paths, Transform: b.view}
	if err := b.persist.Save(doc); err != nil {
		b.log.Warn("drawing could not be saved", "key", b.persist.Key(), "err", err)
	}
}

func (b *Board) contentChanged() {
	has := b.HasContent()
	if b.publisher != nil && !has {
		b.publisher.Supersede()
	}
	if has != b.hadContent {
		b.hadContent = has
		b.emit(ContentChange{HasContent: has})
	}
	if b.publisher != nil && has {
		b.publisher.Submit(b.paths)
	}
}

func (b *Board) deliverExport(res export.Result) {
	if res.Err != nil {
		b.log.Warn("drawing could not be exported", "err", res.Err)
		return
	}
	if !res.OK {
		return
	}
	b.emit(ContentChange{HasContent: true, Image: res.Image})
}

func (b *Board) emit(c ContentChange) {
	if b.onChange != nil {
		b.onChange(c)
	}
}

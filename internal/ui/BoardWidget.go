package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"StylusBoard/internal/board"
)

const defaultMinHeight = 300

// BoardWidget shows a board and feeds it mouse, drag and scroll events.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board

	raster      *canvas.Raster
	placeholder *widget.Label
	modifier    fyne.KeyModifier

	// OnChanged runs after every event or command that may have changed
	// the board, on the main goroutine.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{
		board:       b,
		placeholder: widget.NewLabel(b.Placeholder()),
	}
	w.placeholder.Importance = widget.LowImportance
	w.raster = canvas.NewRaster(w.frame)
	w.ExtendBaseWidget(w)
	w.syncPlaceholder()
	return w
}

// Board returns the board behind the widget.
func (w *BoardWidget) Board() *board.Board { return w.board }

// frame renders at the raster's pixel size, which fixes the pixel ratio.
func (w *BoardWidget) frame(pw, ph int) image.Image {
	size := w.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	ratio := float64(pw) / float64(size.Width)
	w.board.Resize(float64(size.Width), float64(size.Height), ratio)
	return w.board.Frame()
}

func buttonOf(b desktop.MouseButton) board.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return board.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return board.ButtonTertiary
	}
	return board.ButtonPrimary
}

func pointer(pos fyne.Position, b board.Button) board.PointerEvent {
	return board.PointerEvent{X: float64(pos.X), Y: float64(pos.Y), Button: b}
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	w.modifier = e.Modifier
	w.board.PointerDown(pointer(e.Position, buttonOf(e.Button)))
	w.changed()
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	w.board.PointerUp(pointer(e.Position, buttonOf(e.Button)))
	w.changed()
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.board.PointerMove(pointer(e.Position, board.ButtonPrimary))
	w.changed()
}

func (w *BoardWidget) DragEnd() {
	w.board.PointerLeave()
	w.changed()
}

func (w *BoardWidget) MouseIn(e *desktop.MouseEvent) { w.modifier = e.Modifier }

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) { w.modifier = e.Modifier }

func (w *BoardWidget) MouseOut() {
	if w.board.State() != board.Idle {
		w.board.PointerLeave()
		w.changed()
	}
}

// Scrolled pans, or zooms around the pointer while Ctrl or Cmd is held.
// Fyne reports upward scrolling as positive.
func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	w.board.Wheel(board.WheelEvent{
		X:        float64(e.Position.X),
		Y:        float64(e.Position.Y),
		DeltaX:   -float64(e.Scrolled.DX),
		DeltaY:   -float64(e.Scrolled.DY),
		Modifier: w.modifier&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0,
	})
	w.changed()
}

// Undo, Redo, Clear and Reset run the board command and refresh.
func (w *BoardWidget) Undo() {
	w.board.Undo()
	w.changed()
}

func (w *BoardWidget) Redo() {
	w.board.Redo()
	w.changed()
}

func (w *BoardWidget) Clear() {
	w.board.Clear()
	w.changed()
}

func (w *BoardWidget) Reset() {
	w.board.Reset()
	w.changed()
}

func (w *BoardWidget) changed() {
	w.syncPlaceholder()
	w.raster.Refresh()
	if w.OnChanged != nil {
		w.OnChanged()
	}
}

func (w *BoardWidget) syncPlaceholder() {
	if w.board.HasContent() || w.board.Placeholder() == "" {
		w.placeholder.Hide()
	} else {
		w.placeholder.Show()
	}
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	page := canvas.NewRectangle(color.White)
	h := float32(w.board.Height())
	if h <= 0 {
		h = defaultMinHeight
	}
	page.SetMinSize(fyne.NewSize(defaultMinHeight, h))
	return widget.NewSimpleRenderer(container.NewStack(
		page,
		container.NewCenter(w.placeholder),
		w.raster,
	))
}

package board

import "StylusBoard/internal/state"

// Button identifies which mouse button or touch contact an event is for.
type Button int

const (
	// ButtonPrimary is the left mouse button or the first touch contact.
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// PointerEvent is a pointer or touch event in screen space.
type PointerEvent struct {
	X, Y   float64
	Button Button
}

// WheelEvent is a wheel or trackpad scroll in screen space. Positive
// DeltaY scrolls down. Modifier is set while a zoom key (Ctrl or Cmd) is
// held.
type WheelEvent struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Modifier       bool
}

// InputState is the pointer state machine's state.
type InputState int

const (
	Idle InputState = iota
	Drawing
	Panning
)

func (s InputState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Panning:
		return "panning"
	}
	return "unknown"
}

// zoomStep is the scale factor applied per wheel event.
const zoomStep = 1.1

// PointerDown starts a stroke, or a pan when the pan tool is active.
// Anything but the primary button, or a second contact while a gesture is
// running, is ignored.
func (b *Board) PointerDown(ev PointerEvent) {
	if ev.Button != ButtonPrimary || b.input != Idle {
		return
	}
	pos := state.Pt(ev.X, ev.Y)
	b.lastPos = pos
	if b.tool == state.ToolPan {
		b.input = Panning
		b.panStart = pos
		b.panOrigin = b.view
		return
	}

	b.history.SnapshotBeforeEdit(b.paths)
	b.paths = append(b.paths, state.NewStroke(b.tip(), b.view.ToCanvas(pos)))
	b.input = Drawing
	b.redraw()
}

// PointerMove extends the active stroke or pan.
func (b *Board) PointerMove(ev PointerEvent) {
	pos := state.Pt(ev.X, ev.Y)
	b.lastPos = pos
	switch b.input {
	case Drawing:
		b.paths.Last().Append(b.view.ToCanvas(pos))
		b.redraw()
	case Panning:
		d := pos.Sub(b.panStart)
		b.view = b.panOrigin.Pan(d.X, d.Y)
		b.redraw()
	}
}

// PointerUp ends the active gesture.
func (b *Board) PointerUp(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	b.endGesture()
}

// PointerLeave ends the active gesture when the pointer leaves the surface.
func (b *Board) PointerLeave() {
	b.endGesture()
}

func (b *Board) endGesture() {
	switch b.input {
	case Drawing:
		b.input = Idle
		b.commit(true)
	case Panning:
		b.input = Idle
		b.commit(false)
	}
}

// Wheel zooms around the pointer while Modifier is held and pans
// otherwise. It changes only the view, never the history.
func (b *Board) Wheel(ev WheelEvent) {
	pos := state.Pt(ev.X, ev.Y)
	if ev.Modifier {
		if ev.DeltaY == 0 {
			return
		}
		factor := zoomStep
		if ev.DeltaY > 0 {
			factor = 1 / zoomStep
		}
		b.view = b.view.ZoomAt(pos, factor)
	} else {
		b.view = b.view.Pan(-ev.DeltaX, -ev.DeltaY)
	}
	if b.input == Panning {
		b.panOrigin = b.view
		b.panStart = b.lastPos
	}
	b.commit(false)
}

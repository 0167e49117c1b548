package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// draw simulates one edit: snapshot, then append a stroke.
func draw(h *History, current PathList, x float64) PathList {
	h.SnapshotBeforeEdit(current)
	return append(current.Clone(), NewStroke(Pen{Color: black, Width: 1}, Pt(x, x)))
}

func TestUndoRedoInverse(t *testing.T) {
	h := NewHistory(0)
	var states []PathList
	var cur PathList
	states = append(states, cur.Clone())
	for i := range 4 {
		cur = draw(h, cur, float64(i))
		states = append(states, cur.Clone())
	}

	undone, ok := h.Undo(cur)
	assert.True(t, ok)
	assert.Equal(t, states[3], undone)

	redone, ok := h.Redo(undone)
	assert.True(t, ok)
	assert.Equal(t, states[4], redone)
}

func TestUndoEmptyIsNoop(t *testing.T) {
	h := NewHistory(0)
	cur := PathList{NewStroke(Eraser{Width: 1}, Pt(1, 1))}
	got, ok := h.Undo(cur)
	assert.False(t, ok)
	assert.Equal(t, cur, got)

	got, ok = h.Redo(cur)
	assert.False(t, ok)
	assert.Equal(t, cur, got)
}

func TestNewEditClearsRedo(t *testing.T) {
	h := NewHistory(0)
	cur := draw(h, nil, 1)
	cur, _ = h.Undo(cur)
	assert.True(t, h.CanRedo())

	cur = draw(h, cur, 2)
	assert.False(t, h.CanRedo())
	_, ok := h.Redo(cur)
	assert.False(t, ok)
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	var cur PathList
	for i := range 5 {
		cur = draw(h, cur, float64(i))
	}
	u, r := h.Depth()
	assert.Equal(t, 2, u)
	assert.Equal(t, 0, r)

	cur, _ = h.Undo(cur)
	cur, _ = h.Undo(cur)
	assert.Len(t, cur, 3)
	assert.False(t, h.CanUndo())
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(0)
	cur := draw(h, nil, 1)
	h.Undo(cur)
	h.Reset()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

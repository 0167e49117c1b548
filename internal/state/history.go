package state

// History keeps linear undo/redo stacks of path-list snapshots.
type History struct {
	undo  []PathList
	redo  []PathList
	limit int
}

// NewHistory returns a History keeping at most limit undo entries.
// A limit of zero or less keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// SnapshotBeforeEdit records current as the state to return to, and drops
// any redo entries: a new edit forks the timeline.
func (h *History) SnapshotBeforeEdit(current PathList) {
	h.undo = append(h.undo, current.Clone())
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo[0] = nil
		h.undo = h.undo[1:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo returns the previous path list. When there is nothing to undo it
// returns current unchanged and false.
func (h *History) Undo(current PathList) (PathList, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return prev, true
}

// Redo is the inverse of Undo.
func (h *History) Redo(current PathList) (PathList, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return next, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Reset drops both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}

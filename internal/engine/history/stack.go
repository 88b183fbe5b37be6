package history

import (
	"errors"

	"github.com/dshills/listedit/internal/engine/list"
)

// ErrNothingToUndo is returned by Undo when no snapshot is stored.
var ErrNothingToUndo = errors.New("nothing to undo")

// History is a LIFO stack of list snapshots.
// The zero value is an empty history ready to use.
type History struct {
	undoStack []*entry
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Push stores a deep copy of l as the newest snapshot.
// The history never keeps a reference to l itself.
func (h *History) Push(l *list.List, description string) {
	h.undoStack = append(h.undoStack, newEntry(l.Clone(), description))
}

// Undo removes the newest snapshot and moves its contents into target.
// Returns ErrNothingToUndo and leaves target alone if the history is empty.
func (h *History) Undo(target *list.List) error {
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	top := len(h.undoStack) - 1
	e := h.undoStack[top]
	h.undoStack[top] = nil
	h.undoStack = h.undoStack[:top]

	target.Replace(e.snapshot)
	e.snapshot = nil
	return nil
}

// Drain releases every stored snapshot and empties the history.
func (h *History) Drain() {
	for i, e := range h.undoStack {
		if e.snapshot != nil {
			e.snapshot.Clear()
			e.snapshot = nil
		}
		h.undoStack[i] = nil
	}
	h.undoStack = nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.undoStack)
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// PeekUndo returns info about the next undo without removing it.
func (h *History) PeekUndo() (EntryInfo, bool) {
	if len(h.undoStack) == 0 {
		return EntryInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// UndoInfo returns info about every stored snapshot, oldest first.
func (h *History) UndoInfo() []EntryInfo {
	result := make([]EntryInfo, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = e.info()
	}
	return result
}

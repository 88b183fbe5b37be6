package engine

import (
	"fmt"

	"github.com/dshills/listedit/internal/engine/history"
	"github.com/dshills/listedit/internal/engine/list"
)

// EntryInfo describes a stored undo snapshot.
type EntryInfo = history.EntryInfo

// Engine owns the live list and its undo history.
// It is not safe for concurrent use.
type Engine struct {
	list    *list.List
	history *history.History

	renderOpts list.RenderOptions
	initValues []int
	closed     bool
}

// New creates an engine with an empty list unless WithValues is given.
func New(opts ...Option) *Engine {
	e := &Engine{
		history:    history.New(),
		renderOpts: list.DefaultRenderOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.list = list.NewFromValues(e.initValues...)
	e.initValues = nil
	return e
}

// InsertEnd appends value.
func (e *Engine) InsertEnd(value int) error {
	return e.edit(fmt.Sprintf("insert %d at end", value), func(l *list.List) error {
		l.InsertEnd(value)
		return nil
	})
}

// InsertBegin prepends value.
func (e *Engine) InsertBegin(value int) error {
	return e.edit(fmt.Sprintf("insert %d at beginning", value), func(l *list.List) error {
		l.InsertBegin(value)
		return nil
	})
}

// InsertAfter inserts value after the element at position.
func (e *Engine) InsertAfter(position, value int) error {
	return e.edit(fmt.Sprintf("insert %d after position %d", value, position), func(l *list.List) error {
		return l.InsertAfter(position, value)
	})
}

// InsertBefore inserts value before the element at position.
func (e *Engine) InsertBefore(position, value int) error {
	return e.edit(fmt.Sprintf("insert %d before position %d", value, position), func(l *list.List) error {
		return l.InsertBefore(position, value)
	})
}

// EditFirst replaces the first occurrence of oldValue with newValue.
func (e *Engine) EditFirst(oldValue, newValue int) error {
	return e.edit(fmt.Sprintf("edit %d to %d", oldValue, newValue), func(l *list.List) error {
		return l.EditFirst(oldValue, newValue)
	})
}

// edit saves a snapshot and then applies fn to the live list.
// The snapshot is kept even if fn fails.
func (e *Engine) edit(description string, fn func(*list.List) error) error {
	if e.closed {
		return ErrClosed
	}
	e.history.Push(e.list, description)
	return fn(e.list)
}

// Undo restores the list saved before the most recent edit.
func (e *Engine) Undo() error {
	if e.closed {
		return ErrClosed
	}
	return e.history.Undo(e.list)
}

// Render returns the list as text using the configured render options.
func (e *Engine) Render() string {
	return e.list.RenderWith(e.renderOpts)
}

// Values returns a copy of the list's elements.
func (e *Engine) Values() []int {
	return e.list.Values()
}

// Len returns the number of elements in the list.
func (e *Engine) Len() int {
	return e.list.Len()
}

// UndoDepth returns the number of stored snapshots.
func (e *Engine) UndoDepth() int {
	return e.history.Len()
}

// UndoInfo returns info about stored snapshots, oldest first.
func (e *Engine) UndoInfo() []EntryInfo {
	return e.history.UndoInfo()
}

// IsClosed returns true once Close has been called.
func (e *Engine) IsClosed() bool {
	return e.closed
}

// Close releases the list and every stored snapshot.
// Calling Close more than once is safe.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.history.Drain()
	e.list.Clear()
	return nil
}

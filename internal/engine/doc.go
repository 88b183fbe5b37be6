// Package engine provides the list editor core used by listedit.
//
// The Engine is the single context object that owns the live list and its
// undo history. Every editing method saves a snapshot of the list before it
// changes anything, so one Undo always returns to the state before the most
// recent edit:
//
//	e := engine.New()
//	e.InsertEnd(10)
//	e.InsertEnd(20)
//	e.InsertAfter(0, 15) // 10 -> 15 -> 20 -> NULL
//
//	e.Undo()             // 10 -> 20 -> NULL
//
// A snapshot is saved even when the edit is rejected, for example an
// out-of-bounds position. Undoing such an edit restores an identical list.
//
// # Configuration
//
//	opts := list.DefaultRenderOptions()
//	opts.Separator = ", "
//	e := engine.New(
//	    engine.WithValues(1, 2, 3),
//	    engine.WithRenderOptions(opts),
//	)
//
// # Shutdown
//
// Close releases the list and every stored snapshot. Further calls return
// ErrClosed.
//
// # Error Handling
//
//   - list.ErrOutOfBounds: position names no element
//   - list.ErrInvalidPosition: negative position for InsertBefore
//   - list.ErrNotFound: EditFirst found no match
//   - ErrNothingToUndo: undo history is empty
//   - ErrClosed: engine already closed
package engine

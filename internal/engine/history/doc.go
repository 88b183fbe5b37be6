// Package history provides snapshot-based undo for the list editor.
//
// Every mutating edit is preceded by Push, which stores a complete deep copy
// of the live list. Undo pops the newest snapshot and hands its nodes to the
// live list, so restoring never copies and a snapshot is never shared:
//
//	h := history.New()
//
//	h.Push(live, "insert end 5")
//	live.InsertEnd(5)
//
//	h.Undo(live) // live is back to its state before InsertEnd
//
// # Entries
//
// Each snapshot is stored in an entry carrying an ID, the time it was taken
// and a description of the edit it precedes. UndoInfo and PeekUndo expose
// this metadata without exposing the snapshots themselves.
//
// # Shutdown
//
// Drain releases every stored snapshot and leaves the history empty.
//
// There is no redo and no depth limit.
package history

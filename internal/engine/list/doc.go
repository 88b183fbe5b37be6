// Package list provides the singly linked integer list edited by listedit.
//
// A List owns a chain of nodes. Every node belongs to exactly one List, so
// copies made with Clone never share nodes with the original, and Replace
// moves the nodes of one List into another instead of copying them.
//
// # Positions
//
// Positions are 0-based element indices into the list as it is before the
// insertion:
//
//	l := list.NewFromValues(10, 20, 30)
//	l.InsertAfter(2, 99)  // 10 -> 20 -> 30 -> 99 -> NULL
//	l.InsertBefore(0, 5)  // 5 -> 10 -> 20 -> 30 -> 99 -> NULL
//
// A position that names no element leaves the list unchanged and returns an
// error matching ErrOutOfBounds. A negative position passed to InsertBefore
// returns ErrInvalidPosition.
//
// # Rendering
//
// Render produces the familiar arrow form:
//
//	10 -> 20 -> 30 -> NULL
//
// An empty list renders as "List is empty." instead.
package list

package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/listedit/internal/engine/list"
)

// entry owns one snapshot.
type entry struct {
	id          string
	description string
	timestamp   time.Time
	snapshot    *list.List
}

func newEntry(snapshot *list.List, description string) *entry {
	return &entry{
		id:          uuid.New().String(),
		description: description,
		timestamp:   time.Now(),
		snapshot:    snapshot,
	}
}

func (e *entry) info() EntryInfo {
	return EntryInfo{
		ID:          e.id,
		Description: e.description,
		Timestamp:   e.timestamp,
		Len:         e.snapshot.Len(),
		Values:      e.snapshot.Values(),
	}
}

// EntryInfo provides read-only info about a stored snapshot.
// Used for displaying undo history to users.
type EntryInfo struct {
	ID          string    // Unique entry ID
	Description string    // Edit the snapshot was taken before
	Timestamp   time.Time // When the snapshot was taken
	Len         int       // Number of elements in the snapshot
	Values      []int     // Copy of the snapshot's elements
}

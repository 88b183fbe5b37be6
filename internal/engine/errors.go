package engine

import (
	"errors"

	"github.com/dshills/listedit/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrClosed indicates the engine has been closed.
	ErrClosed = errors.New("engine is closed")
)

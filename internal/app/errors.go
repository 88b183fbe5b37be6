package app

import (
	"errors"
	"fmt"

	"github.com/dshills/listedit/internal/engine"
)

// Application errors.
var (
	// ErrQuit signals that the user asked to exit.
	ErrQuit = errors.New("quit requested")

	// ErrInvalidInput indicates a token that is not an integer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChoice indicates a menu choice with no action.
	ErrInvalidChoice = errors.New("invalid choice")
)

// OperationError represents an error that occurred during a menu action.
type OperationError struct {
	Op      string // Operation name (e.g., "insert after", "undo")
	Context string // Additional context
	Err     error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{
		Op:  op,
		Err: err,
	}
}

// WithContext adds context to the error.
// Safe to call on nil receiver - returns nil.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// userMessage returns the line shown to the user for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrNothingToUndo):
		return "No operations to undo."
	case errors.Is(err, ErrInvalidChoice):
		return "Invalid choice. Please try again."
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input."
	}

	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return userMessage(opErr.Err)
	}
	return err.Error()
}

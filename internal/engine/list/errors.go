package list

import (
	"errors"
	"fmt"
)

// Errors returned by list operations.
var (
	// ErrOutOfBounds indicates a position that names no element.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidPosition indicates a negative position where none is allowed.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrNotFound indicates no element holds the requested value.
	ErrNotFound = errors.New("value not found")
)

// PositionError reports a rejected position argument.
// The message matches what the interactive editor prints.
type PositionError struct {
	Op       string // Operation name (e.g., "insert after")
	Position int    // Position that was rejected
	Empty    bool   // List was empty when the position was checked
	Err      error  // ErrOutOfBounds or ErrInvalidPosition
}

func (e *PositionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidPosition):
		return fmt.Sprintf("Invalid position %d.", e.Position)
	case e.Empty:
		return fmt.Sprintf("List is empty. Can't insert at position %d.", e.Position)
	default:
		return fmt.Sprintf("Position %d out of bounds.", e.Position)
	}
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// ValueError reports a value lookup that found nothing.
type ValueError struct {
	Op    string
	Value int
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("Value %d not found.", e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

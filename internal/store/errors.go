package store

import (
	"errors"
	"fmt"
)

// Domain error kinds. Callers match these with errors.Is; the store wraps
// them with context via %w.
var (
	// ErrValidation indicates caller-supplied input that violates a
	// precondition (blank task text, id-set mismatch on Reorder).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the referenced task id does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidState indicates an operation that is not legal in the
	// task's current state (completing an already-completed task).
	ErrInvalidState = errors.New("invalid task state")
)

// PersistenceError wraps a failure from the underlying database: driver
// errors, failed writes, rows that do not scan into a Task. Callers
// detect it with errors.As.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// persistErr wraps err as a PersistenceError labeled with op.
func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a record id that is
// not in the store.
var ErrNotFound = errors.New("application not found")

// PersistenceError wraps a failed snapshot write. The in-memory state is
// not committed when the write fails, so callers can retry the operation.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist snapshot %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

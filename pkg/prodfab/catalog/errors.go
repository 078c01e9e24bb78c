package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog validation and binding.
var (
	// ErrMissingID indicates a catalog entry with an empty id.
	ErrMissingID = errors.New("catalog entry has no id")

	// ErrMissingKind indicates a catalog entry with an empty kind.
	ErrMissingKind = errors.New("catalog entry has no kind")

	// ErrUnknownKind indicates an entry whose kind has no binding.
	ErrUnknownKind = errors.New("no binding for kind")
)

// Sentinel errors for catalog stores.
var (
	// ErrNotFound indicates a catalog entry doesn't exist.
	ErrNotFound = errors.New("catalog entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("catalog store closed")
)

// BindError wraps a failure to turn a catalog entry into a registration.
type BindError struct {
	// ID is the entry's identifier.
	ID string
	// Kind is the entry's kind.
	Kind string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s (kind %s): %v", e.ID, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BindError) Unwrap() error {
	return e.Err
}

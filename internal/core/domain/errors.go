package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptRecord indicates a persisted record could not be decoded.
	// Stores return it for the whole collection; search treats it as an
	// empty source.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrStoreClosed indicates the backing store has been closed.
	ErrStoreClosed = errors.New("store closed")

	// ErrUnsupportedBackend indicates an unknown storage backend name.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrSourcePanicked indicates a search source failed unexpectedly.
	// It is only ever reported to diagnostics.
	ErrSourcePanicked = errors.New("search source panicked")

	// ErrInvalidResult indicates a source produced a result whose kind and
	// reference disagree.
	ErrInvalidResult = errors.New("invalid search result")
)

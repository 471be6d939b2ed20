package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when an update, delete or lookup targets an
	// ID that is not in the collection.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrDuplicateNoteID is returned when appending a note whose ID is
	// already present.
	ErrDuplicateNoteID = errors.New("note id already exists")
)

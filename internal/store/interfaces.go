package store

import (
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_storage_mock.go -package=mock

// NoteStorage holds the ordered note collection of a session.
//
// Implementations preserve insertion order and guarantee that every ID in
// the collection is unique.
type NoteStorage interface {
	// Append adds note at the end of the collection.
	// Returns ErrDuplicateNoteID if a note with the same ID already exists.
	Append(note models.Note) error

	// Update replaces the content of the note with the same ID, keeping its
	// position. Returns ErrNoteNotFound if no such note exists.
	Update(note models.Note) error

	// Delete removes the note with the given ID, preserving the relative
	// order of the rest. Returns ErrNoteNotFound if no such note exists.
	Delete(noteID string) error

	// Get returns the note with the given ID.
	Get(noteID string) (models.Note, error)

	// All returns a copy of the collection in insertion order.
	All() []models.Note

	// Len returns the number of stored notes.
	Len() int
}

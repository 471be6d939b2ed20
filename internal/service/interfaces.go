package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_service_mock.go -package=mock

// NoteService is the note collection state machine behind the note screen.
//
// It runs in one of two modes: Composing, where the input buffer holds a new
// note, and Editing(id), where it holds replacement text for note id. Every
// call completes synchronously; the caller re-renders from Snapshot after
// each one.
type NoteService interface {
	// Commit turns the input buffer into a new note (Composing) or into the
	// new content of the note under edit (Editing), then clears the buffer
	// and returns to Composing. Blank input is rejected with an error
	// matching ErrValidation and leaves the state untouched.
	Commit(ctx context.Context) (models.Note, error)

	// Remove deletes the note with noteID. Unknown IDs are a no-op. Removing
	// the note under edit returns the screen to Composing.
	Remove(ctx context.Context, noteID string) bool

	// BeginEdit switches to Editing(noteID) and loads the note content into
	// the input buffer. Unknown IDs are a no-op.
	BeginEdit(ctx context.Context, noteID string) bool

	// CancelEdit leaves Editing without changing any note and clears the
	// input buffer. In Composing it does nothing.
	CancelEdit(ctx context.Context)

	// SetInput overwrites the input buffer. No validation happens here.
	SetInput(ctx context.Context, text string)

	// Get returns the note with noteID.
	Get(ctx context.Context, noteID string) (models.Note, bool)

	// Snapshot returns a copy of the current state.
	Snapshot(ctx context.Context) models.Snapshot
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

package service

import "errors"

var (
	// ErrValidation is the single user-facing error kind of the note screen.
	// Concrete causes (e.g. validators.ErrEmptyContent) are wrapped next to it.
	ErrValidation = errors.New("validation error")
)

var (
	ErrNoNoteStorage = errors.New("note storage is not configured")
	ErrNoIDGenerator = errors.New("id generator is not configured")
)

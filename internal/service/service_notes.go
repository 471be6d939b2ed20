// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	notes     store.NoteStorage
	ids       utils.IDGenerator
	validator validators.Validator

	input string
	mode  models.Mode
}

// NewNoteService returns a NoteService in Composing mode with an empty
// input buffer, working on the collection held by notes.
func NewNoteService(notes store.NoteStorage, ids utils.IDGenerator) NoteService {
	return &noteService{
		notes:     notes,
		ids:       ids,
		validator: validators.NewNoteValidator(),
		mode:      models.ComposingMode(),
	}
}

func (s *noteService) Commit(ctx context.Context) (models.Note, error) {
	if err := s.validator.Validate(ctx, s.input, validators.FieldContent); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if noteID, editing := s.mode.EditingID(); editing {
		return s.commitEdit(noteID)
	}

	note := models.Note{ID: s.ids.Generate(), Content: s.input}
	if err := s.notes.Append(note); err != nil {
		return models.Note{}, fmt.Errorf("append note: %w", err)
	}

	s.input = ""
	return note, nil
}

func (s *noteService) commitEdit(noteID string) (models.Note, error) {
	note := models.Note{ID: noteID, Content: s.input}
	err := s.notes.Update(note)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		// target vanished: nothing to update, just leave edit mode
		note = models.Note{}
	case err != nil:
		return models.Note{}, fmt.Errorf("update note %s: %w", noteID, err)
	}

	s.mode = models.ComposingMode()
	s.input = ""
	return note, nil
}

func (s *noteService) Remove(_ context.Context, noteID string) bool {
	if err := s.notes.Delete(noteID); err != nil {
		return false
	}

	if s.mode.Targets(noteID) {
		s.mode = models.ComposingMode()
		s.input = ""
	}
	return true
}

func (s *noteService) BeginEdit(_ context.Context, noteID string) bool {
	note, err := s.notes.Get(noteID)
	if err != nil {
		return false
	}

	s.mode = models.EditingMode(note.ID)
	s.input = note.Content
	return true
}

func (s *noteService) CancelEdit(_ context.Context) {
	if !s.mode.IsEditing() {
		return
	}

	s.mode = models.ComposingMode()
	s.input = ""
}

func (s *noteService) SetInput(_ context.Context, text string) {
	s.input = text
}

func (s *noteService) Get(_ context.Context, noteID string) (models.Note, bool) {
	note, err := s.notes.Get(noteID)
	if err != nil {
		return models.Note{}, false
	}
	return note, true
}

func (s *noteService) Snapshot(_ context.Context) models.Snapshot {
	return models.Snapshot{
		Notes: s.notes.All(),
		Input: s.input,
		Mode:  s.mode,
	}
}

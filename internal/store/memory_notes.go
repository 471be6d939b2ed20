// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	"github.com/MKhiriev/go-note-keeper/models"
)

// MemoryNoteStorage is a NoteStorage backed by a slice and an ID index.
// It is owned by a single caller and is not safe for concurrent use.
type MemoryNoteStorage struct {
	notes []models.Note
	index map[string]int // note ID -> position in notes
}

// NewMemoryNoteStorage returns an empty collection.
func NewMemoryNoteStorage() *MemoryNoteStorage {
	return &MemoryNoteStorage{
		index: make(map[string]int),
	}
}

func (s *MemoryNoteStorage) Append(note models.Note) error {
	if _, exists := s.index[note.ID]; exists {
		return ErrDuplicateNoteID
	}

	s.index[note.ID] = len(s.notes)
	s.notes = append(s.notes, note)
	return nil
}

func (s *MemoryNoteStorage) Update(note models.Note) error {
	pos, ok := s.index[note.ID]
	if !ok {
		return ErrNoteNotFound
	}

	s.notes[pos].Content = note.Content
	return nil
}

func (s *MemoryNoteStorage) Delete(noteID string) error {
	pos, ok := s.index[noteID]
	if !ok {
		return ErrNoteNotFound
	}

	s.notes = slices.Delete(s.notes, pos, pos+1)
	delete(s.index, noteID)

	// positions after the removed note shift left by one
	for i := pos; i < len(s.notes); i++ {
		s.index[s.notes[i].ID] = i
	}
	return nil
}

func (s *MemoryNoteStorage) Get(noteID string) (models.Note, error) {
	pos, ok := s.index[noteID]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}
	return s.notes[pos], nil
}

func (s *MemoryNoteStorage) All() []models.Note {
	return slices.Clone(s.notes)
}

func (s *MemoryNoteStorage) Len() int {
	return len(s.notes)
}

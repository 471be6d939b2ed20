package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type ClientServices struct {
	NoteService NoteService
}

// NewClientServices builds the note service on top of storages and decorates
// it with logging.
func NewClientServices(storages *store.Storages, ids utils.IDGenerator, log *logger.Logger) (*ClientServices, error) {
	if storages == nil || storages.NoteStorage == nil {
		return nil, ErrNoNoteStorage
	}
	if ids == nil {
		return nil, ErrNoIDGenerator
	}

	notes := NewNoteService(storages.NoteStorage, ids)

	return &ClientServices{
		NoteService: NewNoteLoggingService(log).Wrap(notes),
	}, nil
}

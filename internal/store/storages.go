package store

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages groups every storage the client needs for one session.
type Storages struct {
	NoteStorage NoteStorage
}

// NewStorages builds the in-memory storages. Nothing is written to disk;
// the collection lives as long as the returned value.
func NewStorages(log *logger.Logger) *Storages {
	log.Debug().Msg("in-memory note storage created")

	return &Storages{
		NoteStorage: NewMemoryNoteStorage(),
	}
}

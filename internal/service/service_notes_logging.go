package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteLoggingService decorates a NoteService with structured logging of
// every state transition. It never changes the outcome of a call.
type NoteLoggingService struct {
	inner  NoteService
	logger *logger.Logger
}

func NewNoteLoggingService(log *logger.Logger) NoteServiceWrapper {
	return &NoteLoggingService{
		logger: log.GetChildLogger(),
	}
}

func (l *NoteLoggingService) Wrap(inner NoteService) NoteService {
	l.inner = inner
	return l
}

func (l *NoteLoggingService) Commit(ctx context.Context) (models.Note, error) {
	before := l.inner.Snapshot(ctx).Mode

	note, err := l.inner.Commit(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Str("mode", before.Kind().String()).Msg("commit rejected")
		return note, err
	}

	if targetID, editing := before.EditingID(); editing {
		if note.ID == "" {
			l.logger.Warn().Str("note_id", targetID).Msg("edit target vanished before commit")
			return note, nil
		}
		l.logger.Info().Str("note_id", note.ID).Int("length", len(note.Content)).Msg("note updated")
		return note, nil
	}

	l.logger.Info().Str("note_id", note.ID).Int("length", len(note.Content)).Msg("note created")
	return note, nil
}

func (l *NoteLoggingService) Remove(ctx context.Context, noteID string) bool {
	removed := l.inner.Remove(ctx, noteID)
	l.logger.Info().Str("note_id", noteID).Bool("removed", removed).Msg("remove note")
	return removed
}

func (l *NoteLoggingService) BeginEdit(ctx context.Context, noteID string) bool {
	ok := l.inner.BeginEdit(ctx, noteID)
	if !ok {
		l.logger.Debug().Str("note_id", noteID).Msg("begin edit ignored: note not found")
		return false
	}
	l.logger.Debug().Str("note_id", noteID).Msg("begin edit")
	return true
}

func (l *NoteLoggingService) CancelEdit(ctx context.Context) {
	l.inner.CancelEdit(ctx)
	l.logger.Debug().Msg("edit cancelled")
}

// SetInput is called on every keystroke and is intentionally not logged.
func (l *NoteLoggingService) SetInput(ctx context.Context, text string) {
	l.inner.SetInput(ctx, text)
}

func (l *NoteLoggingService) Get(ctx context.Context, noteID string) (models.Note, bool) {
	return l.inner.Get(ctx, noteID)
}

func (l *NoteLoggingService) Snapshot(ctx context.Context) models.Snapshot {
	return l.inner.Snapshot(ctx)
}

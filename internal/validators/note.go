package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants accepted by NoteValidator.Validate.
const (
	// FieldID targets the note identifier.
	FieldID = "id"

	// FieldContent targets the note text. Content is valid when it contains
	// at least one non-whitespace character.
	FieldContent = "content"
)

// NoteValidator implements Validator for notes and raw note content.
//
// Supported inputs:
//   - models.Note / *models.Note
//   - string, treated as note content (only FieldContent applies)
type NoteValidator struct {
}

// NewNoteValidator constructs a NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty,
// every field of the input is checked.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(ctx, *value, fields...)
	case string:
		return v.validateContent(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrEmptyNoteID
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateContent(_ context.Context, content string, fields ...string) error {
	for _, f := range fields {
		if f != FieldContent {
			return ErrUnknownField
		}
	}

	if isBlank(content) {
		return ErrEmptyContent
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

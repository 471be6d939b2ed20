package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyContent = errors.New("empty content")
	ErrEmptyNoteID  = errors.New("note id is required")
)

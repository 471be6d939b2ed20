// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModeKind distinguishes the two states of the note screen.
type ModeKind int

const (
	// Composing means the input buffer holds the text of a new note.
	Composing ModeKind = iota
	// Editing means the input buffer holds replacement text for an existing note.
	Editing
)

// String returns a short lowercase label, used in logs.
func (k ModeKind) String() string {
	switch k {
	case Composing:
		return "composing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Mode is the tagged variant Composing | Editing(noteID).
//
// The zero value is Composing. An Editing mode always carries the ID of a
// note that exists in the collection.
type Mode struct {
	kind   ModeKind
	noteID string
}

// ComposingMode returns the Composing variant.
func ComposingMode() Mode {
	return Mode{kind: Composing}
}

// EditingMode returns the Editing variant targeting noteID.
func EditingMode(noteID string) Mode {
	return Mode{kind: Editing, noteID: noteID}
}

// Kind reports which variant m is.
func (m Mode) Kind() ModeKind {
	return m.kind
}

// IsEditing reports whether m is the Editing variant.
func (m Mode) IsEditing() bool {
	return m.kind == Editing
}

// EditingID returns the edit target and true for the Editing variant,
// or "" and false for Composing.
func (m Mode) EditingID() (string, bool) {
	if m.kind != Editing {
		return "", false
	}
	return m.noteID, true
}

// Targets reports whether m is Editing(noteID).
func (m Mode) Targets(noteID string) bool {
	return m.kind == Editing && m.noteID == noteID
}

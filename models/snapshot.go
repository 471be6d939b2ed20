// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the read-only view of the note screen state handed to the
// rendering layer after every mutation.
//
// Notes is a copy; mutating it does not affect the manager.
type Snapshot struct {
	Notes []Note
	Input string
	Mode  Mode
}

// Len returns the number of notes in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Notes)
}

// IndexOf returns the position of the note with the given ID, or -1.
func (s Snapshot) IndexOf(noteID string) int {
	for i, n := range s.Notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single user-authored text record.
type Note struct {
	// ID is assigned once at creation and stays stable for the note's lifetime.
	// IDs are never reused within a session.
	ID string

	// Content is the note text exactly as typed. It is never blank: blank
	// input is rejected before a note is created or updated.
	Content string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

const msgEmptyNote = "Catatan tidak boleh kosong!"

// humanizeCommitError turns a commit failure into the text of the blocking
// alert.
func humanizeCommitError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrValidation) {
		return msgEmptyNote
	}

	return err.Error()
}

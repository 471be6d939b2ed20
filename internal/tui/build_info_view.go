// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

func renderBuildInfoWindow(title string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Nama aplikasi: ")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("Versi: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Tanggal: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit)

	return renderPage("INFORMASI APLIKASI", b.String(), "esc: kembali")
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	emptyListMessage = "Belum ada catatan. Tambahkan sekarang!"
	rowActions       = "Edit  Hapus"
	defaultRowWidth  = 60
)

func (m noteScreenModel) View() string {
	switch m.overlay {
	case overlayError:
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	case overlayConfirmDelete:
		note, _ := m.notes.Get(m.ctx, m.pendingDeleteID)
		return appStyle.Render(confirmModel{message: fitText(note.Content, 40)}.View())
	case overlayBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.settings.Title, m.buildInfo))
	}

	return appStyle.Render(renderPage(titleStyle.Render(m.settings.Title), m.viewBody(), m.hotKeys()))
}

func (m noteScreenModel) viewBody() string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", buttonStyle.Render(m.actionLabel())))
	b.WriteString("\n\n")

	if len(m.snapshot.Notes) == 0 {
		b.WriteString(emptyStyle.Render(emptyListMessage))
		b.WriteString("\n")
	} else {
		for i, note := range m.snapshot.Notes {
			b.WriteString(m.viewRow(i, note.ID, note.Content))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

func (m noteScreenModel) viewRow(i int, noteID, content string) string {
	cursor := "  "
	if m.focus == focusList && i == m.idx {
		cursor = "> "
	}

	textWidth := m.rowWidth() - runewidth.StringWidth(cursor) - runewidth.StringWidth(rowActions) - 2
	text := fitText(content, textWidth)
	if pad := textWidth - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	row := cursor + text + "  " + actionStyle.Render("Edit") + "  " + deleteStyle.Render("Hapus")
	switch {
	case m.snapshot.Mode.Targets(noteID):
		return editingStyle.Render(row)
	case m.focus == focusList && i == m.idx:
		return selectedStyle.Render(row)
	default:
		return row
	}
}

func (m noteScreenModel) rowWidth() int {
	// appStyle pads two cells on both sides
	if m.width > 4 && m.width-4 < defaultRowWidth {
		return m.width - 4
	}
	return defaultRowWidth
}

// actionLabel mirrors the commit button: "[+]" adds, "[✓]" saves an edit.
func (m noteScreenModel) actionLabel() string {
	if m.snapshot.Mode.IsEditing() {
		return "[✓]"
	}
	return "[+]"
}

func (m noteScreenModel) hotKeys() string {
	if m.focus == focusList {
		return "↑/↓ pilih  e edit  d hapus  c salin  v info  tab input  q keluar"
	}
	if m.snapshot.Mode.IsEditing() {
		return "enter simpan  esc batal  tab daftar"
	}
	return "enter tambah  tab daftar"
}

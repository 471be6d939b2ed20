package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayError
	overlayConfirmDelete
	overlayBuildInfo
)

// noteScreenModel is the single note screen. It forwards every user event to
// the NoteService and redraws from a fresh snapshot afterwards.
type noteScreenModel struct {
	ctx       context.Context
	notes     service.NoteService
	settings  Settings
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	snapshot models.Snapshot
	input    textinput.Model
	focus    focusArea
	idx      int
	width    int

	overlay         overlayKind
	errMsg          string
	pendingDeleteID string
	status          string
}

func newNoteScreenModel(ctx context.Context, notes service.NoteService, settings Settings, buildInfo models.AppBuildInfo, copyText func(string) error) noteScreenModel {
	input := textinput.New()
	input.Placeholder = settings.Placeholder
	input.Width = settings.InputWidth
	input.Prompt = ""
	input.Focus()

	m := noteScreenModel{
		ctx:       ctx,
		notes:     notes,
		settings:  settings,
		buildInfo: buildInfo,
		copyText:  copyText,
		input:     input,
		focus:     focusInput,
	}
	m.refresh()
	return m
}

func (m noteScreenModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m noteScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			return m, tea.Quit
		}
		switch m.overlay {
		case overlayError:
			return m.updateErrorOverlay(msg)
		case overlayConfirmDelete:
			return m.updateConfirmDelete(msg)
		case overlayBuildInfo:
			return m.updateBuildInfo(msg)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	if m.overlay == overlayNone && m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateErrorOverlay keeps the alert modal until it is dismissed; every
// other key is swallowed.
func (m noteScreenModel) updateErrorOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.commit) || key.Matches(msg, keys.esc) {
		m.overlay = overlayNone
		m.errMsg = ""
	}
	return m, nil
}

func (m noteScreenModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		noteID := m.pendingDeleteID
		m.overlay = overlayNone
		m.pendingDeleteID = ""
		m.remove(noteID)
	case key.Matches(msg, keys.no):
		m.overlay = overlayNone
		m.pendingDeleteID = ""
	}
	return m, nil
}

func (m noteScreenModel) updateBuildInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
		m.overlay = overlayNone
	}
	return m, nil
}

func (m noteScreenModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.commit):
		m.commit()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.setFocus(focusList)
		return m, nil
	case key.Matches(msg, keys.esc):
		if m.snapshot.Mode.IsEditing() {
			m.notes.CancelEdit(m.ctx)
			m.status = "Edit dibatalkan"
			m.refresh()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.notes.SetInput(m.ctx, after)
		m.refresh()
	}
	return m, cmd
}

func (m noteScreenModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.esc):
		m.setFocus(focusInput)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.snapshot.Notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.commit):
		m.commit()
	case key.Matches(msg, keys.edit):
		note, ok := m.current()
		if !ok {
			m.status = "Tidak ada catatan"
			return m, nil
		}
		if m.notes.BeginEdit(m.ctx, note.ID) {
			m.refresh()
			m.input.CursorEnd()
			m.setFocus(focusInput)
		}
	case key.Matches(msg, keys.delete):
		note, ok := m.current()
		if !ok {
			m.status = "Tidak ada catatan"
			return m, nil
		}
		if !m.settings.ConfirmDelete {
			m.remove(note.ID)
			return m, nil
		}
		m.pendingDeleteID = note.ID
		m.overlay = overlayConfirmDelete
	case key.Matches(msg, keys.copy):
		m.copyCurrent()
	case key.Matches(msg, keys.info):
		m.overlay = overlayBuildInfo
	}
	return m, nil
}

func (m *noteScreenModel) commit() {
	editing := m.snapshot.Mode.IsEditing()

	note, err := m.notes.Commit(m.ctx)
	if err != nil {
		m.errMsg = humanizeCommitError(err)
		m.overlay = overlayError
		return
	}

	m.refresh()
	m.setFocus(focusInput)
	if i := m.snapshot.IndexOf(note.ID); i >= 0 {
		m.idx = i
	}
	if editing {
		m.status = "Catatan diperbarui"
		return
	}
	m.status = "Catatan ditambahkan"
}

func (m *noteScreenModel) remove(noteID string) {
	if m.notes.Remove(m.ctx, noteID) {
		m.status = "Catatan dihapus"
	}
	m.refresh()
}

func (m *noteScreenModel) copyCurrent() {
	note, ok := m.current()
	if !ok {
		m.status = "Tidak ada catatan"
		return
	}
	if err := m.copyText(note.Content); err != nil {
		logger.FromContext(m.ctx).Warn().Err(err).Msg("clipboard write failed")
		m.status = fmt.Sprintf("Gagal menyalin: %v", err)
		return
	}
	m.status = "Disalin"
}

// refresh pulls a new snapshot and brings the cursor and the input widget
// in line with it.
func (m *noteScreenModel) refresh() {
	m.snapshot = m.notes.Snapshot(m.ctx)

	if m.idx >= len(m.snapshot.Notes) {
		m.idx = len(m.snapshot.Notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	if m.input.Value() != m.snapshot.Input {
		m.input.SetValue(m.snapshot.Input)
	}
}

func (m *noteScreenModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m noteScreenModel) current() (models.Note, bool) {
	if len(m.snapshot.Notes) == 0 || m.idx < 0 || m.idx >= len(m.snapshot.Notes) {
		return models.Note{}, false
	}
	return m.snapshot.Notes[m.idx], true
}

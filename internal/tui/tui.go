// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the note screen in the terminal with bubbletea.
//
// The screen owns no note state: every keystroke is forwarded to
// service.NoteService and the view is redrawn from its snapshot.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Settings are the presentation options of the note screen.
type Settings struct {
	Title         string
	Placeholder   string
	InputWidth    int
	AltScreen     bool
	ConfirmDelete bool
}

// SettingsFromConfig maps the client config onto screen settings.
func SettingsFromConfig(cfg *config.ClientConfig) Settings {
	return Settings{
		Title:         cfg.App.Title,
		Placeholder:   cfg.UI.Placeholder,
		InputWidth:    cfg.UI.InputWidth,
		AltScreen:     cfg.UI.AltScreen,
		ConfirmDelete: cfg.UI.ConfirmDelete,
	}
}

var ErrNoNoteService = errors.New("note service is not configured")

type TUI struct {
	notes     service.NoteService
	settings  Settings
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, settings Settings, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.NoteService == nil {
		return nil, ErrNoNoteService
	}

	return &TUI{
		notes:     services.NoteService,
		settings:  settings,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the note screen and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	model := newNoteScreenModel(ctx, t.notes, t.settings, t.buildInfo, clipboard.WriteAll)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("note screen stopped: %w", ctxErr)
		}
		return fmt.Errorf("run note screen: %w", err)
	}

	t.logger.Info().Int("notes", t.notes.Snapshot(ctx).Len()).Msg("note screen closed")
	return nil
}

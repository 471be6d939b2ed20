package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

var ErrNoScreen = errors.New("screen is not configured")

type App struct {
	screen Screen
	logger *logger.Logger
}

func NewApp(screen Screen, log *logger.Logger) (*App, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}

	return &App{screen: screen, logger: log}, nil
}

// Build assembles the whole client from cfg: storage, id generator, note
// service and the terminal screen.
func Build(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ids, err := utils.NewIDGenerator(cfg.App.IDGenerator)
	if err != nil {
		return nil, fmt.Errorf("create id generator: %w", err)
	}

	storages := store.NewStorages(log)

	services, err := service.NewClientServices(storages, ids, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	ui, err := tui.New(services, tui.SettingsFromConfig(cfg), buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return NewApp(ui, log)
}

// Run blocks until the screen exits. Leaving through ctx cancellation (an
// interrupt signal) is a normal shutdown, not an error.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.logger.Info().Msg("client started")

	err := a.screen.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
	default:
		return fmt.Errorf("screen: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

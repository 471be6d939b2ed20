package config

import (
	"fmt"
)

// Defaults applied by [GetClientConfig] to fields no source has set.
const (
	DefaultTitle       = "Catatan Saya"
	DefaultPlaceholder = "Tulis catatan Anda..."
	DefaultInputWidth  = 40
	DefaultIDGenerator = "uuid"
	DefaultLogPath     = "logs"
	DefaultLogLevel    = "debug"
)

// ClientApp holds client application settings.
type ClientApp struct {
	// Title is the header of the note screen.
	Title string
	// IDGenerator names the note ID strategy ("uuid" or "ulid").
	IDGenerator string
}

// ClientUI holds note screen settings.
type ClientUI struct {
	Placeholder   string
	InputWidth    int
	AltScreen     bool
	ConfirmDelete bool
}

// ClientLog holds logging settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	App ClientApp
	UI  ClientUI
	Log ClientLog
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Title:       orDefault(cfg.App.Title, DefaultTitle),
			IDGenerator: orDefault(cfg.App.IDGenerator, DefaultIDGenerator),
		},
		UI: ClientUI{
			Placeholder:   orDefault(cfg.UI.Placeholder, DefaultPlaceholder),
			InputWidth:    orDefault(cfg.UI.InputWidth, DefaultInputWidth),
			AltScreen:     !cfg.UI.Inline,
			ConfirmDelete: !cfg.UI.SkipDeleteConfirm,
		},
		Log: ClientLog{
			Path:  orDefault(cfg.Log.Path, DefaultLogPath),
			Level: orDefault(cfg.Log.Level, DefaultLogLevel),
		},
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

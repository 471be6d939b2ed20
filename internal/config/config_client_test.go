package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, &ClientConfig{
		App: ClientApp{Title: DefaultTitle, IDGenerator: DefaultIDGenerator},
		UI: ClientUI{
			Placeholder:   DefaultPlaceholder,
			InputWidth:    DefaultInputWidth,
			AltScreen:     true,
			ConfirmDelete: true,
		},
		Log: ClientLog{Path: DefaultLogPath, Level: DefaultLogLevel},
	}, cfg)
	assert.NoError(t, cfg.validate())
}

func TestNewClientConfig_Overrides(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App: App{Title: "T", IDGenerator: "ulid"},
		UI:  UI{Placeholder: "P", InputWidth: 10, Inline: true, SkipDeleteConfirm: true},
		Log: Log{Path: "/x.log", Level: "info"},
	})

	assert.Equal(t, "T", cfg.App.Title)
	assert.Equal(t, "ulid", cfg.App.IDGenerator)
	assert.Equal(t, "P", cfg.UI.Placeholder)
	assert.Equal(t, 10, cfg.UI.InputWidth)
	assert.False(t, cfg.UI.AltScreen)
	assert.False(t, cfg.UI.ConfirmDelete)
	assert.Equal(t, "/x.log", cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(&StructuredConfig{}) }

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "uppercase level", mutate: func(c *ClientConfig) { c.Log.Level = "INFO" }},
		{name: "blank title", mutate: func(c *ClientConfig) { c.App.Title = "  " }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown generator", mutate: func(c *ClientConfig) { c.App.IDGenerator = "seq" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero width", mutate: func(c *ClientConfig) { c.UI.InputWidth = 0 }, wantErr: ErrInvalidUIConfigs},
		{name: "huge width", mutate: func(c *ClientConfig) { c.UI.InputWidth = 10_000 }, wantErr: ErrInvalidUIConfigs},
		{name: "unknown level", mutate: func(c *ClientConfig) { c.Log.Level = "verbose" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromFlags(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-title", "Flag title", "-id-generator", "ulid", "-inline"})
	require.NoError(t, err)

	assert.Equal(t, "Flag title", cfg.App.Title)
	assert.Equal(t, "ulid", cfg.App.IDGenerator)
	assert.False(t, cfg.UI.AltScreen)
	assert.True(t, cfg.UI.ConfirmDelete)
}

func TestGetClientConfig_InvalidGenerator(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig([]string{"-id-generator", "snowflake"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-nope"})
	require.Error(t, err)
	assert.Nil(t, cfg)
}

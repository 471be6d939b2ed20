// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/afero"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional config file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: screen title and the ID
	// generation strategy for new notes.
	App App `envPrefix:"APP_"`

	// UI holds presentation settings of the note screen.
	UI UI `envPrefix:"UI_"`

	// Log holds the log file location and verbosity.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Title is the header shown above the note list.
	// Env: APP_TITLE
	Title string `env:"TITLE"`

	// IDGenerator selects how note IDs are generated: "uuid" (UUIDv7) or
	// "ulid".
	// Env: APP_ID_GENERATOR
	IDGenerator string `env:"ID_GENERATOR"`
}

// UI holds settings of the terminal note screen.
type UI struct {
	// Placeholder is shown in the empty input field.
	// Env: UI_PLACEHOLDER
	Placeholder string `env:"PLACEHOLDER"`

	// InputWidth is the width of the input field in cells.
	// Env: UI_INPUT_WIDTH
	InputWidth int `env:"INPUT_WIDTH"`

	// Inline renders the screen in the normal terminal buffer instead of the
	// alternate screen.
	// Env: UI_INLINE
	Inline bool `env:"INLINE"`

	// SkipDeleteConfirm deletes notes immediately without the y/n prompt.
	// Env: UI_SKIP_DELETE_CONFIRM
	SkipDeleteConfirm bool `env:"SKIP_DELETE_CONFIRM"`
}

// Log holds logging settings.
type Log struct {
	// Path is the log file. Relative paths are resolved next to the
	// executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(afero.NewOsFs()).
		withEnv().
		withFlags(args).
		withFile().
		build()
}

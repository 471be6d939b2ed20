// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

const maxInputWidth = 500

var (
	allowedIDGenerators = []string{"uuid", "ulid"}
	allowedLogLevels    = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
)

// validate checks the merged [StructuredConfig] before defaults are applied.
// Only values that are set are checked; zero values are filled in later.
func (cfg *StructuredConfig) validate() error {
	if cfg.UI.InputWidth < 0 || cfg.UI.InputWidth > maxInputWidth {
		return fmt.Errorf("%w: input width %d", ErrInvalidUIConfigs, cfg.UI.InputWidth)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidAppConfigs)
	}

	if !slices.Contains(allowedIDGenerators, cfg.App.IDGenerator) {
		return fmt.Errorf("%w: id generator %q", ErrInvalidAppConfigs, cfg.App.IDGenerator)
	}

	if cfg.UI.InputWidth <= 0 || cfg.UI.InputWidth > maxInputWidth {
		return fmt.Errorf("%w: input width %d", ErrInvalidUIConfigs, cfg.UI.InputWidth)
	}

	if !slices.Contains(allowedLogLevels, strings.ToLower(cfg.Log.Level)) {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}

package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown id generator).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidUIConfigs indicates invalid screen settings
	// (for example, a negative input width).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFormat is returned for config files whose
	// extension is neither .json nor .yaml/.yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)

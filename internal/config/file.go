package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// keys are used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Title       string `json:"title" yaml:"title"`
		IDGenerator string `json:"id_generator" yaml:"id_generator"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	UI struct {
		Placeholder       string `json:"placeholder" yaml:"placeholder"`
		InputWidth        int    `json:"input_width" yaml:"input_width"`
		Inline            bool   `json:"inline" yaml:"inline"`
		SkipDeleteConfirm bool   `json:"skip_delete_confirm" yaml:"skip_delete_confirm"`
	} `json:"ui,omitempty" yaml:"ui,omitempty"`

	Log struct {
		Path  string `json:"path" yaml:"path"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseFile(fs afero.Fs, path string) (*StructuredConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}

	return &StructuredConfig{
		App: App{
			Title:       fileCfg.App.Title,
			IDGenerator: fileCfg.App.IDGenerator,
		},
		UI: UI{
			Placeholder:       fileCfg.UI.Placeholder,
			InputWidth:        fileCfg.UI.InputWidth,
			Inline:            fileCfg.UI.Inline,
			SkipDeleteConfirm: fileCfg.UI.SkipDeleteConfirm,
		},
		Log: Log{
			Path:  fileCfg.Log.Path,
			Level: fileCfg.Log.Level,
		},
	}, nil
}

package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-c/-config     config file path (JSON or YAML)
//	-title         screen title
//	-id-generator  note id generator: uuid or ulid
//	-placeholder   input placeholder
//	-width         input width in cells
//	-inline        render without the alternate screen
//	-no-confirm    delete notes without confirmation
//	-log-path      log file path
//	-log-level     log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		configPath        string
		title             string
		idGenerator       string
		placeholder       string
		inputWidth        int
		inline            bool
		skipDeleteConfirm bool
		logPath           string
		logLevel          string
	)

	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&title, "title", "", "Screen title")
	fs.StringVar(&idGenerator, "id-generator", "", "Note id generator: uuid or ulid")
	fs.StringVar(&placeholder, "placeholder", "", "Input placeholder")
	fs.IntVar(&inputWidth, "width", 0, "Input width in cells")
	fs.BoolVar(&inline, "inline", false, "Render without the alternate screen")
	fs.BoolVar(&skipDeleteConfirm, "no-confirm", false, "Delete notes without confirmation")
	fs.StringVar(&logPath, "log-path", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Title:       title,
			IDGenerator: idGenerator,
		},
		UI: UI{
			Placeholder:       placeholder,
			InputWidth:        inputWidth,
			Inline:            inline,
			SkipDeleteConfirm: skipDeleteConfirm,
		},
		Log: Log{
			Path:  logPath,
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}

package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPath  string // one call expression per line
	ProfilePath string // optional .hcl file or directory

	LogFormat    string
	LogLevel     string
	ReportFormat string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}

	switch cfg.ReportFormat {
	case "":
		cfg.ReportFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid report format %q: must be 'text' or 'json'", cfg.ReportFormat)
	}

	return &cfg, nil
}

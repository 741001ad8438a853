package app

import (
	"github.com/vk/geotransform/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // JSON or HCL document

	LogFormat string
	LogLevel  string
	// PrintConfig dumps the loaded configuration instead of transforming.
	PrintConfig bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, config.ErrMissingArgument
	}
	return &cfg, nil
}

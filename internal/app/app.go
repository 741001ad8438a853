package app

import (
	"io"
	"log/slog"

	"github.com/vk/geotransform/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	model  *config.Model
}

// NewApp is the constructor for the main application. Log lines and the
// configuration dump are written to outW; output files go wherever the
// configuration document says.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}

// Model returns the loaded configuration, or nil before Run has loaded it.
// This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

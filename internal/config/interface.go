package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration document at path and populates every
	// section of the model.
	Load(ctx context.Context, path string) (*Model, error)
}

// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for populating it from a
// configuration document and the error taxonomy shared by every loader.
//
// The `config.Model` is the single source of truth for the driver in the
// `app` package. Concrete loaders, such as the HCL/JSON one, are provided in
// separate packages.
package config

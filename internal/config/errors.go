package config

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrMissingArgument is returned when no configuration path was supplied.
var ErrMissingArgument = errors.New("not found command line arguments")

// NotFoundError reports a directory, file or pattern that does not resolve
// to anything on disk.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// Unwrap lets callers match the error with errors.Is(err, fs.ErrNotExist).
func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// MissingKeyError reports a required configuration key that is absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("not in key : %s", e.Key)
}

// DuplicateKeyError reports a section or block given more than once.
type DuplicateKeyError struct {
	Key   string
	Count int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key : %s given %d times", e.Key, e.Count)
}

// LengthMismatchError reports a batch whose longitude and latitude arrays
// differ in length.
type LengthMismatchError struct {
	Index int
	Lng   int
	Lat   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("coordinates[%d]: lng has %d values, lat has %d", e.Index, e.Lng, e.Lat)
}

package tags

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAFile is returned when a path does not name an existing regular file.
	ErrNotAFile = errors.New("not a file")

	// ErrSaveFailed is returned when changed tags could not be persisted.
	ErrSaveFailed = errors.New("failed to save file")

	// ErrMalformedInput is returned when input cannot be parsed into snapshots.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupportedFormat is returned when no backend handles the file type.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// LibraryError relays a failure reported by the metadata library.
type LibraryError struct {
	Op   string
	Path string
	Err  error
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LibraryError) Unwrap() error { return e.Err }

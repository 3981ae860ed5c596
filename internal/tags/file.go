package tags

import (
	"fmt"
	"os"
)

// Backend reads and writes the basic tags of files through a metadata library.
type Backend interface {
	// Read returns every basic tag the file has a value for.
	Read(path string) (Snapshot, error)
	// Write stores the changes and persists the file.
	Write(path string, changes []Change) error
}

// Backend names accepted by NewBackend.
const (
	BackendTaglib = "taglib"
	BackendGo     = "go"
)

// NewBackend returns the backend called name.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", BackendTaglib:
		return TaglibBackend{}, nil
	case BackendGo:
		return NewGoBackend(), nil
	}
	return nil, fmt.Errorf("unknown tag backend %q (want %q or %q)", name, BackendTaglib, BackendGo)
}

// File is one audio file opened for tag access.
// A File is used by a single goroutine.
type File struct {
	path    string
	backend Backend
}

// Open opens path with the TagLib backend.
func Open(path string) (*File, error) {
	return OpenWith(path, TaglibBackend{})
}

// OpenWith opens path with the given backend.
// It fails with ErrNotAFile when path is not an existing regular file and
// with a *LibraryError when the backend cannot read the file's tags.
func OpenWith(path string, backend Backend) (*File, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAFile)
	}
	if _, err := backend.Read(path); err != nil {
		return nil, &LibraryError{Op: "open", Path: path, Err: err}
	}
	return &File{path: path, backend: backend}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// Tags returns the file's current tags.
func (f *File) Tags() (Snapshot, error) {
	s, err := f.backend.Read(f.path)
	if err != nil {
		return Snapshot{}, &LibraryError{Op: "read", Path: f.path, Err: err}
	}
	return s, nil
}

// Apply writes the fields of desired that differ from the file's current
// tags. The file is only saved when at least one field changed; it reports
// whether anything was written.
func (f *File) Apply(desired Snapshot) (bool, error) {
	if err := desired.Validate(); err != nil {
		return false, err
	}
	current, err := f.Tags()
	if err != nil {
		return false, err
	}
	changes := Diff(current, desired)
	if len(changes) == 0 {
		return false, nil
	}
	if err := f.backend.Write(f.path, changes); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrSaveFailed, f.path, err)
	}
	return true, nil
}

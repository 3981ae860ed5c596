package tags

import "fmt"

// GoBackend reads and writes tags with pure-Go libraries, picking one per
// container: id3v2 for MP3, go-flac for FLAC, dhowden/tag and go-mp4tag for
// MP4. Ogg files go through the fallback backend.
type GoBackend struct {
	fallback Backend
}

// NewGoBackend returns a GoBackend that falls back to TagLib for Ogg files.
func NewGoBackend() GoBackend {
	return GoBackend{fallback: TaglibBackend{}}
}

func (b GoBackend) Read(path string) (Snapshot, error) {
	backend, err := b.forPath(path)
	if err != nil {
		return Snapshot{}, err
	}
	return backend.Read(path)
}

func (b GoBackend) Write(path string, changes []Change) error {
	backend, err := b.forPath(path)
	if err != nil {
		return err
	}
	return backend.Write(path, changes)
}

func (b GoBackend) forPath(path string) (Backend, error) {
	ext := extOf(path)
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	switch ext {
	case ExtMP3:
		return mp3Backend{}, nil
	case ExtFLAC:
		return flacBackend{}, nil
	case ExtM4A, ExtMP4:
		return m4aBackend{}, nil
	}

	// Ogg containers
	if b.fallback == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return b.fallback, nil
}

package tags

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.senan.xyz/taglib"
)

// AudioInfo contains audio stream properties (not tags).
type AudioInfo struct {
	Format     string // MP3, FLAC, OPUS, M4A...
	Duration   time.Duration
	Bitrate    uint // kbit/s
	SampleRate uint
	Channels   uint
	Size       int64
}

// ReadAudioInfo reads stream properties through TagLib.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAFile)
	}

	props, err := taglib.ReadProperties(path)
	if err != nil {
		return nil, &LibraryError{Op: "read properties", Path: path, Err: err}
	}

	return &AudioInfo{
		Format:     strings.ToUpper(strings.TrimPrefix(extOf(path), ".")),
		Duration:   props.Length,
		Bitrate:    props.Bitrate,
		SampleRate: props.SampleRate,
		Channels:   props.Channels,
		Size:       info.Size(),
	}, nil
}

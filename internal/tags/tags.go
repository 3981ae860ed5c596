// Package tags reads and edits the basic tags of audio files.
// It exposes a partial Snapshot of the seven common fields, a pure Diff
// between two snapshots, and a File accessor that writes only what changed.
package tags

import (
	"strconv"
	"strings"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch extOf(path) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		return true
	}
	return false
}

func extOf(path string) string {
	ext := strings.ToLower(path)
	idx := strings.LastIndex(ext, ".")
	if idx < 0 || strings.ContainsRune(ext[idx:], '/') {
		return ""
	}
	return ext[idx:]
}

// properties wraps a property map (KEY -> values) with helper methods.
// TagLib and Vorbis comments share this shape.
type properties map[string][]string

// get returns the first non-empty value for any of the given keys.
func (p properties) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := p[key]; ok && len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return ""
}

// parseNumberPair parses a track/disc number that may be "N" or "N/M" format.
func (p properties) parseNumberPair(key string) (num, total int) {
	return parseNumberPair(p.get(key))
}

func parseNumberPair(s string) (num, total int) {
	if s == "" {
		return 0, 0
	}
	if idx := strings.Index(s, "/"); idx >= 0 {
		num, _ = strconv.Atoi(strings.TrimSpace(s[:idx]))
		total, _ = strconv.Atoi(strings.TrimSpace(s[idx+1:]))
		return num, total
	}
	num, _ = strconv.Atoi(strings.TrimSpace(s))
	return num, 0
}

// yearOf derives the year from a date that may be YYYY-MM-DD or just YYYY.
// Returns 0 if the date is empty or cannot be parsed.
func yearOf(date string) int {
	if len(date) > 4 {
		date = date[:4]
	}
	y, _ := strconv.Atoi(date)
	return y
}

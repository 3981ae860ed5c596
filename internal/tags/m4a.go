package tags

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/Sorrow446/go-mp4tag"
	"github.com/dhowden/tag"
)

// m4aBackend reads MP4 atoms with dhowden/tag and writes them with go-mp4tag.
type m4aBackend struct{}

func (m4aBackend) Read(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Snapshot{}, err
	}

	var s Snapshot
	for name, v := range map[string]string{
		"title":   m.Title(),
		"artist":  m.Artist(),
		"album":   m.Album(),
		"comment": m.Comment(),
		"genre":   m.Genre(),
	} {
		if v == "" {
			continue
		}
		if field, ok := FieldByName(name); ok {
			_ = field.Set(&s, v)
		}
	}
	if y := m.Year(); y > 0 {
		s.Year = &y
	}
	if n, _ := m.Track(); n > 0 {
		s.Track = &n
	}
	return s, nil
}

func (b m4aBackend) Write(path string, changes []Change) error {
	var track, total int16
	for _, c := range changes {
		if c.Clears() {
			return fmt.Errorf("%w: clearing %s in MP4 files", ErrUnsupportedFormat, c.Name)
		}
		if c.Name != "track" {
			continue
		}
		n, err := strconv.Atoi(c.Value)
		if err != nil {
			return fmt.Errorf("%w: track %q", ErrMalformedInput, c.Value)
		}
		if track, err = toInt16(n); err != nil {
			return fmt.Errorf("track: %w", err)
		}
		// Totals that do not fit are dropped
		total, _ = toInt16(b.trackTotal(path))
	}

	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{}
	for _, c := range changes {
		switch c.Name {
		case "title":
			tags.Title = c.Value
		case "artist":
			tags.Artist = c.Value
		case "album":
			tags.Album = c.Value
		case "comment":
			tags.Comment = c.Value
		case "genre":
			tags.CustomGenre = c.Value
		case "year":
			tags.Date = c.Value
		case "track":
			tags.TrackNumber = track
			tags.TrackTotal = total
		}
	}

	if err := mp4.Write(tags, nil); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// trackTotal returns the stored track total, so a new track number keeps it.
func (m4aBackend) trackTotal(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	m, err := tag.ReadFrom(f)
	if err != nil {
		return 0
	}
	_, total := m.Track()
	return total
}

// toInt16 converts n to the 16-bit integer MP4 number atoms hold.
func toInt16(n int) (int16, error) {
	if n < math.MinInt16 || n > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %d does not fit in an MP4 number atom", ErrMalformedInput, n)
	}
	return int16(n), nil
}

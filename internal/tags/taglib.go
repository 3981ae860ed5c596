package tags

import (
	"strconv"

	"go.senan.xyz/taglib"
)

// propertyKeys maps each field to its TagLib property name.
// Vorbis comments use the same names.
var propertyKeys = map[string]string{
	"title":   taglib.Title,
	"artist":  taglib.Artist,
	"album":   taglib.Album,
	"comment": taglib.Comment,
	"genre":   taglib.Genre,
	"year":    taglib.Date,
	"track":   taglib.TrackNumber,
}

// TaglibBackend reads and writes tags with TagLib. It handles every
// format TagLib supports and is the default backend.
type TaglibBackend struct{}

func (TaglibBackend) Read(path string) (Snapshot, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return Snapshot{}, err
	}
	return properties(raw).snapshot(), nil
}

func (TaglibBackend) Write(path string, changes []Change) error {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return err
	}
	current := properties(raw)

	// Only changed keys are passed; without taglib.Clear the others are kept.
	update := make(map[string][]string, len(changes))
	for _, key := range current.apply(changes) {
		update[key] = current[key]
	}
	return taglib.WriteTags(path, update, 0)
}

// snapshot extracts the basic tags from a property map.
func (p properties) snapshot() Snapshot {
	var s Snapshot
	for _, f := range Fields {
		key := propertyKeys[f.Name]
		keys := append([]string{key}, fallbackKeys[f.Name]...)
		switch f.Name {
		case "year":
			if y := yearOf(p.get(keys...)); y > 0 {
				s.Year = &y
			}
		case "track":
			if n, _ := p.parseNumberPair(key); n > 0 {
				s.Track = &n
			}
		default:
			if v := p.get(keys...); v != "" {
				_ = f.Set(&s, v)
			}
		}
	}
	return s
}

// fallbackKeys are alternate property names some taggers use.
var fallbackKeys = map[string][]string{
	"comment": {"DESCRIPTION"},
	"year":    {"YEAR"},
}

// apply stores changes into p and returns the keys it touched.
// A cleared field maps to an empty value list, along with any fallback key
// that would otherwise be read back. A new track number keeps the track
// total already stored as "N/M".
func (p properties) apply(changes []Change) []string {
	keys := make([]string, 0, len(changes))
	for _, c := range changes {
		key, ok := propertyKeys[c.Name]
		if !ok {
			continue
		}
		keys = append(keys, key)
		if c.Clears() {
			p[key] = []string{}
			for _, alt := range fallbackKeys[c.Name] {
				if _, ok := p[alt]; ok {
					p[alt] = []string{}
					keys = append(keys, alt)
				}
			}
			continue
		}
		value := c.Value
		if c.Name == "track" {
			if _, total := p.parseNumberPair(key); total > 0 {
				value += "/" + strconv.Itoa(total)
			}
		}
		p[key] = []string{value}
	}
	return keys
}

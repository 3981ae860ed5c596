package tags

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot holds some or all of the seven basic tags of a file.
//
// A nil field is absent. Read from a file, absent means the file has no
// value for it. Used as a desired state, absent means "leave unchanged".
// A pointer to "" or 0 is present and distinct from nil.
type Snapshot struct {
	Title   *string `json:"title,omitempty"`
	Artist  *string `json:"artist,omitempty"`
	Album   *string `json:"album,omitempty"`
	Comment *string `json:"comment,omitempty"`
	Genre   *string `json:"genre,omitempty"`
	Year    *int    `json:"year,omitempty"`
	Track   *int    `json:"track,omitempty"`
}

// Field describes one tag of a Snapshot. Values cross the Field boundary in
// their canonical text form, so every field is compared and written the
// same way.
type Field struct {
	Name    string
	Numeric bool

	text func(*Snapshot) **string
	num  func(*Snapshot) **int
}

// Fields lists every tag in display order.
var Fields = []Field{
	textField("title", func(s *Snapshot) **string { return &s.Title }),
	textField("artist", func(s *Snapshot) **string { return &s.Artist }),
	textField("album", func(s *Snapshot) **string { return &s.Album }),
	textField("comment", func(s *Snapshot) **string { return &s.Comment }),
	textField("genre", func(s *Snapshot) **string { return &s.Genre }),
	numField("year", func(s *Snapshot) **int { return &s.Year }),
	numField("track", func(s *Snapshot) **int { return &s.Track }),
}

func textField(name string, p func(*Snapshot) **string) Field {
	return Field{Name: name, text: p}
}

func numField(name string, p func(*Snapshot) **int) Field {
	return Field{Name: name, Numeric: true, num: p}
}

// FieldByName returns the field called name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Get returns the canonical text of the field in s and whether it is present.
func (f Field) Get(s *Snapshot) (string, bool) {
	if f.Numeric {
		v := *f.num(s)
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	}
	v := *f.text(s)
	if v == nil {
		return "", false
	}
	return *v, true
}

// Set makes the field present in s with the given value.
// Numeric fields accept non-negative integers only.
func (f Field) Set(s *Snapshot, value string) error {
	if !f.Numeric {
		*f.text(s) = &value
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer, got %q", ErrMalformedInput, f.Name, value)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrMalformedInput, f.Name, n)
	}
	*f.num(s) = &n
	return nil
}

// IsEmpty reports whether no field is present.
func (s Snapshot) IsEmpty() bool {
	for _, f := range Fields {
		if _, ok := f.Get(&s); ok {
			return false
		}
	}
	return true
}

// Validate checks that numeric fields are not negative.
func (s Snapshot) Validate() error {
	for _, f := range Fields {
		if !f.Numeric {
			continue
		}
		if v := *f.num(&s); v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrMalformedInput, f.Name, *v)
		}
	}
	return nil
}

// String renders one "field:\tvalue" line per present field.
func (s Snapshot) String() string {
	var b strings.Builder
	for _, f := range Fields {
		if v, ok := f.Get(&s); ok {
			fmt.Fprintf(&b, "%s:\t%s\n", f.Name, v)
		}
	}
	return b.String()
}

// Text returns a pointer to v, for building snapshots.
func Text(v string) *string { return &v }

// Number returns a pointer to v, for building snapshots.
func Number(v int) *int { return &v }

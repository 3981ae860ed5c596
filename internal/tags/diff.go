package tags

// Change is one field to write: the field name and its new canonical value.
type Change struct {
	Name  string
	Value string
}

// Clears reports whether the change removes the tag from the file.
// Empty text and a zero year or track are stored as "no value".
func (c Change) Clears() bool {
	if c.Value == "" {
		return true
	}
	f, ok := FieldByName(c.Name)
	return ok && f.Numeric && c.Value == "0"
}

// Diff returns the fields of desired that must be written over current.
// A field is included iff it is present in desired and its value differs
// from current, an absent current value counting as different.
func Diff(current, desired Snapshot) []Change {
	var changes []Change
	for _, f := range Fields {
		want, ok := f.Get(&desired)
		if !ok {
			continue
		}
		if have, ok := f.Get(&current); ok && have == want {
			continue
		}
		changes = append(changes, Change{Name: f.Name, Value: want})
	}
	return changes
}

// With returns a copy of s with the changes applied.
func (s Snapshot) With(changes []Change) (Snapshot, error) {
	out := s
	for _, c := range changes {
		f, ok := FieldByName(c.Name)
		if !ok {
			continue
		}
		if err := f.Set(&out, c.Value); err != nil {
			return s, err
		}
	}
	return out, nil
}

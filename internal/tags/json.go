package tags

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseSnapshot decodes one snapshot. Unknown keys, trailing data and
// negative numbers are rejected with ErrMalformedInput.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := decodeStrict(data, &s); err != nil {
		return Snapshot{}, err
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// ParseBatch decodes a JSON object mapping file names to snapshots.
func ParseBatch(data []byte) (map[string]Snapshot, error) {
	var batch map[string]Snapshot
	if err := decodeStrict(data, &batch); err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: expected an object of file names", ErrMalformedInput)
	}
	for name, s := range batch {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return batch, nil
}

// MarshalIndent encodes v as pretty JSON followed by a newline.
func MarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedInput)
	}
	return nil
}

//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpReadTags,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpReadTags,
			err:      errors.New("not a file"),
			expected: "Failed to read tags: not a file",
		},
		{
			name:     "update operation",
			op:       OpUpdateTags,
			err:      errors.New("failed to save file"),
			expected: "Failed to update tags: failed to save file",
		},
		{
			name:     "read input operation",
			op:       OpReadInput,
			err:      errors.New("read /dev/stdin: input/output error"),
			expected: "Failed to read input: read /dev/stdin: input/output error",
		},
		{
			name:     "parse input operation",
			op:       OpParseInput,
			err:      errors.New("malformed input: unexpected EOF"),
			expected: "Failed to parse input: malformed input: unexpected EOF",
		},
		{
			name:     "draft operation",
			op:       OpWriteDraft,
			err:      errors.New("json: unsupported value"),
			expected: "Failed to prepare editor document: json: unsupported value",
		},
		{
			name:     "audio properties operation",
			op:       OpReadInfo,
			err:      errors.New("invalid file"),
			expected: "Failed to read audio properties: invalid file",
		},
		{
			name:     "editor operation",
			op:       OpEditTags,
			err:      errors.New("editor exited with status 1"),
			expected: "Failed to edit tags: editor exited with status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpReadTags,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpReadTags,
			context:  "song.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to read tags 'song.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpReadTags,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to read tags: permission denied",
		},
		{
			name:     "config without explicit path",
			op:       OpLoadConfig,
			context:  "",
			err:      errors.New("unknown tag backend \"ffmpeg\""),
			expected: "Failed to load configuration: unknown tag backend \"ffmpeg\"",
		},
		{
			name:     "config with path context",
			op:       OpLoadConfig,
			context:  "/home/user/.config/tagedit/config.toml",
			err:      errors.New("toml: line 2: expected '='"),
			expected: "Failed to load configuration '/home/user/.config/tagedit/config.toml': toml: line 2: expected '='",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpReadTags, OpUpdateTags, OpReadInfo,
		OpReadInput, OpParseInput,
		OpEditTags, OpWriteDraft,
		OpLoadConfig,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}

// Package editor round-trips text through an external editor process.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when no editor is configured anywhere.
const DefaultEditor = "vi"

// ErrIO reports a failure creating, writing or reading the temp file.
var ErrIO = errors.New("editor temp file")

// ErrNoEditor is returned for an empty editor command.
var ErrNoEditor = errors.New("no editor command")

// ExitError is returned when the editor does not exit successfully.
// Code is -1 when the process was killed by a signal.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor exited with status %d", e.Code)
}

// EditContent writes content to a temp file, opens it in command and returns
// the file's content once the editor exits. command is split on whitespace,
// the temp file path is passed as the last argument. The temp file is always
// removed.
func EditContent(command, content string) (string, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return "", ErrNoEditor
	}

	f, err := os.CreateTemp("", "tags-*.json")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	path := f.Name()
	defer os.Remove(path) //nolint:errcheck // Best effort cleanup

	_, err = f.WriteString(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...) //nolint:gosec // editor is chosen by the user
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{Code: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("run %s: %w", argv[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return string(data), nil
}

// ResolveEditor picks the editor command: $VISUAL, then $EDITOR, then
// configured, then DefaultEditor.
func ResolveEditor(getenv func(string) string, configured string) string {
	for _, candidate := range []string{getenv("VISUAL"), getenv("EDITOR"), configured} {
		if c := strings.TrimSpace(candidate); c != "" {
			return c
		}
	}
	return DefaultEditor
}

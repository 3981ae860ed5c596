package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot get home directory")
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/bin/vim",
			expected: "/usr/bin/vim",
		},
		{
			name:     "bare command unchanged",
			input:    "nano",
			expected: "nano",
		},
		{
			name:     "bare tilde is home",
			input:    "~",
			expected: home,
		},
		{
			name:     "other user's home unchanged",
			input:    "~user/bin/edit",
			expected: "~user/bin/edit",
		},
		{
			name:     "tilde inside path unchanged",
			input:    "/opt/~/edit",
			expected: "/opt/~/edit",
		},
		{
			name:     "tilde expands to home",
			input:    "~/bin/edit",
			expected: filepath.Join(home, "bin/edit"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths("")
	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if filepath.Base(paths[0]) != "config.toml" {
		t.Errorf("paths[0] = %q, want config.toml", paths[0])
	}
	if paths[1] != "tagedit.toml" {
		t.Errorf("paths[1] = %q, want tagedit.toml", paths[1])
	}

	paths = getConfigPaths("/tmp/custom.toml")
	if got := paths[len(paths)-1]; got != "/tmp/custom.toml" {
		t.Errorf("explicit config should come last, got %q", got)
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Editor != "" {
		t.Errorf("Editor = %q, want empty", cfg.Editor)
	}
	if cfg.Backend != "taglib" {
		t.Errorf("Backend = %q, want taglib", cfg.Backend)
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "first.toml", "editor = \"nano\"\nbackend = \"go\"\n")
	second := writeConfig(t, dir, "second.toml", "editor = \"  vim -n \"\n")

	cfg, err := load([]string{first, second})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Editor != "vim -n" {
		t.Errorf("Editor = %q, want %q", cfg.Editor, "vim -n")
	}
	if cfg.Backend != "go" {
		t.Errorf("Backend = %q, want go", cfg.Backend)
	}
}

func TestLoad_BackendIsCaseInsensitive(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "backend = \"TagLib\"\n")

	cfg, err := load([]string{path})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Backend != "taglib" {
		t.Errorf("Backend = %q, want taglib", cfg.Backend)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown backend",
			content: "backend = \"ffmpeg\"\n",
		},
		{
			name:    "invalid toml",
			content: "editor = \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)
			if _, err := load([]string{path}); err == nil {
				t.Error("load() should fail")
			}
		})
	}
}

func TestLoad_ExplicitMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() with a missing explicit config should fail")
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tagedit/internal/tags"
)

const appName = "tagedit"

type Config struct {
	Editor  string `koanf:"editor"`  // fallback when $VISUAL and $EDITOR are unset
	Backend string `koanf:"backend"` // "taglib" or "go"
}

// Load reads the config files in order of priority (last wins).
// explicit, when set, must exist.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, err
		}
	}
	return load(getConfigPaths(explicit))
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Backend: tags.BackendTaglib,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Editor = expandPath(strings.TrimSpace(cfg.Editor))
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured backend exists.
func (c *Config) Validate() error {
	_, err := tags.NewBackend(c.Backend)
	return err
}

func getConfigPaths(explicit string) []string {
	paths := []string{
		// 1. $XDG_CONFIG_HOME/tagedit/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./tagedit.toml (pwd)
		appName + ".toml",
	}

	// 3. --config (highest priority)
	if explicit != "" {
		paths = append(paths, explicit)
	}
	return paths
}

// expandPath expands a leading "~" or "~/". Other users' homes ("~user")
// are left alone.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

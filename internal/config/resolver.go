package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file searched for by ResolvePath.
const FileName = "tgmcp.yaml"

// DefaultPath returns the per-user configuration path:
// $XDG_CONFIG_HOME/tgmcp/tgmcp.yaml, or ~/.config/tgmcp/tgmcp.yaml.
func DefaultPath() (string, error) {
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "tgmcp", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tgmcp", FileName), nil
}

// ResolvePath searches for a config file in standard locations.
// Search order: $XDG_CONFIG_HOME/tgmcp/tgmcp.yaml → ./tgmcp.yaml
// It returns ErrNotFound when no candidate exists.
func ResolvePath() (string, error) {
	var candidates []string
	if path, err := DefaultPath(); err == nil {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, FileName)

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (searched: %v)", ErrNotFound, candidates)
}

// LoadOrDefault loads path when set, otherwise the first file found by
// ResolvePath, otherwise Default.
func LoadOrDefault(path string) (*Config, string, error) {
	if path == "" {
		resolved, err := ResolvePath()
		if err != nil {
			return Default(), "", nil
		}
		path = resolved
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

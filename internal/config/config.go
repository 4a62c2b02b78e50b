// Package config handles loading and validation of the voyant tool
// configuration.
//
// This is the CLI's own config (where the settings record lives, how output
// is colored), read from ~/.voyant/config.toml. It is distinct from the
// detection settings record the CLI edits; that record is owned by the
// settings package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// Valid enum values for configuration fields.
var ValidColorModes = []string{"auto", "always", "never"}

// Config holds the voyant tool configuration.
type Config struct {
	SettingsPath string `toml:"settings_path"` // override for the settings record location
	Color        string `toml:"color"`         // "auto", "always", or "never"
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		SettingsPath: "",
		Color:        "auto",
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".voyant", "config.toml"), nil
}

// Load reads config from ~/.voyant/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.SettingsPath, "settings_path"); err != nil {
		return Default(), err
	}

	if cfg.SettingsPath != "" {
		expanded, err := expandPath(cfg.SettingsPath)
		if err != nil {
			return Default(), fmt.Errorf("expand settings_path: %w", err)
		}
		cfg.SettingsPath = expanded
	}

	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if !slices.Contains(ValidColorModes, cfg.Color) {
		return Default(), fmt.Errorf("invalid color %q: must be \"auto\", \"always\", or \"never\"", cfg.Color)
	}

	return cfg, nil
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns an error if the path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

const defaultConfig = `# voyant configuration
# Config location: ~/.voyant/config.toml

# Where the detection settings record is stored.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# settings_path = "~/.voyant/settings.json"

# Colored output: "auto" (default), "always", or "never"
# color = "auto"
`

// DefaultContent returns the default config file content.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at ~/.voyant/config.toml.
// If force is true, an existing file is overwritten.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the settings document name under the voyant directory.
const FileName = "settings.json"

// Store reads and writes the settings record at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given settings file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file path backing this store.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns the path to ~/.voyant/settings.json, creating the
// ~/.voyant directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".voyant")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create ~/.voyant directory: %w", err)
	}

	return filepath.Join(dir, FileName), nil
}

// Load reads the settings record. A missing file is not an error: the
// record is created from Defaults(), mirroring get-or-create semantics.
// Nothing touches disk until Save.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	return &rec, nil
}

// Save writes the record atomically: marshal to a temp file next to the
// target, then rename over it.
func (s *Store) Save(rec *Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

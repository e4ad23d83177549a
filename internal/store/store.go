// Package store persists the settings document, including the per-queue
// issue snapshots, as a single JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/jiraffe/jiraffe/pkg/models"
)

// Store reads and writes the settings document at a fixed path. Documents
// are always handled whole: Load returns the full document and Save replaces
// it atomically, so a crashed write never leaves a half-updated file behind.
type Store struct {
	path string
}

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings document. A missing file is not an error; it
// yields the empty default document, the "not configured yet" state.
func (s *Store) Load() (models.Settings, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.Settings{}, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// Save replaces the settings document atomically.
func (s *Store) Save(settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

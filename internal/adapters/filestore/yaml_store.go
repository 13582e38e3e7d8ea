package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/ports"
)

// YAMLStore is a string-valued store persisted as a flat YAML mapping.
// It backs preferences when the SQLite store cannot be opened.
type YAMLStore struct {
	mu   sync.Mutex
	path string
}

// Verify interface compliance at compile time
var _ ports.StringStore = (*YAMLStore)(nil)

// NewYAMLStore creates a store at path; the file is created on first write
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Path returns the backing file path
func (s *YAMLStore) Path() string {
	return s.path
}

// GetString implements StringStore.GetString
func (s *YAMLStore) GetString(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// SetString implements StringStore.SetString
func (s *YAMLStore) SetString(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete implements StringStore.Delete
func (s *YAMLStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

func (s *YAMLStore) load() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// save writes to a temp file and renames it over the target
func (s *YAMLStore) save(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %w", domain.ErrStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", domain.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write preferences: %w", domain.ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write preferences: %w", domain.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %w", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}

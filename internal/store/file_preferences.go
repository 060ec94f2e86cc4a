package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// filePreferenceStore keeps preferences in a JSON file. Every Put and Remove
// rewrites the file through a temporary file and a rename, so a crash never
// leaves a half-written master password record behind.
type filePreferenceStore struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]string
}

// NewFilePreferenceStore loads or creates the preference file at path. An
// empty path or ":memory:" keeps preferences in memory only.
func NewFilePreferenceStore(path string) (PreferenceStore, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &filePreferenceStore{
		path:     path,
		inMemory: path == ":memory:",
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *filePreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *filePreferenceStore) Put(_ context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.values)
	maps.Copy(next, values)
	if err := s.persist(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

func (s *filePreferenceStore) Remove(_ context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.values)
	for _, k := range keys {
		delete(next, k)
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

func (s *filePreferenceStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read preference file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var values map[string]string
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode preference file: %w", err)
	}
	if values != nil {
		s.values = values
	}
	return nil
}

func (s *filePreferenceStore) persist(values map[string]string) error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create preference dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary preference file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write preference file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod preference file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close preference file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace preference file: %w", err)
	}
	return nil
}

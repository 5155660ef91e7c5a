// Package cache implements the rendered-description cache.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/tiago/internal/core/domain"
	"go.trai.ch/tiago/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptionStore = (*Store)(nil)

// Store implements ports.DescriptionStore using a flat JSON file mapping
// invocation keys to rendered documents. xacro expansion of a full robot
// model is slow enough to be worth skipping when the invocation is
// unchanged.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]string
}

// NewStore creates a DescriptionStore backed by the file at the given path.
// A missing file starts an empty cache.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read description cache")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal description cache")
	}

	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal description cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for description cache")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write description cache")
	}

	return nil
}

// Get retrieves the cached document for the invocation.
func (s *Store) Get(inv domain.Invocation) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.cache[Key(inv)]
	return doc, ok
}

// Put stores the document rendered by the invocation and persists the cache.
func (s *Store) Put(inv domain.Invocation, document string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[Key(inv)] = document
	return s.save()
}

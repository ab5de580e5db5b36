// Package memory provides an in-memory key-value store. It substitutes for
// the SQLite store in tests and anywhere persistence is not wanted.
package memory

import (
	"sync"

	"github.com/shringar-studio/shringar/pkg/types"
)

// Store keeps slots in a map.
type Store struct {
	mu    sync.RWMutex
	slots map[string]string
}

var _ types.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{slots: make(map[string]string)}
}

// Get retrieves the value stored under key. ok is false when the key has
// never been written.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

// Set writes the full value for key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

// Package storage defines the key/value port palette drafts are persisted
// through, with an in-memory and a directory-backed implementation.
package storage

import (
	"sync"
)

// Store is a string key/value store. Load reports whether the key exists;
// removing a missing key is not an error.
type Store interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Remove(key string) error
}

// MemoryStore keeps entries in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Load implements Store.
func (s *MemoryStore) Load(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

// Save implements Store.
func (s *MemoryStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

// Remove implements Store.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Package store persists the active theme selection.
//
// Storage is a small string key-value store, the equivalent of the browser's
// local storage. ThemeStore layers the preset/custom precedence rules on top.
package store

import (
	"errors"
	"maps"
	"sync"
)

// Storage is a string key-value store. Reads and writes are synchronous.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// ErrStorageClosed is returned when writing to a closed storage.
var ErrStorageClosed = errors.New("storage is closed")

// MemoryStorage is an in-process Storage.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates a MemoryStorage seeded with items (may be nil).
func NewMemoryStorage(items map[string]string) *MemoryStorage {
	m := &MemoryStorage{items: make(map[string]string, len(items))}
	maps.Copy(m.items, items)
	return m
}

// Get implements Storage.
func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// Set implements Storage.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// Remove implements Storage.
func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Items returns a copy of everything stored.
func (m *MemoryStorage) Items() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.items)
}

package flowsession

import "sync"

// Storage abstracts the tab-scoped key/value store backing the flow record.
// It mirrors web session storage: best-effort string storage that may refuse
// writes (quota, disabled storage). Implementations must not panic.
type Storage interface {
	// Get returns the raw value under key and whether it was present.
	Get(key string) (string, bool)

	// Set stores the raw value under key. It may fail when the backing
	// store is unavailable or full.
	Set(key, value string) error

	// Remove deletes the value under key. Removing a missing key is a no-op.
	Remove(key string)
}

// MemoryStorage is a concurrency-safe in-memory Storage implementation.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value under key.
func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes the value under key.
func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

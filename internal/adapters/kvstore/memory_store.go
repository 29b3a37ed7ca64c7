package kvstore

import (
	"context"
	"strings"
	"sync"

	"github.com/agendafacil/booking-platform/internal/domain/providers"
)

// MemoryStore is an in-process KVStore. It backs local development and is
// the fixture every adapter and service test runs against. Entries are
// read and written whole under a single lock, so a scan never observes a
// partial record.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get returns the value stored under key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, providers.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = stored
	return nil
}

// Delete removes the value under key
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// GetByPrefix returns every value whose key starts with prefix
func (s *MemoryStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([][]byte, 0)
	for key, value := range s.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		out := make([]byte, len(value))
		copy(out, value)
		values = append(values, out)
	}
	return values, nil
}

package cache

import (
	"context"
	"sync"
	"time"
)

// Entry is a stored payload and the moment it was written.
type Entry struct {
	Payload  []byte    `json:"payload"`
	StoredAt time.Time `json:"stored_at"`
}

// Store is the key/value backend of a ResultCache. Implementations must be
// safe for concurrent use; last writer wins.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps entries in process memory. Expired entries are removed
// lazily by the ResultCache on access.
type MemoryStore struct {
	entries sync.Map
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	v, ok := s.entries.Load(key)
	if !ok {
		return Entry{}, false, nil
	}
	return v.(Entry), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry, _ time.Duration) error {
	s.entries.Store(key, entry)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.entries.Delete(key)
	return nil
}

// Len counts stored entries, expired or not.
func (s *MemoryStore) Len() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

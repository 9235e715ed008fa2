package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process BlobStore used in development and tests when no
// bucket is configured. URLs are synthetic and not actually servable.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailWith, when set, makes every Put fail with this error. Tests use it
	// to exercise the storage-unavailable path.
	FailWith error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[string][]byte{}}
}

// Put stores the blob in memory and returns a synthetic URL.
func (s *MemoryStore) Put(_ context.Context, data []byte, _ string) (string, error) {
	if s.FailWith != nil {
		return "", s.FailWith
	}

	key := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf

	return "memory://artworks/" + key, nil
}

// Len reports the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

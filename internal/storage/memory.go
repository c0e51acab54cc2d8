package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"drone-site-server/internal/domain"
)

// MemoryStore is an in-memory blob store used by tests and local
// development. It enforces the same content-type policy a configured
// bucket would, so a disallowed upload fails like a real storage error.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	allowed []string
	objects map[string][]byte
	types   map[string]string
}

// NewMemoryStore creates a memory store. allowedTypes restricts accepted
// content types ("image/png" exact, or "image/*" prefix); empty means
// accept everything.
func NewMemoryStore(baseURL string, allowedTypes ...string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		allowed: allowedTypes,
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

// Put stores the object bytes under key.
func (s *MemoryStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if !s.typeAllowed(contentType) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, contentType)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

// ResolveURL returns the public address for key. It is deterministic:
// resolving the same key twice yields the same URL.
func (s *MemoryStore) ResolveURL(key string) string {
	return s.baseURL + "/" + key
}

// Get returns the stored bytes for key.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Count returns the number of stored objects.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *MemoryStore) typeAllowed(contentType string) bool {
	if len(s.allowed) == 0 {
		return true
	}
	for _, a := range s.allowed {
		if a == contentType {
			return true
		}
		if prefix, ok := strings.CutSuffix(a, "/*"); ok && strings.HasPrefix(contentType, prefix+"/") {
			return true
		}
	}
	return false
}

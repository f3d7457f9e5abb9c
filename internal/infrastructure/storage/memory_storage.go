package storage

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"consig_origination/internal/usecase/interfaces"
)

var ErrObjectNotFound = errors.New("object not found")

type memoryObject struct {
	contentType string
	content     []byte
}

// MemoryStorage keeps objects in process. Used with the memory store backend.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	baseURL string
}

var _ interfaces.IBlobStorage = (*MemoryStorage)(nil)

func NewMemoryStorage(baseURL string) *MemoryStorage {
	if baseURL == "" {
		baseURL = "memory://documents"
	}
	return &MemoryStorage{objects: map[string]memoryObject{}, baseURL: baseURL}
}

func (s *MemoryStorage) Upload(_ context.Context, key, contentType string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memoryObject{contentType: contentType, content: append([]byte(nil), content...)}
	return nil
}

func (s *MemoryStorage) PresignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", ErrObjectNotFound
	}
	q := url.Values{}
	q.Set("expires", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	return s.baseURL + "/" + key + "?" + q.Encode(), nil
}

// Get returns a stored object.
func (s *MemoryStorage) Get(key string) (contentType string, content []byte, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[key]
	return o.contentType, o.content, ok
}

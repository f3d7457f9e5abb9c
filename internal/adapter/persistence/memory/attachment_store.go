package memory

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"sync"
)

type AttachmentStore struct {
	mu    sync.RWMutex
	items map[string][]entities.Attachment
}

var _ interfaces.IAttachmentRepository = (*AttachmentStore)(nil)

func NewAttachmentStore() *AttachmentStore {
	return &AttachmentStore{items: map[string][]entities.Attachment{}}
}

func (s *AttachmentStore) Create(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.ContractToken] = append(s.items[a.ContractToken], a)
	return a, nil
}

func (s *AttachmentStore) ListByContract(_ context.Context, token string) ([]entities.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Attachment{}, s.items[token]...), nil
}

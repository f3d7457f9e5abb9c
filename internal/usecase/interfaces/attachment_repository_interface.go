package interfaces

import (
	"consig_origination/internal/domain/entities"
	"context"
	"time"
)

//go:generate mockgen -source=attachment_repository_interface.go -destination=mocks/attachment_repository_interface_mock.go -package=mock_interfaces

// IAttachmentRepository abstracts persistence of contract document metadata.
type IAttachmentRepository interface {
	Create(ctx context.Context, a entities.Attachment) (entities.Attachment, error)
	ListByContract(ctx context.Context, token string) ([]entities.Attachment, error)
}

// IBlobStorage stores the document bytes (S3).
type IBlobStorage interface {
	Upload(ctx context.Context, key, contentType string, content []byte) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

package usecase

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=document_usecase.go -destination=../adapter/http/handlers/mocks/document_usecase_mock.go -package=mocks

const documentURLTTL = 15 * time.Minute

type AttachDocumentCommand struct {
	Token       string
	Kind        entities.AttachmentKind
	FileName    string
	ContentType string
	Content     []byte
	Actor       string
}

// IDocumentUseCase stores and lists the documents attached to a contract.
type IDocumentUseCase interface {
	AttachDocument(ctx context.Context, cmd AttachDocumentCommand) (entities.Attachment, error)
	ListDocuments(ctx context.Context, token string) ([]entities.Attachment, error)
}

type DocumentUseCase struct {
	contracts   *ContractUseCase
	attachments interfaces.IAttachmentRepository
	storage     interfaces.IBlobStorage
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(contracts *ContractUseCase, attachments interfaces.IAttachmentRepository, storage interfaces.IBlobStorage) *DocumentUseCase {
	return &DocumentUseCase{contracts: contracts, attachments: attachments, storage: storage}
}

func (u *DocumentUseCase) AttachDocument(ctx context.Context, cmd AttachDocumentCommand) (entities.Attachment, error) {
	if !cmd.Kind.Valid() {
		return entities.Attachment{}, ErrInvalidAttachment.WithReason("tipo de anexo %q inválido", cmd.Kind)
	}
	if len(cmd.Content) == 0 {
		return entities.Attachment{}, ErrInvalidAttachment.WithReason("arquivo vazio")
	}
	name := path.Base(strings.TrimSpace(cmd.FileName))
	if name == "" || name == "." || name == "/" {
		return entities.Attachment{}, ErrInvalidAttachment.WithReason("nome do arquivo é obrigatório")
	}
	c, err := u.contracts.GetByToken(ctx, cmd.Token)
	if err != nil {
		return entities.Attachment{}, err
	}
	if c.Status.IsTerminal() {
		return entities.Attachment{}, ErrIllegalTransition.WithReason("contrato em %s não aceita anexos", c.Status)
	}
	contentType := strings.TrimSpace(cmd.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("contratos/%s/%s/%s-%s", c.Token, cmd.Kind, u.contracts.newID(), name)
	if err := u.storage.Upload(ctx, key, contentType, cmd.Content); err != nil {
		u.contracts.log.Warn("[document][usecase] upload failed", zap.String("token", c.Token), zap.Error(err))
		return entities.Attachment{}, classifyGatewayErr("storage", err)
	}

	actor := strings.TrimSpace(cmd.Actor)
	if actor == "" {
		actor = SystemActor
	}
	a, err := u.attachments.Create(ctx, entities.Attachment{
		ContractToken: c.Token,
		ObjectKey:     key,
		Kind:          cmd.Kind,
		FileName:      name,
		ContentType:   contentType,
		UploadedBy:    actor,
		UploadedAt:    u.contracts.now(),
	})
	if err != nil {
		return entities.Attachment{}, err
	}
	u.contracts.log.Info("[document][usecase] document attached",
		zap.String("token", c.Token), zap.String("kind", string(cmd.Kind)), zap.String("key", key))
	return u.withURL(ctx, a), nil
}

func (u *DocumentUseCase) ListDocuments(ctx context.Context, token string) ([]entities.Attachment, error) {
	c, err := u.contracts.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	list, err := u.attachments.ListByContract(ctx, c.Token)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = u.withURL(ctx, list[i])
	}
	return list, nil
}

// withURL fills a short lived download URL. A presign failure leaves URL empty.
func (u *DocumentUseCase) withURL(ctx context.Context, a entities.Attachment) entities.Attachment {
	url, err := u.storage.PresignedURL(ctx, a.ObjectKey, documentURLTTL)
	if err != nil {
		u.contracts.log.Warn("[document][usecase] presign failed", zap.String("key", a.ObjectKey), zap.Error(err))
		return a
	}
	a.URL = url
	return a
}

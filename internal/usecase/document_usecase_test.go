package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"consig_origination/internal/adapter/persistence/memory"
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/domain/failure"
	"consig_origination/internal/infrastructure/storage"
	mock_interfaces "consig_origination/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_AttachDocument(t *testing.T) {
	ctx := context.Background()
	cmd := func(token string) AttachDocumentCommand {
		return AttachDocumentCommand{
			Token: token, Kind: entities.AttachmentCCB, FileName: "../ccb.pdf",
			ContentType: "application/pdf", Content: []byte("%PDF-1.4"), Actor: "op",
		}
	}

	t.Run("invalid kind", func(t *testing.T) {
		f := newFixture(t, nil)
		uc := NewDocumentUseCase(f.uc, memory.NewAttachmentStore(), storage.NewMemoryStorage(""))
		in := cmd("tok")
		in.Kind = "foto"
		_, err := uc.AttachDocument(ctx, in)
		if !errors.Is(err, ErrInvalidAttachment) {
			t.Fatalf("expected ErrInvalidAttachment, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		f := newFixture(t, nil)
		uc := NewDocumentUseCase(f.uc, memory.NewAttachmentStore(), storage.NewMemoryStorage(""))
		in := cmd("tok")
		in.Content = nil
		_, err := uc.AttachDocument(ctx, in)
		if !errors.Is(err, ErrInvalidAttachment) {
			t.Fatalf("expected ErrInvalidAttachment, got %v", err)
		}
	})

	t.Run("terminal contract", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusFinalizado)
		uc := NewDocumentUseCase(f.uc, memory.NewAttachmentStore(), storage.NewMemoryStorage(""))
		_, err := uc.AttachDocument(ctx, cmd(c.Token))
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		blobs := storage.NewMemoryStorage("")
		uc := NewDocumentUseCase(f.uc, memory.NewAttachmentStore(), blobs)

		a, err := uc.AttachDocument(ctx, cmd(c.Token))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.FileName != "ccb.pdf" || a.UploadedBy != "op" || a.ContentType != "application/pdf" {
			t.Fatalf("unexpected attachment: %+v", a)
		}
		if !strings.HasPrefix(a.ObjectKey, "contratos/"+c.Token+"/ccb/") || !strings.HasSuffix(a.ObjectKey, "-ccb.pdf") {
			t.Fatalf("unexpected key %s", a.ObjectKey)
		}
		if !strings.HasPrefix(a.URL, "memory://documents/"+a.ObjectKey) {
			t.Fatalf("unexpected url %s", a.URL)
		}
		if _, body, ok := blobs.Get(a.ObjectKey); !ok || string(body) != "%PDF-1.4" {
			t.Fatalf("object not stored")
		}

		list, err := uc.ListDocuments(ctx, c.Token)
		if err != nil || len(list) != 1 || list[0].URL == "" {
			t.Fatalf("unexpected list: %+v / %v", list, err)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		blobs := mock_interfaces.NewMockIBlobStorage(gomock.NewController(t))
		attachments := memory.NewAttachmentStore()
		uc := NewDocumentUseCase(f.uc, attachments, blobs)

		blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).Return(errors.New("s3: 503"))

		_, err := uc.AttachDocument(ctx, cmd(c.Token))
		if !errors.Is(err, failure.ErrTransientExternal) {
			t.Fatalf("expected transient error, got %v", err)
		}
		if list, _ := attachments.ListByContract(ctx, c.Token); len(list) != 0 {
			t.Fatalf("metadata must not be stored after a failed upload")
		}
	})
}

func TestDocumentUseCase_ListDocuments(t *testing.T) {
	f := newFixture(t, nil)
	uc := NewDocumentUseCase(f.uc, memory.NewAttachmentStore(), storage.NewMemoryStorage(""))
	_, err := uc.ListDocuments(context.Background(), "missing")
	if !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}

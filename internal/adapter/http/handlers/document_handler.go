package handlers

import (
	"io"
	"net/http"
	"strings"

	response "consig_origination/internal/adapter/http/dto/response"
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase"
	"consig_origination/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxDocumentSize bounds an uploaded document.
const MaxDocumentSize = 10 << 20

var errDocumentTooLarge = pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Document exceeds 10MB", http.StatusRequestEntityTooLarge)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
	log     *zap.Logger
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{usecase: uc, log: log}
}

// AttachDocument godoc
// @Summary Upload a contract document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param token path string true "Contract token"
// @Param kind formData string true "Document kind"
// @Param file formData file true "Document"
// @Success 201 {object} response.AttachmentResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /contracts/{token}/documents [post]
func (h *DocumentHandler) AttachDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeInvalidPayload(c)
		return
	}
	if fh.Size > MaxDocumentSize {
		c.JSON(errDocumentTooLarge.HTTPStatus, errDocumentTooLarge.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeInvalidPayload(c)
		return
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, MaxDocumentSize+1))
	if err != nil {
		writeInvalidPayload(c)
		return
	}
	if len(content) > MaxDocumentSize {
		c.JSON(errDocumentTooLarge.HTTPStatus, errDocumentTooLarge.ToHTTPError())
		return
	}

	attachment, err := h.usecase.AttachDocument(c.Request.Context(), usecase.AttachDocumentCommand{
		Token:       c.Param("token"),
		Kind:        entities.AttachmentKind(strings.ToLower(strings.TrimSpace(c.PostForm("kind")))),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
		Actor:       actorFrom(c),
	})
	if err != nil {
		writeError(c, h.log, "document", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAttachment(attachment))
}

// ListDocuments godoc
// @Summary List contract documents with download URLs
// @Tags documents
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {array} response.AttachmentResponse
// @Router /contracts/{token}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	list, err := h.usecase.ListDocuments(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, h.log, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttachments(list))
}

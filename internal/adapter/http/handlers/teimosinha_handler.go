package handlers

import (
	"net/http"

	response "consig_origination/internal/adapter/http/dto/response"
	"consig_origination/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TeimosinhaHandler struct {
	usecase usecase.ITeimosinhaUseCase
	log     *zap.Logger
}

func NewTeimosinhaHandler(uc usecase.ITeimosinhaUseCase, log *zap.Logger) *TeimosinhaHandler {
	return &TeimosinhaHandler{usecase: uc, log: log}
}

// ScheduleRetry godoc
// @Summary Start a new teimosinha series for a contract
// @Tags teimosinha
// @Produce json
// @Param token path string true "Contract token"
// @Success 201 {object} response.RetryAttemptResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /contracts/{token}/teimosinha [post]
func (h *TeimosinhaHandler) ScheduleRetry(c *gin.Context) {
	attempt, err := h.usecase.ScheduleRetry(c.Request.Context(), c.Param("token"), actorFrom(c))
	if err != nil {
		writeError(c, h.log, "teimosinha", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRetryAttempt(attempt))
}

// ListAttempts godoc
// @Summary Teimosinha attempts of a contract, newest first
// @Tags teimosinha
// @Produce json
// @Param token path string true "Contract token"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.RetryAttemptPageResponse
// @Router /contracts/{token}/teimosinha [get]
func (h *TeimosinhaHandler) ListAttempts(c *gin.Context) {
	page, perPage := pagination(c)
	list, total, err := h.usecase.ListAttempts(c.Request.Context(), c.Param("token"), page, perPage)
	if err != nil {
		writeError(c, h.log, "teimosinha", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRetryAttemptPage(list, page, perPage, total))
}

// ProcessDue godoc
// @Summary Process every due teimosinha attempt now
// @Tags teimosinha
// @Produce json
// @Success 200
// @Router /teimosinha/process [post]
func (h *TeimosinhaHandler) ProcessDue(c *gin.Context) {
	n, err := h.usecase.ProcessDue(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "teimosinha", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"processed": n})
}

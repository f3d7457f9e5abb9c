package handlers

import (
	"net/http"
	"strconv"
	"time"

	request "consig_origination/internal/adapter/http/dto/request"
	response "consig_origination/internal/adapter/http/dto/response"
	"consig_origination/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContractHandler exposes the contract lifecycle operations.
type ContractHandler struct {
	contracts usecase.IContractUseCase
	batches   usecase.IBatchUseCase
	log       *zap.Logger
}

func NewContractHandler(contracts usecase.IContractUseCase, batches usecase.IBatchUseCase, log *zap.Logger) *ContractHandler {
	return &ContractHandler{contracts: contracts, batches: batches, log: log}
}

// CreateContract godoc
// @Summary Type a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param X-Actor header string false "Operator"
// @Param payload body request.CreateContractRequest true "Contract"
// @Success 201 {object} response.ContractResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	contract, err := h.contracts.CreateContract(c.Request.Context(), payload.ToCommand(actorFrom(c)))
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	h.log.Info("[contract][handler] contract created", zap.String("token", contract.Token))
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// CreateBatch godoc
// @Summary Type every proposal of a portability request at once
// @Tags contracts
// @Accept json
// @Produce json
// @Param payload body request.CreateBatchRequest true "Proposals"
// @Success 201 {object} response.BatchResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /contracts/batch [post]
func (h *ContractHandler) CreateBatch(c *gin.Context) {
	var payload request.CreateBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	cmd, err := payload.ToCommand(actorFrom(c))
	if err != nil {
		writeInvalidPayload(c)
		return
	}

	result, err := h.batches.CreateBatch(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, "batch", err)
		return
	}
	h.log.Info("[batch][handler] batch created", zap.Int("contracts", len(result.Contracts)))
	c.JSON(http.StatusCreated, response.FromBatch(result))
}

// GetContract godoc
// @Summary Get a contract
// @Tags contracts
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {object} response.ContractResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /contracts/{token} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.contracts.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// ListByClient godoc
// @Summary List the contracts of a client
// @Tags contracts
// @Produce json
// @Param client_id path string true "Client id"
// @Success 200 {array} response.ContractResponse
// @Router /clients/{client_id}/contracts [get]
func (h *ContractHandler) ListByClient(c *gin.Context) {
	list, err := h.contracts.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(list))
}

// ListDetails godoc
// @Summary List the product details of a contract
// @Tags contracts
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {array} response.DetailResponse
// @Router /contracts/{token}/details [get]
func (h *ContractHandler) ListDetails(c *gin.Context) {
	list, err := h.contracts.ListDetails(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetails(list))
}

// ListStatusHistory godoc
// @Summary Status history of a contract, oldest first
// @Tags contracts
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {array} response.StatusHistoryResponse
// @Router /contracts/{token}/history [get]
func (h *ContractHandler) ListStatusHistory(c *gin.Context) {
	list, err := h.contracts.ListStatusHistory(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(list))
}

// BeginFormalization godoc
// @Summary Generate the formalization link
// @Tags formalization
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {object} response.FormalizationLinkResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /contracts/{token}/formalization [post]
func (h *ContractHandler) BeginFormalization(c *gin.Context) {
	link, err := h.contracts.BeginFormalization(c.Request.Context(), c.Param("token"), actorFrom(c))
	if err != nil {
		writeError(c, h.log, "formalization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFormalizationLink(link))
}

// SendFormalizationLink godoc
// @Summary Send the formalization link by SMS
// @Tags formalization
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {object} response.ContractResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /contracts/{token}/formalization/send [post]
func (h *ContractHandler) SendFormalizationLink(c *gin.Context) {
	contract, err := h.contracts.SendFormalizationLink(c.Request.Context(), c.Param("token"), actorFrom(c))
	if err != nil {
		writeError(c, h.log, "formalization", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// SubmitProposal godoc
// @Summary Submit the formalized contract to the bureau or the signature hub
// @Description Runs in the background and answers 202 unless sync=true.
// @Tags submission
// @Produce json
// @Param token path string true "Contract token"
// @Param sync query bool false "Wait for the partner answer"
// @Success 200 {object} response.ContractResponse
// @Success 202
// @Failure 409 {object} pkg.HTTPError
// @Router /contracts/{token}/submission [post]
func (h *ContractHandler) SubmitProposal(c *gin.Context) {
	token, actor := c.Param("token"), actorFrom(c)
	if sync, _ := strconv.ParseBool(c.Query("sync")); sync {
		contract, err := h.contracts.SubmitExternalProposal(c.Request.Context(), token, actor)
		if err != nil {
			writeError(c, h.log, "submission", err)
			return
		}
		c.JSON(http.StatusOK, response.FromContract(contract))
		return
	}
	if err := h.contracts.DispatchSubmission(c.Request.Context(), token, actor); err != nil {
		writeError(c, h.log, "submission", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"token": token, "status": "dispatched"})
}

// RecordBureauReturn godoc
// @Summary IN100 callback
// @Tags bureau
// @Accept json
// @Produce json
// @Param token path string true "Contract token"
// @Param payload body request.BureauReturnRequest true "Bureau answer"
// @Success 200 {object} response.ContractResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /contracts/{token}/bureau-returns [post]
func (h *ContractHandler) RecordBureauReturn(c *gin.Context) {
	var payload request.BureauReturnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	contract, err := h.contracts.RecordBureauReturn(c.Request.Context(), c.Param("token"), payload.ToResult(time.Now().UTC()))
	if err != nil {
		writeError(c, h.log, "bureau", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// RequestRecalculation godoc
// @Summary Ask the bureau for a new margin after a change in the proposal
// @Tags bureau
// @Produce json
// @Param token path string true "Contract token"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{token}/recalculation [post]
func (h *ContractHandler) RequestRecalculation(c *gin.Context) {
	contract, err := h.contracts.RequestRecalculation(c.Request.Context(), c.Param("token"), actorFrom(c))
	if err != nil {
		writeError(c, h.log, "bureau", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// CompleteEndorsement godoc
// @Summary Record the endorsement (averbação) outcome
// @Tags endorsement
// @Accept json
// @Produce json
// @Param token path string true "Contract token"
// @Param payload body request.EndorsementRequest true "Outcome"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{token}/endorsement [post]
func (h *ContractHandler) CompleteEndorsement(c *gin.Context) {
	var payload request.EndorsementRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approved == nil {
		writeInvalidPayload(c)
		return
	}
	contract, err := h.contracts.CompleteEndorsement(c.Request.Context(), c.Param("token"), actorFrom(c), *payload.Approved, payload.Reason)
	if err != nil {
		writeError(c, h.log, "endorsement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// Cancel godoc
// @Summary Cancel a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param token path string true "Contract token"
// @Param payload body request.CancelRequest false "Reason"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{token}/cancel [post]
func (h *ContractHandler) Cancel(c *gin.Context) {
	var payload request.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeInvalidPayload(c)
			return
		}
	}
	contract, err := h.contracts.Cancel(c.Request.Context(), c.Param("token"), actorFrom(c), payload.Reason)
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// Reject godoc
// @Summary Reject a contract with one of the rejection statuses
// @Tags contracts
// @Accept json
// @Produce json
// @Param token path string true "Contract token"
// @Param payload body request.RejectRequest true "Rejection"
// @Success 200 {object} response.ContractResponse
// @Router /contracts/{token}/reject [post]
func (h *ContractHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	contract, err := h.contracts.Reject(c.Request.Context(), c.Param("token"), actorFrom(c), payload.StatusName(), payload.Reason)
	if err != nil {
		writeError(c, h.log, "contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

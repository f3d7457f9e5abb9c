package request

import (
	"encoding/json"
	"strings"
	"time"

	"consig_origination/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BureauReturnRequest is the IN100 callback payload.
type BureauReturnRequest struct {
	ResponseID    string          `json:"response_id" binding:"required"`
	Sequence      int64           `json:"sequence" binding:"required,gt=0"`
	BenefitNumber string          `json:"numero_beneficio"`
	Status        string          `json:"status" binding:"required"`
	ReturnCode    string          `json:"codigo_retorno"`
	MarginValue   decimal.Decimal `json:"valor_margem"`
	LiquidValue   decimal.Decimal `json:"valor_liquido"`
	BenefitKind   string          `json:"especie"`
	RawPayload    json.RawMessage `json:"raw_payload"`
}

func (r BureauReturnRequest) ToResult(now time.Time) entities.BureauResult {
	return entities.BureauResult{
		ResponseID:    strings.TrimSpace(r.ResponseID),
		Sequence:      r.Sequence,
		BenefitNumber: strings.TrimSpace(r.BenefitNumber),
		Status:        entities.BureauStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		ReturnCode:    strings.TrimSpace(r.ReturnCode),
		MarginValue:   r.MarginValue,
		LiquidValue:   r.LiquidValue,
		BenefitKind:   strings.TrimSpace(r.BenefitKind),
		RawPayload:    r.RawPayload,
		ReceivedAt:    now,
	}
}

// EndorsementRequest is the averbação outcome. Approved is a pointer so a missing field
// is told apart from false.
type EndorsementRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reason   string `json:"reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type RejectRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

func (r RejectRequest) StatusName() entities.StatusName {
	return entities.StatusName(strings.ToUpper(strings.TrimSpace(r.Status)))
}

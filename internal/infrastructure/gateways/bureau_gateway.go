package gateways

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const bureauGatewayName = "bureau"

type bureauQueryRequest struct {
	BenefitNumber string `json:"numero_beneficio"`
}

type bureauQueryResponse struct {
	ID            string          `json:"id"`
	Sequence      int64           `json:"sequencia"`
	BenefitNumber string          `json:"numero_beneficio"`
	ReturnCode    string          `json:"codigo_retorno"`
	Blocked       bool            `json:"bloqueado_emprestimo"`
	Eligible      *bool           `json:"elegivel_emprestimo"`
	MarginValue   decimal.Decimal `json:"valor_margem"`
	LiquidValue   decimal.Decimal `json:"valor_liquido"`
	BenefitKind   string          `json:"especie"`
}

// BureauGateway queries the IN100 benefit bureau.
type BureauGateway struct {
	client   *resty.Client
	logger   *zap.Logger
	mockMode bool
}

var _ interfaces.IBureauGateway = (*BureauGateway)(nil)

func NewBureauGateway(cfg Config, mockMode bool, logger *zap.Logger) (*BureauGateway, error) {
	if mockMode {
		logger.Info("[bureau][gateway] mock mode enabled")
		return &BureauGateway{logger: logger, mockMode: true}, nil
	}
	if cfg.BaseURL == "" {
		return nil, ErrGatewayNotConfigured
	}
	client := newRestyClient(cfg).
		SetHeader("X-API-KEY", cfg.APIKey).
		SetError(&partnerError{})
	return &BureauGateway{client: client, logger: logger}, nil
}

func (g *BureauGateway) Query(ctx context.Context, benefitNumber string) (entities.BureauResult, error) {
	if g.mockMode {
		return mockBureauResult(benefitNumber), nil
	}

	var out bureauQueryResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(bureauQueryRequest{BenefitNumber: benefitNumber}).
		SetResult(&out).
		Post("/in100/consultas")
	if cerr := classify(bureauGatewayName, resp, err); cerr != nil {
		g.logger.Warn("[bureau][gateway] query failed",
			zap.String("benefit_number", benefitNumber),
			zap.Error(cerr),
		)
		return entities.BureauResult{}, cerr
	}
	if strings.TrimSpace(out.ID) == "" {
		return entities.BureauResult{}, failure.Transient(bureauGatewayName, errInvalidBody(resp))
	}

	result := out.toEntity(resp.Body())
	g.logger.Info("[bureau][gateway] query answered",
		zap.String("benefit_number", benefitNumber),
		zap.String("response_id", result.ResponseID),
		zap.String("status", string(result.Status)),
		zap.String("return_code", result.ReturnCode),
	)
	return result, nil
}

func (r bureauQueryResponse) toEntity(raw []byte) entities.BureauResult {
	status := entities.BureauStatusOK
	switch {
	case r.ReturnCode == entities.BureauCodeNoData:
		status = entities.BureauStatusDataNotAvailable
	case r.Blocked:
		status = entities.BureauStatusBlocked
	case r.Eligible != nil && !*r.Eligible:
		status = entities.BureauStatusIneligible
	case r.ReturnCode != "" && r.ReturnCode != "00":
		status = entities.BureauStatusIneligible
	}
	return entities.BureauResult{
		ResponseID:    r.ID,
		Sequence:      r.Sequence,
		BenefitNumber: r.BenefitNumber,
		Status:        status,
		ReturnCode:    r.ReturnCode,
		MarginValue:   r.MarginValue,
		LiquidValue:   r.LiquidValue,
		BenefitKind:   r.BenefitKind,
		RawPayload:    json.RawMessage(append([]byte(nil), raw...)),
		ReceivedAt:    time.Now().UTC(),
	}
}

func mockBureauResult(benefitNumber string) entities.BureauResult {
	now := time.Now().UTC()
	r := entities.BureauResult{
		ResponseID:    uuid.NewString(),
		Sequence:      now.UnixNano(),
		BenefitNumber: benefitNumber,
		Status:        entities.BureauStatusOK,
		ReturnCode:    "00",
		MarginValue:   decimal.NewFromInt(450),
		LiquidValue:   decimal.NewFromInt(3200),
		BenefitKind:   "41",
		ReceivedAt:    now,
	}
	r.RawPayload, _ = json.Marshal(map[string]any{"mock": true, "numero_beneficio": benefitNumber})
	return r
}

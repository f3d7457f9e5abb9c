package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const hubGatewayName = "signature hub"

type hubProposalResponse struct {
	DocumentKey string `json:"document_key"`
	Status      string `json:"status"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

// SignatureHubGateway registers portability and refinancing proposals on the hub.
// The contract token goes as the idempotency key so a resubmission returns the same
// document instead of a new one.
type SignatureHubGateway struct {
	client   *resty.Client
	logger   *zap.Logger
	mockMode bool
}

var _ interfaces.ISignatureHubGateway = (*SignatureHubGateway)(nil)

func NewSignatureHubGateway(cfg Config, mockMode bool, logger *zap.Logger) (*SignatureHubGateway, error) {
	if mockMode {
		logger.Info("[hub][gateway] mock mode enabled")
		return &SignatureHubGateway{logger: logger, mockMode: true}, nil
	}
	if cfg.BaseURL == "" {
		return nil, ErrGatewayNotConfigured
	}
	client := newRestyClient(cfg).
		SetAuthToken(cfg.APIKey).
		SetError(&partnerError{})
	return &SignatureHubGateway{client: client, logger: logger}, nil
}

func (g *SignatureHubGateway) SubmitProposal(ctx context.Context, p interfaces.ProposalSubmission) (interfaces.ProposalResult, error) {
	if g.mockMode {
		raw, _ := json.Marshal(map[string]any{"mock": true, "contract_token": p.ContractToken})
		g.logger.Info("[hub][gateway] mock proposal accepted", zap.String("token", p.ContractToken))
		return interfaces.ProposalResult{Accepted: true, DocumentKey: "mock-" + p.ContractToken, Raw: raw}, nil
	}

	var out hubProposalResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", p.ContractToken).
		SetBody(p).
		SetResult(&out).
		Post("/v1/proposals")

	if cerr := classify(hubGatewayName, resp, err); cerr != nil {
		var fe *failure.Error
		if errors.As(cerr, &fe) && errors.Is(fe, failure.ErrPermanentExternal) {
			g.logger.Info("[hub][gateway] proposal rejected",
				zap.String("token", p.ContractToken), zap.String("code", fe.Code), zap.String("reason", fe.Reason))
			return interfaces.ProposalResult{
				Accepted:        false,
				RejectionCode:   fe.Code,
				RejectionReason: fe.Reason,
				Raw:             rawBody(resp),
			}, nil
		}
		g.logger.Warn("[hub][gateway] submit failed", zap.String("token", p.ContractToken), zap.Error(cerr))
		return interfaces.ProposalResult{}, cerr
	}

	res := interfaces.ProposalResult{
		Accepted:    out.Status != "rejected",
		DocumentKey: out.DocumentKey,
		Raw:         rawBody(resp),
	}
	if !res.Accepted {
		res.RejectionCode = out.Code
		res.RejectionReason = out.Message
	} else if res.DocumentKey == "" {
		return interfaces.ProposalResult{}, failure.Transient(hubGatewayName, errInvalidBody(resp))
	}
	g.logger.Info("[hub][gateway] proposal answered",
		zap.String("token", p.ContractToken),
		zap.Bool("accepted", res.Accepted),
		zap.String("document_key", res.DocumentKey),
	)
	return res, nil
}

func rawBody(resp *resty.Response) json.RawMessage {
	if resp == nil {
		return nil
	}
	b := resp.Body()
	if len(b) == 0 || !json.Valid(b) {
		return nil
	}
	return json.RawMessage(append([]byte(nil), b...))
}

func errInvalidBody(resp *resty.Response) error {
	if resp == nil {
		return errors.New("invalid response body")
	}
	return fmt.Errorf("invalid response body (status %d)", resp.StatusCode())
}

package interfaces

import (
	"consig_origination/internal/domain/entities"
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=gateway_interface.go -destination=mocks/gateway_interface_mock.go -package=mock_interfaces

// Gateways return *failure.Error values: failure.ErrTransientExternal for timeouts,
// network errors and 5xx answers, failure.ErrPermanentExternal for explicit rejections.

// IBureauGateway queries the benefit bureau (Dataprev IN100).
type IBureauGateway interface {
	Query(ctx context.Context, benefitNumber string) (entities.BureauResult, error)
}

// ProposalSubmission is what the signature hub needs to register a proposal.
type ProposalSubmission struct {
	ContractToken  string                   `json:"contract_token"`
	ProductType    entities.ProductType     `json:"product_type"`
	Kind           entities.ContractKind    `json:"kind"`
	Client         entities.Client          `json:"client"`
	BenefitNumber  string                   `json:"benefit_number"`
	IsMainProposal bool                     `json:"is_main_proposal"`
	CETYear        decimal.Decimal          `json:"cet_year"`
	MonthlyRate    decimal.Decimal          `json:"monthly_rate"`
	RequestedValue decimal.Decimal          `json:"requested_value"`
	Details        []entities.ProductDetail `json:"details"`
}

// ProposalResult is the hub answer. DocumentKey identifies the proposal on the hub and
// is stable across resubmissions of the same contract.
type ProposalResult struct {
	Accepted        bool            `json:"accepted"`
	DocumentKey     string          `json:"document_key"`
	RejectionCode   string          `json:"rejection_code,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Raw             json.RawMessage `json:"raw,omitempty"`
}

// ISignatureHubGateway submits portability and refinancing proposals (QiTech).
type ISignatureHubGateway interface {
	SubmitProposal(ctx context.Context, p ProposalSubmission) (ProposalResult, error)
}

// ISMSGateway delivers text messages to the client phone.
type ISMSGateway interface {
	Send(ctx context.Context, phone, message string) error
}

// IURLShortener shortens formalization links before they are sent by SMS.
type IURLShortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DetailKind string

const (
	DetailPortability        DetailKind = "portabilidade"
	DetailRefinancing        DetailKind = "refinanciamento"
	DetailFreeMargin         DetailKind = "margem_livre"
	DetailBenefitCard        DetailKind = "cartao_beneficio"
	DetailComplementarySaque DetailKind = "saque_complementar"
)

// ProductDetail is the product specific extension of a contract.
//
// Each contract owns exactly the detail kinds its product declares (see
// ProductType.DetailKinds). The detail carries its own Status because partner returns
// (IN100, hub endorsement) and recalculations can move the detail without a contract
// transition.
//
// Storage model (DynamoDB):
//   - PK: contract_token
//   - SK: kind
type ProductDetail struct {
	ID            string     `json:"id"`
	ContractToken string     `json:"contract_token"`
	Kind          DetailKind `json:"kind"`
	Status        StatusName `json:"status"`

	Bank           string          `json:"bank,omitempty"`
	ContractNumber string          `json:"contract_number,omitempty"`
	Term           int             `json:"term,omitempty"`
	Rate           decimal.Decimal `json:"rate"`
	Installment    decimal.Decimal `json:"installment"`
	NewInstallment decimal.Decimal `json:"new_installment"`
	Balance        decimal.Decimal `json:"balance"`
	OperationValue decimal.Decimal `json:"operation_value"`
	ReleasedMargin decimal.Decimal `json:"released_margin"`
	Change         decimal.Decimal `json:"change"`
	ContractValue  decimal.Decimal `json:"contract_value"`

	IN100Returned  bool            `json:"in100_returned"`
	MarginValue    decimal.Decimal `json:"margin_value"`
	LiquidValue    decimal.Decimal `json:"liquid_value"`
	HubDocumentKey string          `json:"hub_document_key,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ProposalTerms carries the financial terms typed for one proposal. Which fields are
// meaningful depends on the product (e.g. OperationValue and Change for refinancing).
type ProposalTerms struct {
	Bank           string          `json:"banco"`
	ContractNumber string          `json:"numero_contrato"`
	Term           int             `json:"prazo"`
	NewTerm        int             `json:"novo_prazo"`
	Rate           decimal.Decimal `json:"taxa"`
	NewRate        decimal.Decimal `json:"nova_taxa"`
	Installment    decimal.Decimal `json:"parcela_digitada"`
	NewInstallment decimal.Decimal `json:"nova_parcela"`
	Balance        decimal.Decimal `json:"saldo_devedor"`
	OperationValue decimal.Decimal `json:"valor_operacao"`
	ReleasedMargin decimal.Decimal `json:"margem_liberada"`
	Change         decimal.Decimal `json:"troco"`
	ContractValue  decimal.Decimal `json:"vr_contrato"`
	CETYear        decimal.Decimal `json:"cet_ano"`
	MonthlyRate    decimal.Decimal `json:"taxa_efetiva_mes"`
}

// MinimumValueBase returns the value the product minimum is compared against, and false
// when the product has no minimum value rule.
func (t ProposalTerms) MinimumValueBase(p ProductType) (decimal.Decimal, bool) {
	switch p {
	case ProductPortabilityRefinancing:
		return t.OperationValue, true
	case ProductPortability:
		return t.Balance, true
	case ProductFreeMargin:
		return t.ContractValue, true
	}
	return decimal.Zero, false
}

// BuildDetails materializes the detail records of a freshly typed contract.
func BuildDetails(c Contract, t ProposalTerms, newID func() string, status StatusName, now time.Time) []ProductDetail {
	kinds := c.ProductType.DetailKinds()
	out := make([]ProductDetail, 0, len(kinds))
	for _, k := range kinds {
		d := ProductDetail{
			ID:             newID(),
			ContractToken:  c.Token,
			Kind:           k,
			Status:         status,
			Bank:           t.Bank,
			ContractNumber: t.ContractNumber,
			Term:           t.Term,
			Rate:           t.Rate,
			Installment:    t.Installment,
			NewInstallment: t.NewInstallment,
			Balance:        t.Balance,
			UpdatedAt:      now,
		}
		switch k {
		case DetailRefinancing:
			d.Term = t.NewTerm
			d.Rate = t.NewRate
			d.Balance = t.OperationValue
			d.OperationValue = t.OperationValue
			d.ReleasedMargin = t.ReleasedMargin
			d.Change = t.Change
		case DetailFreeMargin, DetailBenefitCard, DetailComplementarySaque:
			d.ContractValue = t.ContractValue
		}
		out = append(out, d)
	}
	return out
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType is the product catalogue code of a contract.
type ProductType int

const (
	ProductFGTS                      ProductType = 1
	ProductINSSLegalRepresentative   ProductType = 2
	ProductBenefitCardRepresentative ProductType = 3
	ProductBrazilAssistanceProgram   ProductType = 4
	ProductINSSCorban                ProductType = 5
	ProductINSS                      ProductType = 6
	ProductBenefitCard               ProductType = 7
	ProductSIAPE                     ProductType = 8
	ProductBrazilianArmy             ProductType = 9
	ProductBrazilianNavy             ProductType = 10
	ProductBrazilianAirForce         ProductType = 11
	ProductPortability               ProductType = 12
	ProductPayrollLoan               ProductType = 13
	ProductComplementarySaque        ProductType = 14
	ProductPayrollCard               ProductType = 15
	ProductFreeMargin                ProductType = 16
	ProductPortabilityRefinancing    ProductType = 17
)

var productNames = map[ProductType]string{
	ProductFGTS:                      "FGTS",
	ProductINSSLegalRepresentative:   "INSS - Representante Legal",
	ProductBenefitCardRepresentative: "Cartão Benefício - Representante Legal",
	ProductBrazilAssistanceProgram:   "PAB",
	ProductINSSCorban:                "INSS CORBAN",
	ProductINSS:                      "INSS",
	ProductBenefitCard:               "Cartão Benefício",
	ProductSIAPE:                     "Siape",
	ProductBrazilianArmy:             "Exercito",
	ProductBrazilianNavy:             "Marinha",
	ProductBrazilianAirForce:         "Aeronautica",
	ProductPortability:               "Portabilidade",
	ProductPayrollLoan:               "Consignado",
	ProductComplementarySaque:        "Saque Complementar",
	ProductPayrollCard:               "Cartão Consignado",
	ProductFreeMargin:                "Margem Livre",
	ProductPortabilityRefinancing:    "Portabilidade + Refinanciamento",
}

func (p ProductType) String() string {
	if n, ok := productNames[p]; ok {
		return n
	}
	return "desconhecido"
}

func (p ProductType) Valid() bool {
	_, ok := productNames[p]
	return ok
}

// IsCard reports whether the product is one of the benefit/payroll card products.
func (p ProductType) IsCard() bool {
	switch p {
	case ProductBenefitCard, ProductBenefitCardRepresentative, ProductPayrollCard:
		return true
	}
	return false
}

// IsINSSMargin reports whether the product consumes INSS free margin.
func (p ProductType) IsINSSMargin() bool {
	switch p {
	case ProductFreeMargin, ProductINSS, ProductINSSCorban, ProductINSSLegalRepresentative:
		return true
	}
	return false
}

// DetailKinds lists the product detail records a contract of this product owns.
func (p ProductType) DetailKinds() []DetailKind {
	switch {
	case p == ProductPortability:
		return []DetailKind{DetailPortability}
	case p == ProductPortabilityRefinancing:
		return []DetailKind{DetailPortability, DetailRefinancing}
	case p == ProductComplementarySaque:
		return []DetailKind{DetailComplementarySaque}
	case p.IsCard():
		return []DetailKind{DetailBenefitCard}
	case p.IsINSSMargin():
		return []DetailKind{DetailFreeMargin}
	}
	return nil
}

// ContractKind mirrors cd_contrato_tipo.
type ContractKind int

const (
	ContractKindNew                ContractKind = 1
	ContractKindRefinancing        ContractKind = 2
	ContractKindRefinPortability   ContractKind = 3
	ContractKindPortability        ContractKind = 4
	ContractKindSalaryIncrease     ContractKind = 5
	ContractKindComplementarySaque ContractKind = 6
)

// DefaultKind returns the contract kind implied by a product when the caller does not send one.
func (p ProductType) DefaultKind() ContractKind {
	switch p {
	case ProductPortability:
		return ContractKindPortability
	case ProductPortabilityRefinancing:
		return ContractKindRefinPortability
	case ProductComplementarySaque:
		return ContractKindComplementarySaque
	}
	return ContractKindNew
}

type Escolaridade int

const (
	EscolaridadeFundamental Escolaridade = 1
	EscolaridadeMedio       Escolaridade = 2
	EscolaridadeSuperior    Escolaridade = 3
	EscolaridadePosGraduado Escolaridade = 4
	EscolaridadeAnalfabeto  Escolaridade = 5
)

// Client is the snapshot of the borrower taken when the contract is typed.
type Client struct {
	ID           string       `json:"id"`
	CPF          string       `json:"cpf"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Escolaridade Escolaridade `json:"escolaridade"`
}

func (c Client) IsIlliterate() bool {
	return c.Escolaridade == EscolaridadeAnalfabeto
}

// Witness signs alongside the rogado when the client cannot sign.
type Witness struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
}

// Contract is the origination record (contrato) of one client and one product.
//
// Storage model (DynamoDB):
//   - PK: token
//   - client_contracts item (PK client_id) lists the tokens of a client
//
// Status is a denormalized copy of the last status history entry. Version grows by one
// on every committed change and is used as the optimistic concurrency guard.
type Contract struct {
	Token          string       `json:"token"`
	Client         Client       `json:"client"`
	ProductType    ProductType  `json:"product_type"`
	Kind           ContractKind `json:"kind"`
	CreatedBy      string       `json:"created_by"`
	CorbanID       string       `json:"corban_id"`
	BenefitNumber  string       `json:"benefit_number"`
	Enrollment     string       `json:"enrollment,omitempty"`
	MarginType     int          `json:"margin_type,omitempty"`
	EnvelopeToken  string       `json:"envelope_token,omitempty"`
	Status         StatusName   `json:"status"`
	IsMainProposal bool         `json:"is_main_proposal"`

	RogadoID  string    `json:"rogado_id,omitempty"`
	Witnesses []Witness `json:"witnesses,omitempty"`

	FormalizationURL       string     `json:"formalization_url,omitempty"`
	RogadoFormalizationURL string     `json:"rogado_formalization_url,omitempty"`
	LinkCreatedAt          *time.Time `json:"link_created_at,omitempty"`

	CETYear        decimal.Decimal `json:"cet_year"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	RequestedValue decimal.Decimal `json:"requested_value"`

	PendingRetryID string `json:"pending_retry_id,omitempty"`
	BureauSequence int64  `json:"bureau_sequence"`
	Version        int64  `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Contract) Phase() Phase {
	return c.Status.Phase()
}

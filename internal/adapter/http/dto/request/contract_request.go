package request

import (
	"errors"
	"strings"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProposals = errors.New("at least one proposal is required")
)

type ClientRequest struct {
	ID           string `json:"id" binding:"required"`
	CPF          string `json:"cpf" binding:"required"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Escolaridade int    `json:"escolaridade"`
}

func (r ClientRequest) toEntity() entities.Client {
	return entities.Client{
		ID:           strings.TrimSpace(r.ID),
		CPF:          strings.TrimSpace(r.CPF),
		Name:         strings.TrimSpace(r.Name),
		Phone:        strings.TrimSpace(r.Phone),
		Escolaridade: entities.Escolaridade(r.Escolaridade),
	}
}

type WitnessRequest struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
}

func toWitnesses(in []WitnessRequest) []entities.Witness {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.Witness, 0, len(in))
	for _, w := range in {
		out = append(out, entities.Witness{
			Name:  strings.TrimSpace(w.Name),
			CPF:   strings.TrimSpace(w.CPF),
			Phone: strings.TrimSpace(w.Phone),
		})
	}
	return out
}

// ProposalRequest carries the typed financial terms of one proposal. Amounts are
// accepted as JSON numbers or strings.
type ProposalRequest struct {
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

func (r ProposalRequest) ToTerms() entities.ProposalTerms {
	return entities.ProposalTerms{
		Bank:           strings.TrimSpace(r.Bank),
		ContractNumber: strings.TrimSpace(r.ContractNumber),
		Term:           r.Term,
		NewTerm:        r.NewTerm,
		Rate:           r.Rate,
		NewRate:        r.NewRate,
		Installment:    r.Installment,
		NewInstallment: r.NewInstallment,
		Balance:        r.Balance,
		OperationValue: r.OperationValue,
		ReleasedMargin: r.ReleasedMargin,
		Change:         r.Change,
		ContractValue:  r.ContractValue,
		CETYear:        r.CETYear,
		MonthlyRate:    r.MonthlyRate,
	}
}

// CreateContractRequest types a single proposal contract.
type CreateContractRequest struct {
	ProductType   int              `json:"product_type" binding:"required"`
	Kind          int              `json:"kind"`
	Client        ClientRequest    `json:"client" binding:"required"`
	CorbanID      string           `json:"corban_id"`
	BenefitNumber string           `json:"numero_beneficio"`
	Enrollment    string           `json:"matricula"`
	MarginType    int              `json:"tipo_margem"`
	EnvelopeToken string           `json:"envelope_token"`
	RogadoID      string           `json:"rogado_id"`
	Witnesses     []WitnessRequest `json:"testemunhas"`
	Proposal      ProposalRequest  `json:"proposta"`
}

func (r CreateContractRequest) ToCommand(actor string) usecase.CreateContractCommand {
	return usecase.CreateContractCommand{
		ProductType:   entities.ProductType(r.ProductType),
		Kind:          entities.ContractKind(r.Kind),
		Client:        r.Client.toEntity(),
		Actor:         actor,
		CorbanID:      strings.TrimSpace(r.CorbanID),
		BenefitNumber: strings.TrimSpace(r.BenefitNumber),
		Enrollment:    strings.TrimSpace(r.Enrollment),
		MarginType:    r.MarginType,
		EnvelopeToken: strings.TrimSpace(r.EnvelopeToken),
		RogadoID:      strings.TrimSpace(r.RogadoID),
		Witnesses:     toWitnesses(r.Witnesses),
		Terms:         r.Proposal.ToTerms(),
	}
}

// CreateBatchRequest types every proposal of a portability/refinancing request at once.
// The first proposal is the main one.
type CreateBatchRequest struct {
	ProductType   int               `json:"product_type" binding:"required"`
	Client        ClientRequest     `json:"client" binding:"required"`
	CorbanID      string            `json:"corban_id"`
	BenefitNumber string            `json:"numero_beneficio"`
	EnvelopeToken string            `json:"envelope_token"`
	RogadoID      string            `json:"rogado_id"`
	Witnesses     []WitnessRequest  `json:"testemunhas"`
	Proposals     []ProposalRequest `json:"propostas"`
}

func (r CreateBatchRequest) ToCommand(actor string) (usecase.CreateBatchCommand, error) {
	if len(r.Proposals) == 0 {
		return usecase.CreateBatchCommand{}, ErrInvalidProposals
	}
	terms := make([]entities.ProposalTerms, 0, len(r.Proposals))
	for _, p := range r.Proposals {
		terms = append(terms, p.ToTerms())
	}
	return usecase.CreateBatchCommand{
		ProductType:   entities.ProductType(r.ProductType),
		Client:        r.Client.toEntity(),
		Actor:         actor,
		CorbanID:      strings.TrimSpace(r.CorbanID),
		BenefitNumber: strings.TrimSpace(r.BenefitNumber),
		EnvelopeToken: strings.TrimSpace(r.EnvelopeToken),
		RogadoID:      strings.TrimSpace(r.RogadoID),
		Witnesses:     toWitnesses(r.Witnesses),
		Proposals:     terms,
	}, nil
}

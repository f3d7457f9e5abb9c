package usecase

import (
	"consig_origination/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateNegativeMargin refuses a multi proposal request when the latest bureau data
// shows a negative margin. Without bureau data the check passes.
func ValidateNegativeMargin(bureau *entities.BureauResult, proposals int) error {
	if bureau == nil || proposals <= 1 {
		return nil
	}
	if bureau.HasNegativeMargin() {
		return ErrNegativeMarginMultiProposal
	}
	return nil
}

// ValidateMinimumValue compares the product specific base value against the product
// minimum. Products without a minimum value rule always pass.
func ValidateMinimumValue(product entities.ProductType, terms entities.ProposalTerms, minimum decimal.Decimal) error {
	base, ok := terms.MinimumValueBase(product)
	if !ok || !minimum.IsPositive() {
		return nil
	}
	if base.LessThan(minimum) {
		return ErrMinimumValue.WithReason("O valor mínimo para esse tipo de contrato é %s", minimum.StringFixed(2))
	}
	return nil
}

func ValidateRefinChange(product entities.ProductType, terms entities.ProposalTerms) error {
	if product == entities.ProductPortabilityRefinancing && terms.Change.IsNegative() {
		return ErrNegativeRefinChange
	}
	return nil
}

// ValidateWitnesses requires a rogado and at least min witnesses for illiterate clients.
func ValidateWitnesses(client entities.Client, rogadoID string, witnesses []entities.Witness, min int) error {
	if !client.IsIlliterate() {
		return nil
	}
	if strings.TrimSpace(rogadoID) == "" {
		return ErrMissingWitness.WithReason("cliente analfabeto exige um rogado")
	}
	valid := 0
	for _, w := range witnesses {
		if strings.TrimSpace(w.Name) != "" && strings.TrimSpace(w.CPF) != "" {
			valid++
		}
	}
	if valid < min {
		return ErrMissingWitness.WithReason("cliente analfabeto exige %d testemunhas, informadas %d", min, valid)
	}
	return nil
}

// ActiveContracts counts the client's contracts of the product (and benefit, when given)
// that are neither cancelled nor rejected.
func ActiveContracts(existing []entities.Contract, product entities.ProductType, benefitNumber string) int {
	n := 0
	for _, c := range existing {
		if c.ProductType != product || !c.Status.IsActive() {
			continue
		}
		if benefitNumber != "" && c.BenefitNumber != benefitNumber {
			continue
		}
		n++
	}
	return n
}

// CheckContractLimit refuses the request when the active contracts plus the requested
// ones would exceed limit.
func CheckContractLimit(existing []entities.Contract, product entities.ProductType, benefitNumber string, requested, limit int) error {
	active := ActiveContracts(existing, product, benefitNumber)
	if active+requested > limit {
		return ErrContractLimitExceeded.WithReason(
			"limite de %d contratos ativos excedido (ativos: %d, solicitados: %d)", limit, active, requested)
	}
	return nil
}

// CheckDuplicateCard allows a single active card contract per enrollment, product and
// margin type.
func CheckDuplicateCard(existing []entities.Contract, product entities.ProductType, enrollment string, marginType int) error {
	if !product.IsCard() {
		return nil
	}
	for _, c := range existing {
		if c.ProductType == product && c.Enrollment == enrollment && c.MarginType == marginType && c.Status.IsActive() {
			return ErrDuplicateActiveContract.WithReason("cliente já possui contrato ativo para a matrícula %s", enrollment)
		}
	}
	return nil
}

package usecase

import (
	"errors"
	"testing"

	"consig_origination/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNegativeMargin(t *testing.T) {
	negative := &entities.BureauResult{MarginValue: decimal.NewFromInt(-1)}
	positive := &entities.BureauResult{MarginValue: decimal.NewFromInt(1)}

	assert.NoError(t, ValidateNegativeMargin(nil, 3))
	assert.NoError(t, ValidateNegativeMargin(negative, 1))
	assert.NoError(t, ValidateNegativeMargin(positive, 3))
	assert.ErrorIs(t, ValidateNegativeMargin(negative, 2), ErrNegativeMarginMultiProposal)
}

func TestValidateMinimumValue(t *testing.T) {
	min := decimal.NewFromInt(500)
	tests := []struct {
		name    string
		product entities.ProductType
		terms   entities.ProposalTerms
		wantErr bool
	}{
		{"portability uses balance", entities.ProductPortability, entities.ProposalTerms{Balance: decimal.NewFromInt(499)}, true},
		{"portability at minimum", entities.ProductPortability, entities.ProposalTerms{Balance: decimal.NewFromInt(500)}, false},
		{"refin uses operation value", entities.ProductPortabilityRefinancing, entities.ProposalTerms{Balance: decimal.NewFromInt(900), OperationValue: decimal.NewFromInt(100)}, true},
		{"free margin uses contract value", entities.ProductFreeMargin, entities.ProposalTerms{ContractValue: decimal.NewFromInt(600)}, false},
		{"product without rule", entities.ProductBenefitCard, entities.ProposalTerms{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMinimumValue(tt.product, tt.terms, min)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMinimumValue)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("no minimum configured", func(t *testing.T) {
		assert.NoError(t, ValidateMinimumValue(entities.ProductPortability, entities.ProposalTerms{}, decimal.Zero))
	})
}

func TestValidateWitnesses(t *testing.T) {
	literate := entities.Client{Escolaridade: entities.EscolaridadeSuperior}
	illiterate := entities.Client{Escolaridade: entities.EscolaridadeAnalfabeto}
	two := []entities.Witness{{Name: "A", CPF: "1"}, {Name: "B", CPF: "2"}}

	assert.NoError(t, ValidateWitnesses(literate, "", nil, 2))
	assert.NoError(t, ValidateWitnesses(illiterate, "rogado", two, 2))
	assert.ErrorIs(t, ValidateWitnesses(illiterate, " ", two, 2), ErrMissingWitness)
	assert.ErrorIs(t, ValidateWitnesses(illiterate, "rogado", []entities.Witness{{Name: "A", CPF: "1"}, {Name: "B"}}, 2), ErrMissingWitness)
}

func TestCheckContractLimit(t *testing.T) {
	existing := []entities.Contract{
		{ProductType: entities.ProductINSS, BenefitNumber: "1", Status: entities.StatusDigitacao},
		{ProductType: entities.ProductINSS, BenefitNumber: "1", Status: entities.StatusFinalizado},
		{ProductType: entities.ProductINSS, BenefitNumber: "1", Status: entities.StatusCancelado},
		{ProductType: entities.ProductINSS, BenefitNumber: "1", Status: entities.StatusReprovado},
		{ProductType: entities.ProductINSS, BenefitNumber: "2", Status: entities.StatusDigitacao},
		{ProductType: entities.ProductPortability, BenefitNumber: "1", Status: entities.StatusDigitacao},
	}

	assert.Equal(t, 2, ActiveContracts(existing, entities.ProductINSS, "1"))
	assert.Equal(t, 3, ActiveContracts(existing, entities.ProductINSS, ""))

	assert.NoError(t, CheckContractLimit(existing, entities.ProductINSS, "1", 1, 3))
	err := CheckContractLimit(existing, entities.ProductINSS, "1", 2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContractLimitExceeded))
}

func TestCheckDuplicateCard(t *testing.T) {
	existing := []entities.Contract{
		{ProductType: entities.ProductBenefitCard, Enrollment: "m1", MarginType: 1, Status: entities.StatusAguardaAverbacao},
		{ProductType: entities.ProductBenefitCard, Enrollment: "m2", MarginType: 1, Status: entities.StatusReprovado},
	}

	assert.ErrorIs(t, CheckDuplicateCard(existing, entities.ProductBenefitCard, "m1", 1), ErrDuplicateActiveContract)
	assert.NoError(t, CheckDuplicateCard(existing, entities.ProductBenefitCard, "m2", 1))
	assert.NoError(t, CheckDuplicateCard(existing, entities.ProductBenefitCard, "m1", 2))
	assert.NoError(t, CheckDuplicateCard(existing, entities.ProductINSS, "m1", 1))
}

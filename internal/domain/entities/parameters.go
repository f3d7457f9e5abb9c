package entities

import "github.com/shopspring/decimal"

// DefaultMaxContractsPerClient applies when a product has no configured limit.
const DefaultMaxContractsPerClient = 6

// BackofficeParameters is the per-product configuration owned by the back office
// (ParametrosBackoffice + ParametrosProduto). The orchestrator only reads it.
type BackofficeParameters struct {
	ProductType           ProductType     `json:"product_type" yaml:"product_type"`
	Active                bool            `json:"active" yaml:"active"`
	MaxContractsPerClient int             `json:"max_contracts_per_client" yaml:"max_contracts_per_client"`
	MinimumValue          decimal.Decimal `json:"minimum_value" yaml:"minimum_value"`
	FormalizationURL      string          `json:"formalization_url" yaml:"formalization_url"`
	Retry                 RetryRule       `json:"retry" yaml:"retry"`
}

func (p BackofficeParameters) ContractLimit() int {
	if p.MaxContractsPerClient > 0 {
		return p.MaxContractsPerClient
	}
	return DefaultMaxContractsPerClient
}

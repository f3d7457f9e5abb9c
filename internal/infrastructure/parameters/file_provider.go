package parameters

import (
	"context"
	"fmt"
	"os"
	"sync"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	ProductType           int                `yaml:"product_type"`
	Active                bool               `yaml:"active"`
	MaxContractsPerClient int                `yaml:"max_contracts_per_client"`
	MinimumValue          string             `yaml:"minimum_value"`
	FormalizationURL      string             `yaml:"formalization_url"`
	Retry                 entities.RetryRule `yaml:"retry"`
}

// FileProvider serves the back office parameters from a YAML file.
type FileProvider struct {
	path string

	mu       sync.RWMutex
	products map[entities.ProductType]entities.BackofficeParameters
}

var _ interfaces.IParametersProvider = (*FileProvider)(nil)

func NewFileProvider(path string) (*FileProvider, error) {
	p := &FileProvider{path: path}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload reads the file again. On error the previous parameters stay in place.
func (p *FileProvider) Reload() error {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read parameters file: %w", err)
	}
	products, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("parse parameters file %s: %w", p.path, err)
	}
	p.mu.Lock()
	p.products = products
	p.mu.Unlock()
	return nil
}

func (p *FileProvider) Get(_ context.Context, product entities.ProductType) (entities.BackofficeParameters, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	params, ok := p.products[product]
	return params, ok, nil
}

// Parse decodes a parameters document keyed by product type.
func Parse(raw []byte) (map[entities.ProductType]entities.BackofficeParameters, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := make(map[entities.ProductType]entities.BackofficeParameters, len(doc.Products))
	for i, e := range doc.Products {
		product := entities.ProductType(e.ProductType)
		if !product.Valid() {
			return nil, fmt.Errorf("products[%d]: unknown product_type %d", i, e.ProductType)
		}
		if _, dup := out[product]; dup {
			return nil, fmt.Errorf("products[%d]: product_type %d listed twice", i, e.ProductType)
		}
		minimum := decimal.Zero
		if e.MinimumValue != "" {
			v, err := decimal.NewFromString(e.MinimumValue)
			if err != nil {
				return nil, fmt.Errorf("products[%d]: minimum_value: %w", i, err)
			}
			minimum = v
		}
		if e.Retry.Enabled && (e.Retry.MaxAttempts <= 0 || e.Retry.IntervalMinutes <= 0) {
			return nil, fmt.Errorf("products[%d]: retry needs max_attempts and interval_minutes", i)
		}
		out[product] = entities.BackofficeParameters{
			ProductType:           product,
			Active:                e.Active,
			MaxContractsPerClient: e.MaxContractsPerClient,
			MinimumValue:          minimum,
			FormalizationURL:      e.FormalizationURL,
			Retry:                 e.Retry,
		}
	}
	return out, nil
}

// Static serves a fixed set of parameters. Handy for tests and local runs.
type Static map[entities.ProductType]entities.BackofficeParameters

var _ interfaces.IParametersProvider = Static(nil)

func (s Static) Get(_ context.Context, product entities.ProductType) (entities.BackofficeParameters, bool, error) {
	p, ok := s[product]
	return p, ok, nil
}

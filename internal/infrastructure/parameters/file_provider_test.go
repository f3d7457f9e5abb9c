package parameters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"consig_origination/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
products:
  - product_type: 16
    active: true
    max_contracts_per_client: 4
    minimum_value: "500.00"
    formalization_url: https://formalizacao.example/envelopes
    retry:
      enabled: true
      interval_minutes: 30
      max_attempts: 3
      retry_codes: ["TO", "99"]
  - product_type: 12
    active: false
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parameters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileProvider_Get(t *testing.T) {
	ctx := context.Background()
	p, err := NewFileProvider(writeFile(t, sample))
	require.NoError(t, err)

	got, ok, err := p.Get(ctx, entities.ProductFreeMargin)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Active)
	assert.Equal(t, 4, got.ContractLimit())
	assert.True(t, decimal.RequireFromString("500").Equal(got.MinimumValue))
	assert.Equal(t, 3, got.Retry.MaxAttempts)
	assert.True(t, got.Retry.RetriesCode("TO"))

	portability, ok, err := p.Get(ctx, entities.ProductPortability)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, portability.Active)
	assert.Equal(t, entities.DefaultMaxContractsPerClient, portability.ContractLimit())

	_, ok, err = p.Get(ctx, entities.ProductFGTS)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileProvider_Reload(t *testing.T) {
	path := writeFile(t, sample)
	p, err := NewFileProvider(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("products: [{product_type: 999}]"), 0o600))
	assert.Error(t, p.Reload())

	_, ok, _ := p.Get(context.Background(), entities.ProductFreeMargin)
	assert.True(t, ok, "previous parameters survive a bad reload")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown product":  "products: [{product_type: 999}]",
		"duplicate":        "products: [{product_type: 16}, {product_type: 16}]",
		"bad decimal":      `products: [{product_type: 16, minimum_value: "abc"}]`,
		"retry incomplete": "products: [{product_type: 16, retry: {enabled: true}}]",
		"not yaml":         "products: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestNewFileProvider_MissingFile(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"consig_origination/internal/adapter/persistence/memory"
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/infrastructure/lock"
	"consig_origination/internal/infrastructure/parameters"
	"consig_origination/internal/usecase/interfaces"
	mock_interfaces "consig_origination/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const (
	testBenefit = "1234567890"
	formURL     = "https://formalizacao.example.com/f"
)

type fixture struct {
	store     *memory.Store
	bureau    *mock_interfaces.MockIBureauGateway
	hub       *mock_interfaces.MockISignatureHubGateway
	sms       *mock_interfaces.MockISMSGateway
	shortener *mock_interfaces.MockIURLShortener
	uc        *ContractUseCase

	mu  sync.Mutex
	now time.Time
	ids int
}

func defaultRule() entities.RetryRule {
	return entities.RetryRule{Enabled: true, IntervalMinutes: 10, MaxAttempts: 3, RetryCodes: []string{"05"}}
}

func defaultParams() parameters.Static {
	return parameters.Static{
		entities.ProductINSS: {
			ProductType: entities.ProductINSS, Active: true, MaxContractsPerClient: 6,
			FormalizationURL: formURL, Retry: defaultRule(),
		},
		entities.ProductFreeMargin: {
			ProductType: entities.ProductFreeMargin, Active: true, MaxContractsPerClient: 6,
			MinimumValue: decimal.NewFromInt(100), FormalizationURL: formURL, Retry: defaultRule(),
		},
		entities.ProductBenefitCard: {
			ProductType: entities.ProductBenefitCard, Active: true, FormalizationURL: formURL,
		},
		entities.ProductPortability: {
			ProductType: entities.ProductPortability, Active: true, MaxContractsPerClient: 6,
			FormalizationURL: formURL, Retry: defaultRule(),
		},
		entities.ProductPortabilityRefinancing: {
			ProductType: entities.ProductPortabilityRefinancing, Active: true, MaxContractsPerClient: 6,
			FormalizationURL: formURL, Retry: defaultRule(),
		},
		entities.ProductPayrollLoan: {ProductType: entities.ProductPayrollLoan, Active: false},
	}
}

func newFixture(t *testing.T, params interfaces.IParametersProvider) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	if params == nil {
		params = defaultParams()
	}
	f := &fixture{
		store:     memory.NewStore(),
		bureau:    mock_interfaces.NewMockIBureauGateway(ctrl),
		hub:       mock_interfaces.NewMockISignatureHubGateway(ctrl),
		sms:       mock_interfaces.NewMockISMSGateway(ctrl),
		shortener: mock_interfaces.NewMockIURLShortener(ctrl),
		now:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	f.uc = NewContractUseCase(ContractDeps{
		Repo:      f.store,
		Retries:   f.store,
		Params:    params,
		Bureau:    f.bureau,
		Hub:       f.hub,
		SMS:       f.sms,
		Shortener: f.shortener,
		Locker:    lock.NewMemoryLocker(),
		Now:       f.clock,
		NewID:     f.nextID,
	}, OrchestratorConfig{OriginClient: "Banco Teste"})
	return f
}

func (f *fixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fixture) nextID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids++
	return fmt.Sprintf("id-%03d", f.ids)
}

func testClient() entities.Client {
	return entities.Client{ID: "cli-1", CPF: "12345678900", Name: "Maria", Phone: "11987654321", Escolaridade: entities.EscolaridadeMedio}
}

// seed stores a contract already in status, with a one entry history.
func (f *fixture) seed(t *testing.T, product entities.ProductType, status entities.StatusName) entities.Contract {
	t.Helper()
	now := f.clock()
	c := entities.Contract{
		Token:          f.nextID(),
		Client:         testClient(),
		ProductType:    product,
		Kind:           product.DefaultKind(),
		CreatedBy:      "operador",
		BenefitNumber:  testBenefit,
		Status:         status,
		IsMainProposal: true,
		RequestedValue: decimal.NewFromInt(1000),
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := f.store.Commit(context.Background(), interfaces.ContractWrite{
		Contract: c,
		Details:  entities.BuildDetails(c, entities.ProposalTerms{Balance: decimal.NewFromInt(1000)}, f.nextID, status, now),
		AppendEntry: &entities.StatusHistoryEntry{
			ContractToken: c.Token, Seq: 1, Name: status, CreatedBy: "operador", DataFaseInicial: now,
		},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return c
}

func (f *fixture) get(t *testing.T, token string) entities.Contract {
	t.Helper()
	c, err := f.store.GetByToken(context.Background(), token)
	if err != nil || c.Token == "" {
		t.Fatalf("contract %s not found: %v", token, err)
	}
	return c
}

func (f *fixture) assertHistory(t *testing.T, token string, want ...entities.StatusName) {
	t.Helper()
	c := f.get(t, token)
	h, _ := f.store.ListStatusHistory(context.Background(), token)
	if len(h) != len(want) {
		t.Fatalf("expected %d history entries, got %d (%v)", len(want), len(h), h)
	}
	for i, name := range want {
		if h[i].Name != name {
			t.Fatalf("history[%d]: expected %s, got %s", i, name, h[i].Name)
		}
	}
	if !entities.HistoryConsistent(c, h) {
		t.Fatalf("history of %s does not match status %s", token, c.Status)
	}
}

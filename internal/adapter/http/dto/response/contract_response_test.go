package response

import (
	"testing"
	"time"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromContract(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Contract{
		Token:          "tok-1",
		ProductType:    entities.ProductPortability,
		Kind:           entities.ContractKindPortability,
		Status:         entities.StatusAguardaAverbacao,
		RequestedValue: decimal.RequireFromString("1500.5"),
		Version:        3,
		CreatedAt:      now,
	}

	res := FromContract(c)
	if res.Token != "tok-1" || res.ProductName != "Portabilidade" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Status != "INT_AGUARDA_AVERBACAO" || res.Phase != string(entities.PhaseEmAverbacao) {
		t.Fatalf("unexpected status: %+v", res)
	}
	if res.RequestedValue != "1500.5" || res.Version != 3 {
		t.Fatalf("unexpected values: %+v", res)
	}
}

func TestFromBatch_NeverNullLists(t *testing.T) {
	res := FromBatch(usecase.BatchResult{})
	if res.PortabilityIDs == nil || res.RefinancingIDs == nil || res.Contracts == nil {
		t.Fatalf("expected empty lists, got %+v", res)
	}
}

func TestFromRetryAttemptPage(t *testing.T) {
	answered := time.Now().UTC()
	list := []entities.RetryAttempt{
		{ID: "a2", Attempt: 2},
		{ID: "a1", Attempt: 1, RespondidaEm: &answered, Outcome: entities.RetryOutcomeRescheduled},
	}
	res := FromRetryAttemptPage(list, 1, 10, 2)
	if len(res.Items) != 2 || res.Total != 2 {
		t.Fatalf("unexpected page: %+v", res)
	}
	if !res.Items[0].Pending || res.Items[1].Pending {
		t.Fatalf("unexpected pending flags: %+v", res.Items)
	}
	if res.Items[1].Outcome != "rescheduled" {
		t.Fatalf("unexpected outcome: %s", res.Items[1].Outcome)
	}
}

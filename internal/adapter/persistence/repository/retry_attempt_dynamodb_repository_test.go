package repository

import (
	"testing"
	"time"

	"consig_origination/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSortAttemptsNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	items := []entities.RetryAttempt{
		{ID: "a1", Attempt: 1, SolicitadaEm: base},
		{ID: "a3", Attempt: 3, SolicitadaEm: base.Add(10 * time.Minute)},
		{ID: "a2", Attempt: 2, SolicitadaEm: base},
		{ID: "a4", Attempt: 4, SolicitadaEm: base.Add(20 * time.Minute)},
	}

	sortAttemptsNewestFirst(items)

	ids := make([]string, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a4", "a3", "a2", "a1"}, ids)
}

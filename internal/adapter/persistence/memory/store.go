// Package memory is an in-process implementation of the persistence ports. It keeps the
// same transactional guarantees as the DynamoDB repositories (version checks, unique
// idempotency keys, all or nothing commits) and backs tests and local runs.
package memory

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrContractExists = errors.New("contract already exists")

type Store struct {
	mu        sync.RWMutex
	contracts map[string]entities.Contract
	details   map[string][]entities.ProductDetail
	history   map[string][]entities.StatusHistoryEntry
	attempts  map[string]entities.RetryAttempt
	applied   map[string]bool
	snapshots map[string]entities.BureauResult
}

var (
	_ interfaces.IContractRepository     = (*Store)(nil)
	_ interfaces.IRetryAttemptRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		contracts: map[string]entities.Contract{},
		details:   map[string][]entities.ProductDetail{},
		history:   map[string][]entities.StatusHistoryEntry{},
		attempts:  map[string]entities.RetryAttempt{},
		applied:   map[string]bool{},
		snapshots: map[string]entities.BureauResult{},
	}
}

func (s *Store) Commit(ctx context.Context, writes ...interfaces.ContractWrite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	for _, w := range writes {
		token := w.Contract.Token
		if seen[token] {
			return errors.New("memory: contract written twice in one commit")
		}
		seen[token] = true
		current, exists := s.contracts[token]
		if w.ExpectedVersion == 0 && exists {
			return ErrContractExists
		}
		if w.ExpectedVersion != 0 && (!exists || current.Version != w.ExpectedVersion) {
			return interfaces.ErrVersionConflict
		}
		if w.IdempotencyKey != "" && s.applied[w.IdempotencyKey] {
			return interfaces.ErrAlreadyApplied
		}
	}

	for _, w := range writes {
		token := w.Contract.Token
		s.contracts[token] = cloneContract(w.Contract)
		if w.Details != nil {
			s.details[token] = append([]entities.ProductDetail(nil), w.Details...)
		}
		if w.CloseEntry != nil {
			h := s.history[token]
			for i := range h {
				if h[i].Seq == w.CloseEntry.Seq {
					h[i].DataFaseFinal = w.CloseEntry.DataFaseFinal
				}
			}
		}
		if w.AppendEntry != nil {
			s.history[token] = append(s.history[token], *w.AppendEntry)
		}
		if w.IdempotencyKey != "" {
			s.applied[w.IdempotencyKey] = true
		}
		for _, a := range w.RetryAttempts {
			s.attempts[a.ID] = a
		}
		if w.BureauSnapshot != nil && w.BureauSnapshot.BenefitNumber != "" {
			s.snapshots[w.BureauSnapshot.BenefitNumber] = *w.BureauSnapshot
		}
	}
	return nil
}

func (s *Store) GetByToken(_ context.Context, token string) (entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneContract(s.contracts[token]), nil
}

func (s *Store) ListByClient(_ context.Context, clientID string) ([]entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entities.Contract{}
	for _, c := range s.contracts {
		if c.Client.ID == clientID {
			out = append(out, cloneContract(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Token < out[j].Token
	})
	return out, nil
}

func (s *Store) ListDetails(_ context.Context, token string) ([]entities.ProductDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.ProductDetail{}, s.details[token]...), nil
}

func (s *Store) ListStatusHistory(_ context.Context, token string) ([]entities.StatusHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]entities.StatusHistoryEntry{}, s.history[token]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (s *Store) IsApplied(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied[key], nil
}

func (s *Store) GetBureauSnapshot(_ context.Context, benefitNumber string) (entities.BureauResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.snapshots[benefitNumber]
	return r, ok, nil
}

// PutBureauSnapshot seeds the latest bureau data of a benefit.
func (s *Store) PutBureauSnapshot(r entities.BureauResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[r.BenefitNumber] = r
}

func (s *Store) GetByID(_ context.Context, id string) (entities.RetryAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attempts[id], nil
}

func (s *Store) ListDue(_ context.Context, now time.Time, limit int) ([]entities.RetryAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entities.RetryAttempt{}
	for _, a := range s.attempts {
		if a.Pending() && !a.ProximaTentativaEm.After(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProximaTentativaEm.Before(out[j].ProximaTentativaEm) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListByContract(_ context.Context, token string) ([]entities.RetryAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entities.RetryAttempt{}
	for _, a := range s.attempts {
		if a.ContractToken == token {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SolicitadaEm.Equal(out[j].SolicitadaEm) {
			return out[i].SolicitadaEm.After(out[j].SolicitadaEm)
		}
		return out[i].Attempt > out[j].Attempt
	})
	return out, nil
}

func cloneContract(c entities.Contract) entities.Contract {
	if c.Witnesses != nil {
		c.Witnesses = append([]entities.Witness(nil), c.Witnesses...)
	}
	return c
}

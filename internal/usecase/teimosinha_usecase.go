package usecase

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=teimosinha_usecase.go -destination=../adapter/http/handlers/mocks/teimosinha_usecase_mock.go -package=mocks

// ITeimosinhaUseCase is the retry scheduler of failed benefit lookups and hub submissions.
//
// Each contract has at most one pending attempt. Processing an attempt calls the partner
// again and either resolves the contract, schedules the next attempt, or sends the
// contract to manual review once the product rule is exhausted.
type ITeimosinhaUseCase interface {
	ScheduleRetry(ctx context.Context, token, actor string) (entities.RetryAttempt, error)
	NextAttempt(ctx context.Context) (entities.RetryAttempt, bool, error)
	ProcessAttempt(ctx context.Context, attemptID string) (entities.RetryAttempt, error)
	ProcessDue(ctx context.Context) (int, error)
	ListAttempts(ctx context.Context, token string, page, perPage int) ([]entities.RetryAttempt, int, error)
}

const dueBatchSize = 100

type TeimosinhaUseCase struct {
	contracts *ContractUseCase
	attempts  interfaces.IRetryAttemptRepository
	log       *zap.Logger
}

var _ ITeimosinhaUseCase = (*TeimosinhaUseCase)(nil)

func NewTeimosinhaUseCase(contracts *ContractUseCase, attempts interfaces.IRetryAttemptRepository) *TeimosinhaUseCase {
	return &TeimosinhaUseCase{contracts: contracts, attempts: attempts, log: contracts.log}
}

// ScheduleRetry starts a new attempt series for a contract waiting on the bureau or in
// manual review. The first attempt is due one rule interval from now.
func (s *TeimosinhaUseCase) ScheduleRetry(ctx context.Context, token, actor string) (entities.RetryAttempt, error) {
	token, actor, err := normalizeCall(token, actor)
	if err != nil {
		return entities.RetryAttempt{}, err
	}

	var scheduled entities.RetryAttempt
	err = s.contracts.withLock(ctx, contractLockKey(token), func(ctx context.Context) error {
		c, err := s.contracts.load(ctx, token)
		if err != nil {
			return err
		}
		if c.PendingRetryID != "" {
			return ErrRetryAlreadyPending.WithReason("tentativa %s pendente para o contrato %s", c.PendingRetryID, token)
		}
		if !awaitingBureau(c.Status) {
			return ErrIllegalTransition.WithReason("contrato em %s não aceita nova tentativa", c.Status)
		}
		params, err := s.contracts.parameters(ctx, c.ProductType)
		if err != nil {
			return err
		}
		if !params.Retry.Enabled || params.Retry.MaxAttempts <= 0 {
			return ErrIllegalTransition.WithReason("teimosinha desativada para o produto %s", c.ProductType)
		}

		scheduled = s.contracts.pendingAttempt(c.Token, 1, s.contracts.now(), params.Retry)
		ch := change{
			actor:          actor,
			description:    "nova série de tentativas agendada",
			attempts:       []entities.RetryAttempt{scheduled},
			setPendingID:   true,
			pendingRetryID: scheduled.ID,
		}
		if c.Status == entities.StatusPendenteRevisaoManual && !isHubProduct(c.ProductType) {
			ch.to = entities.StatusAguardandoRetornoIN100
		}
		_, err = s.contracts.commit(ctx, c, ch)
		return err
	})
	if err != nil {
		return entities.RetryAttempt{}, err
	}
	s.log.Info("[teimosinha][usecase] series scheduled", zap.String("token", token), zap.String("attempt_id", scheduled.ID))
	return scheduled, nil
}

// NextAttempt returns the pending attempt with the earliest due time, if one is due.
func (s *TeimosinhaUseCase) NextAttempt(ctx context.Context) (entities.RetryAttempt, bool, error) {
	due, err := s.attempts.ListDue(ctx, s.contracts.now(), 1)
	if err != nil || len(due) == 0 {
		return entities.RetryAttempt{}, false, err
	}
	return due[0], true, nil
}

// ProcessAttempt runs one pending attempt. An attempt that is no longer the contract's
// pending one, or whose contract left the waiting statuses, is closed as superseded
// without calling the partner.
func (s *TeimosinhaUseCase) ProcessAttempt(ctx context.Context, attemptID string) (entities.RetryAttempt, error) {
	attemptID = strings.TrimSpace(attemptID)
	a, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return entities.RetryAttempt{}, err
	}
	if a.ID == "" {
		return entities.RetryAttempt{}, ErrRetryAttemptNotFound
	}

	var out entities.RetryAttempt
	err = s.contracts.withLock(ctx, contractLockKey(a.ContractToken), func(ctx context.Context) error {
		a, err := s.attempts.GetByID(ctx, attemptID)
		if err != nil {
			return err
		}
		out = a
		if !a.Pending() {
			return nil
		}
		c, err := s.contracts.load(ctx, a.ContractToken)
		if err != nil {
			return err
		}

		if c.PendingRetryID != a.ID || !waitingOnRetry(c) {
			now := s.contracts.now()
			a.RespondidaEm = &now
			a.Outcome = entities.RetryOutcomeSuperseded
			ch := change{attempts: []entities.RetryAttempt{a}}
			if c.PendingRetryID == a.ID {
				ch.setPendingID = true
			}
			if _, err := s.contracts.commit(ctx, c, ch); err != nil {
				return err
			}
			out = a
			return nil
		}

		params, err := s.contracts.parameters(ctx, c.ProductType)
		if err != nil {
			return err
		}
		res, err := s.contracts.callExternal(ctx, c)
		if err != nil {
			return err
		}

		now := s.contracts.now()
		a.RespondidaEm = &now
		a.ReturnCode = res.code
		a.RetornoDataprev = res.raw
		ch := outcomeChange(SystemActor, res)
		ch.setPendingID = true
		ch.attempts = []entities.RetryAttempt{a}

		switch res.kind {
		case outcomeAccepted:
			a.Sucesso = true
			a.Outcome = entities.RetryOutcomeSuccess
		case outcomeDefinitiveNegative:
			a.Outcome = entities.RetryOutcomeDefinitiveNegative
		case outcomeRejected:
			a.Outcome = entities.RetryOutcomeRejected
		case outcomeRetryable:
			ch.to = ""
			if params.Retry.Enabled && a.Attempt < params.Retry.MaxAttempts {
				a.Outcome = entities.RetryOutcomeRescheduled
				next := s.contracts.pendingAttempt(c.Token, a.Attempt+1, now, params.Retry)
				ch.attempts = append(ch.attempts, next)
				ch.pendingRetryID = next.ID
				ch.description = ""
			} else {
				a.Outcome = entities.RetryOutcomeExhausted
				ch.to = entities.StatusPendenteRevisaoManual
				ch.description = "tentativas de consulta esgotadas: " + res.reason
			}
		}
		ch.attempts[0] = a

		if _, err := s.contracts.commit(ctx, c, ch); err != nil {
			return err
		}
		out = a
		s.log.Info("[teimosinha][usecase] attempt processed",
			zap.String("token", c.Token), zap.Int("attempt", a.Attempt), zap.String("outcome", string(a.Outcome)))
		return nil
	})
	if err != nil {
		return entities.RetryAttempt{}, err
	}
	return out, nil
}

// waitingOnRetry reports whether the contract is still in a status a retry can resolve.
func waitingOnRetry(c entities.Contract) bool {
	if c.Status.IsTerminal() || c.Status == entities.StatusAguardaAverbacao {
		return false
	}
	if isHubProduct(c.ProductType) {
		return submittable(c.Status)
	}
	return c.Status == entities.StatusAguardandoRetornoIN100
}

// ProcessDue processes the attempts due now and returns how many were processed. A
// failure on one contract does not stop the others.
func (s *TeimosinhaUseCase) ProcessDue(ctx context.Context) (int, error) {
	due, err := s.attempts.ListDue(ctx, s.contracts.now(), dueBatchSize)
	if err != nil {
		return 0, err
	}
	processed := 0
	for _, a := range due {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if _, err := s.ProcessAttempt(ctx, a.ID); err != nil {
			s.log.Warn("[teimosinha][usecase] attempt failed",
				zap.String("attempt_id", a.ID), zap.String("token", a.ContractToken), zap.Error(err))
			continue
		}
		processed++
	}
	return processed, nil
}

// Run polls for due attempts every interval until ctx is done.
func (s *TeimosinhaUseCase) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		n, err := s.ProcessDue(ctx)
		if err != nil && ctx.Err() == nil {
			s.log.Error("[teimosinha][usecase] poll failed", zap.Error(err))
		} else if n > 0 {
			s.log.Info("[teimosinha][usecase] poll done", zap.Int("processed", n))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ListAttempts pages through the attempts of a contract, newest first. page starts at 1.
func (s *TeimosinhaUseCase) ListAttempts(ctx context.Context, token string, page, perPage int) ([]entities.RetryAttempt, int, error) {
	if _, err := s.contracts.GetByToken(ctx, token); err != nil {
		return nil, 0, err
	}
	all, err := s.attempts.ListByContract(ctx, strings.TrimSpace(token))
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	start := (page - 1) * perPage
	if start >= len(all) {
		return []entities.RetryAttempt{}, len(all), nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

package usecase

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// change describes one committed mutation of a contract. An empty to keeps the current
// status and writes no history entry.
type change struct {
	to             entities.StatusName
	actor          string
	description    string
	eventKey       string
	contract       func(c *entities.Contract)
	details        func(d *entities.ProductDetail)
	attempts       []entities.RetryAttempt
	setPendingID   bool
	pendingRetryID string
	snapshot       *entities.BureauResult
	promote        *entities.Contract
}

// commit applies ch on top of c and persists it in a single repository write. The write
// fails with ErrConcurrentModification when c is no longer the stored version.
func (u *ContractUseCase) commit(ctx context.Context, c entities.Contract, ch change) (entities.Contract, error) {
	if ch.to == c.Status {
		ch.to = ""
	}
	if ch.to != "" && !CanTransition(c.Status, ch.to) {
		return c, ErrIllegalTransition.WithReason("transição de %s para %s não permitida", c.Status, ch.to)
	}
	if ch.eventKey != "" {
		applied, err := u.repo.IsApplied(ctx, ch.eventKey)
		if err != nil {
			return c, err
		}
		if applied {
			if ch.to != "" {
				return c, ErrEventAlreadyApplied.WithReason("evento %s já aplicado; contrato está em %s", ch.eventKey, c.Status)
			}
			return c, nil
		}
	}

	now := u.now()
	next := c
	next.Version = c.Version + 1
	next.UpdatedAt = now
	if ch.to != "" {
		next.Status = ch.to
	}
	if ch.setPendingID {
		next.PendingRetryID = ch.pendingRetryID
	}
	if ch.contract != nil {
		ch.contract(&next)
	}
	if ch.promote != nil {
		next.IsMainProposal = false
	}

	details, err := u.repo.ListDetails(ctx, c.Token)
	if err != nil {
		return c, err
	}
	for i := range details {
		if ch.to != "" {
			details[i].Status = ch.to
		}
		if ch.details != nil {
			ch.details(&details[i])
		}
		details[i].UpdatedAt = now
	}

	w := interfaces.ContractWrite{
		Contract:        next,
		ExpectedVersion: c.Version,
		Details:         details,
		IdempotencyKey:  ch.eventKey,
		RetryAttempts:   ch.attempts,
		BureauSnapshot:  ch.snapshot,
	}
	if ch.to != "" {
		history, err := u.repo.ListStatusHistory(ctx, c.Token)
		if err != nil {
			return c, err
		}
		var last entities.StatusHistoryEntry
		for _, e := range history {
			if e.Seq > last.Seq {
				last = e
			}
		}
		if last.Seq > 0 && last.IsOpen() {
			closed := last
			closed.DataFaseFinal = &now
			w.CloseEntry = &closed
		}
		w.AppendEntry = &entities.StatusHistoryEntry{
			ContractToken:   c.Token,
			Seq:             last.Seq + 1,
			Name:            ch.to,
			CreatedBy:       ch.actor,
			Description:     ch.description,
			DataFaseInicial: now,
		}
	}

	writes := []interfaces.ContractWrite{w}
	if ch.promote != nil {
		main := *ch.promote
		main.IsMainProposal = true
		main.Version = ch.promote.Version + 1
		main.UpdatedAt = now
		writes = append(writes, interfaces.ContractWrite{Contract: main, ExpectedVersion: ch.promote.Version})
	}

	if err := u.repo.Commit(ctx, writes...); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrAlreadyApplied):
			return u.load(ctx, c.Token)
		case errors.Is(err, interfaces.ErrVersionConflict):
			u.log.Warn("[contract][usecase] version conflict", zap.String("token", c.Token), zap.Int64("version", c.Version))
			return c, ErrConcurrentModification.Wrap(err)
		}
		return c, err
	}
	if ch.to != "" {
		u.log.Info("[contract][usecase] status changed",
			zap.String("token", c.Token), zap.String("from", string(c.Status)), zap.String("to", string(ch.to)),
			zap.String("actor", ch.actor))
	}
	if ch.promote != nil {
		u.log.Info("[contract][usecase] main proposal moved",
			zap.String("from", c.Token), zap.String("to", ch.promote.Token), zap.String("envelope", c.EnvelopeToken))
	}
	return next, nil
}

type outcomeKind int

const (
	outcomeAccepted outcomeKind = iota
	outcomeRetryable
	outcomeDefinitiveNegative
	outcomeRejected
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeAccepted:
		return "accepted"
	case outcomeRetryable:
		return "retryable"
	case outcomeDefinitiveNegative:
		return "definitive_negative"
	case outcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// externalOutcome is the normalized answer of the hub or the bureau to a submission.
type externalOutcome struct {
	kind     outcomeKind
	target   entities.StatusName
	reason   string
	code     string
	eventKey string
	bureau   *entities.BureauResult
	hubKey   string
	raw      json.RawMessage
}

// outcomeChange turns an external answer into a contract change that records the bureau
// data or the hub document key on the detail records.
func outcomeChange(actor string, res externalOutcome) change {
	ch := change{to: res.target, actor: actor, description: res.reason, snapshot: res.bureau}
	if res.bureau != nil {
		b := *res.bureau
		ch.contract = func(c *entities.Contract) {
			if b.Sequence > c.BureauSequence {
				c.BureauSequence = b.Sequence
			}
		}
		ch.details = func(d *entities.ProductDetail) {
			d.IN100Returned = true
			d.MarginValue = b.MarginValue
			d.LiquidValue = b.LiquidValue
		}
	}
	if res.hubKey != "" {
		key := res.hubKey
		ch.details = func(d *entities.ProductDetail) { d.HubDocumentKey = key }
	}
	return ch
}

func isHubProduct(p entities.ProductType) bool {
	return p == entities.ProductPortability || p == entities.ProductPortabilityRefinancing
}

// callExternal routes the contract to the signature hub (portability products) or to
// the benefit bureau (every other product) and classifies the answer. Gateway failures
// are part of the outcome; only repository failures are returned as errors.
func (u *ContractUseCase) callExternal(ctx context.Context, c entities.Contract) (externalOutcome, error) {
	params, err := u.parameters(ctx, c.ProductType)
	if err != nil {
		return externalOutcome{}, err
	}
	if isHubProduct(c.ProductType) {
		return u.submitToHub(ctx, c)
	}
	return u.queryBureau(ctx, c, params.Retry), nil
}

func (u *ContractUseCase) submitToHub(ctx context.Context, c entities.Contract) (externalOutcome, error) {
	details, err := u.repo.ListDetails(ctx, c.Token)
	if err != nil {
		return externalOutcome{}, err
	}

	gctx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
	defer cancel()
	res, err := u.hub.SubmitProposal(gctx, interfaces.ProposalSubmission{
		ContractToken:  c.Token,
		ProductType:    c.ProductType,
		Kind:           c.Kind,
		Client:         c.Client,
		BenefitNumber:  c.BenefitNumber,
		IsMainProposal: c.IsMainProposal,
		CETYear:        c.CETYear,
		MonthlyRate:    c.MonthlyRate,
		RequestedValue: c.RequestedValue,
		Details:        details,
	})
	if err != nil {
		err = classifyGatewayErr("signature hub", err)
		if errors.Is(err, failure.ErrTransientExternal) {
			return externalOutcome{kind: outcomeRetryable, code: failure.CodeOf(err), reason: err.Error()}, nil
		}
		return externalOutcome{
			kind:   outcomeRejected,
			target: entities.StatusReprovado,
			code:   failure.CodeOf(err),
			reason: err.Error(),
		}, nil
	}
	if !res.Accepted {
		reason := res.RejectionReason
		if reason == "" {
			reason = "proposta recusada pelo hub"
		}
		return externalOutcome{
			kind:   outcomeRejected,
			target: entities.StatusReprovado,
			code:   res.RejectionCode,
			reason: reason,
			raw:    res.Raw,
		}, nil
	}
	return externalOutcome{
		kind:     outcomeAccepted,
		target:   entities.StatusAguardaAverbacao,
		reason:   "proposta registrada no hub",
		eventKey: eventKey(c.Token, entities.StatusAguardaAverbacao, submissionRound(res.DocumentKey, c.Version)),
		hubKey:   res.DocumentKey,
		raw:      res.Raw,
	}, nil
}

// submissionRound scopes a hub document key to the contract version it was submitted
// from. The hub answers with the same key when a proposal is submitted again after a
// recalculation.
func submissionRound(documentKey string, version int64) string {
	return fmt.Sprintf("%s@v%d", documentKey, version)
}

func (u *ContractUseCase) queryBureau(ctx context.Context, c entities.Contract, rule entities.RetryRule) externalOutcome {
	gctx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
	defer cancel()
	res, err := u.bureau.Query(gctx, c.BenefitNumber)
	if err != nil {
		err = classifyGatewayErr("bureau", err)
		if errors.Is(err, failure.ErrTransientExternal) {
			return externalOutcome{kind: outcomeRetryable, code: failure.CodeOf(err), reason: err.Error()}
		}
		return externalOutcome{
			kind:   outcomeRejected,
			target: entities.StatusReprovadoConsultaDataprev,
			code:   failure.CodeOf(err),
			reason: err.Error(),
		}
	}
	if res.BenefitNumber == "" {
		res.BenefitNumber = c.BenefitNumber
	}
	if res.ReceivedAt.IsZero() {
		res.ReceivedAt = u.now()
	}
	return classifyBureau(c.Token, res, rule)
}

// classifyBureau maps a bureau answer to an outcome. A definitive negative (no data, code
// BD) is never retried; ineligible or blocked answers are retried only when the product
// rule lists their return code.
func classifyBureau(token string, res entities.BureauResult, rule entities.RetryRule) externalOutcome {
	out := externalOutcome{bureau: &res, code: res.ReturnCode, raw: res.RawPayload}
	switch {
	case res.DefinitiveNegative():
		out.kind = outcomeDefinitiveNegative
		out.target = entities.StatusReprovadoConsultaDataprev
		out.reason = fmt.Sprintf("benefício %s sem dados disponíveis no bureau", res.BenefitNumber)
	case res.Status == entities.BureauStatusOK:
		out.kind = outcomeAccepted
		out.target = entities.StatusAguardaAverbacao
		out.reason = "consulta de benefício aprovada"
		out.eventKey = eventKey(token, out.target, res.ResponseID)
	case rule.RetriesCode(res.ReturnCode):
		out.kind = outcomeRetryable
		out.reason = fmt.Sprintf("benefício %s: %s (%s)", res.BenefitNumber, res.Status, res.ReturnCode)
	default:
		out.kind = outcomeRejected
		out.target = entities.StatusReprovadoConsultaDataprev
		out.reason = fmt.Sprintf("benefício %s: %s (%s)", res.BenefitNumber, res.Status, res.ReturnCode)
	}
	return out
}

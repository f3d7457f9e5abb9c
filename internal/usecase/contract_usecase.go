package usecase

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=contract_usecase.go -destination=../adapter/http/handlers/mocks/contract_usecase_mock.go -package=mocks

const SystemActor = "sistema"

// OrchestratorConfig carries the global settings the orchestrator reads. It is filled
// from the process configuration at startup and never read from globals afterwards.
type OrchestratorConfig struct {
	OriginClient   string
	MinWitnesses   int
	GatewayTimeout time.Duration
	LockTTL        time.Duration
	LockWait       time.Duration
}

func (c OrchestratorConfig) withDefaults() OrchestratorConfig {
	if c.MinWitnesses <= 0 {
		c.MinWitnesses = 2
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = 30 * time.Second
	}
	if c.LockTTL <= 0 {
		c.LockTTL = 2 * time.Minute
	}
	if c.LockWait <= 0 {
		c.LockWait = 10 * time.Second
	}
	return c
}

// ContractDeps groups the collaborators of ContractUseCase. Locker, Queue, Logger, Now
// and NewID are optional.
type ContractDeps struct {
	Repo      interfaces.IContractRepository
	Retries   interfaces.IRetryAttemptRepository
	Params    interfaces.IParametersProvider
	Bureau    interfaces.IBureauGateway
	Hub       interfaces.ISignatureHubGateway
	SMS       interfaces.ISMSGateway
	Shortener interfaces.IURLShortener
	Locker    interfaces.IContractLocker
	Queue     interfaces.ITaskQueue
	Logger    *zap.Logger
	Now       func() time.Time
	NewID     func() string
}

// CreateContractCommand is a typed proposal of one client for one product.
type CreateContractCommand struct {
	ProductType   entities.ProductType
	Kind          entities.ContractKind
	Client        entities.Client
	Actor         string
	CorbanID      string
	BenefitNumber string
	Enrollment    string
	MarginType    int
	EnvelopeToken string
	RogadoID      string
	Witnesses     []entities.Witness
	Terms         entities.ProposalTerms
}

type FormalizationLink struct {
	Contract  entities.Contract
	URL       string
	RogadoURL string
}

// IContractUseCase is the contract lifecycle orchestrator. It is the only writer of
// contract status: every status change goes through it and is committed together with
// its status history entries.
//
// Lifecycle:
//   - DIGITACAO => CreateContract()
//   - AGUARDA_ENVIO_LINK => BeginFormalization()
//   - ANDAMENTO_FORMALIZACAO => SendFormalizationLink()
//   - INT_AGUARDA_AVERBACAO / AGUARDANDO_RETORNO_IN100 / REPROVADO* => SubmitExternalProposal()
//   - bureau callbacks => RecordBureauReturn()
//   - INT_FINALIZADO / RECUSADA_AVERBACAO => CompleteEndorsement()
type IContractUseCase interface {
	CreateContract(ctx context.Context, cmd CreateContractCommand) (entities.Contract, error)
	BeginFormalization(ctx context.Context, token, actor string) (FormalizationLink, error)
	SendFormalizationLink(ctx context.Context, token, actor string) (entities.Contract, error)
	SubmitExternalProposal(ctx context.Context, token, actor string) (entities.Contract, error)
	DispatchSubmission(ctx context.Context, token, actor string) error
	RecordBureauReturn(ctx context.Context, token string, result entities.BureauResult) (entities.Contract, error)
	RequestRecalculation(ctx context.Context, token, actor string) (entities.Contract, error)
	CompleteEndorsement(ctx context.Context, token, actor string, approved bool, reason string) (entities.Contract, error)
	Cancel(ctx context.Context, token, actor, reason string) (entities.Contract, error)
	Reject(ctx context.Context, token, actor string, status entities.StatusName, reason string) (entities.Contract, error)
	GetByToken(ctx context.Context, token string) (entities.Contract, error)
	ListDetails(ctx context.Context, token string) ([]entities.ProductDetail, error)
	ListStatusHistory(ctx context.Context, token string) ([]entities.StatusHistoryEntry, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo      interfaces.IContractRepository
	retries   interfaces.IRetryAttemptRepository
	params    interfaces.IParametersProvider
	bureau    interfaces.IBureauGateway
	hub       interfaces.ISignatureHubGateway
	sms       interfaces.ISMSGateway
	shortener interfaces.IURLShortener
	locker    interfaces.IContractLocker
	queue     interfaces.ITaskQueue
	cfg       OrchestratorConfig
	log       *zap.Logger
	now       func() time.Time
	newID     func() string
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(deps ContractDeps, cfg OrchestratorConfig) *ContractUseCase {
	u := &ContractUseCase{
		repo:      deps.Repo,
		retries:   deps.Retries,
		params:    deps.Params,
		bureau:    deps.Bureau,
		hub:       deps.Hub,
		sms:       deps.SMS,
		shortener: deps.Shortener,
		locker:    deps.Locker,
		queue:     deps.Queue,
		cfg:       cfg.withDefaults(),
		log:       deps.Logger,
		now:       deps.Now,
		newID:     deps.NewID,
	}
	if u.log == nil {
		u.log = zap.NewNop()
	}
	if u.now == nil {
		u.now = func() time.Time { return time.Now().UTC() }
	}
	if u.newID == nil {
		u.newID = uuid.NewString
	}
	return u
}

func (u *ContractUseCase) CreateContract(ctx context.Context, cmd CreateContractCommand) (entities.Contract, error) {
	cmd.Actor = strings.TrimSpace(cmd.Actor)
	cmd.Client.ID = strings.TrimSpace(cmd.Client.ID)
	cmd.BenefitNumber = strings.TrimSpace(cmd.BenefitNumber)
	cmd.Enrollment = strings.TrimSpace(cmd.Enrollment)
	u.log.Info("[contract][usecase] create start",
		zap.String("client_id", cmd.Client.ID), zap.Stringer("product", cmd.ProductType))

	if err := validateCreate(cmd); err != nil {
		return entities.Contract{}, err
	}
	params, err := u.parameters(ctx, cmd.ProductType)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := ValidateRefinChange(cmd.ProductType, cmd.Terms); err != nil {
		return entities.Contract{}, err
	}
	if err := ValidateMinimumValue(cmd.ProductType, cmd.Terms, params.MinimumValue); err != nil {
		return entities.Contract{}, err
	}

	var created entities.Contract
	err = u.withLock(ctx, clientLockKey(cmd.Client.ID), func(ctx context.Context) error {
		existing, err := u.repo.ListByClient(ctx, cmd.Client.ID)
		if err != nil {
			return err
		}
		if err := CheckDuplicateCard(existing, cmd.ProductType, cmd.Enrollment, cmd.MarginType); err != nil {
			return err
		}
		if err := CheckContractLimit(existing, cmd.ProductType, cmd.BenefitNumber, 1, params.ContractLimit()); err != nil {
			return err
		}

		w := u.newContractWrite(cmd, cmd.Terms, true)
		if err := u.repo.Commit(ctx, w); err != nil {
			return err
		}
		created = w.Contract
		return nil
	})
	if err != nil {
		u.log.Warn("[contract][usecase] create rejected", zap.String("client_id", cmd.Client.ID), zap.Error(err))
		return entities.Contract{}, err
	}
	u.log.Info("[contract][usecase] contract created",
		zap.String("token", created.Token), zap.String("status", string(created.Status)))
	return created, nil
}

func validateCreate(cmd CreateContractCommand) error {
	if !cmd.ProductType.Valid() {
		return ErrInvalidProduct
	}
	if cmd.Client.ID == "" || strings.TrimSpace(cmd.Client.CPF) == "" {
		return ErrInvalidClient
	}
	if cmd.Actor == "" {
		return ErrInvalidActor
	}
	if cmd.ProductType.IsCard() && cmd.Enrollment == "" {
		return ErrInvalidEnrollment
	}
	if !cmd.ProductType.IsCard() && cmd.BenefitNumber == "" {
		return ErrInvalidBenefit
	}
	return nil
}

// newContractWrite builds the creation write of a contract in DIGITACAO: the contract,
// its detail records and the first status history entry.
func (u *ContractUseCase) newContractWrite(cmd CreateContractCommand, terms entities.ProposalTerms, main bool) interfaces.ContractWrite {
	now := u.now()
	kind := cmd.Kind
	if kind == 0 {
		kind = cmd.ProductType.DefaultKind()
	}
	requested, ok := terms.MinimumValueBase(cmd.ProductType)
	if !ok {
		requested = terms.ContractValue
	}
	c := entities.Contract{
		Token:          u.newID(),
		Client:         cmd.Client,
		ProductType:    cmd.ProductType,
		Kind:           kind,
		CreatedBy:      cmd.Actor,
		CorbanID:       cmd.CorbanID,
		BenefitNumber:  cmd.BenefitNumber,
		Enrollment:     cmd.Enrollment,
		MarginType:     cmd.MarginType,
		EnvelopeToken:  cmd.EnvelopeToken,
		Status:         entities.StatusDigitacao,
		IsMainProposal: main,
		RogadoID:       cmd.RogadoID,
		Witnesses:      cmd.Witnesses,
		CETYear:        terms.CETYear,
		MonthlyRate:    terms.MonthlyRate,
		RequestedValue: requested,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return interfaces.ContractWrite{
		Contract: c,
		Details:  entities.BuildDetails(c, terms, u.newID, entities.StatusDigitacao, now),
		AppendEntry: &entities.StatusHistoryEntry{
			ContractToken:   c.Token,
			Seq:             1,
			Name:            entities.StatusDigitacao,
			CreatedBy:       cmd.Actor,
			DataFaseInicial: now,
		},
	}
}

func (u *ContractUseCase) BeginFormalization(ctx context.Context, token, actor string) (FormalizationLink, error) {
	token, actor, err := normalizeCall(token, actor)
	if err != nil {
		return FormalizationLink{}, err
	}

	var link FormalizationLink
	err = u.withLock(ctx, contractLockKey(token), func(ctx context.Context) error {
		c, err := u.load(ctx, token)
		if err != nil {
			return err
		}
		if c.FormalizationURL != "" {
			link = FormalizationLink{Contract: c, URL: c.FormalizationURL, RogadoURL: c.RogadoFormalizationURL}
			return nil
		}
		if c.Status != entities.StatusDigitacao {
			return ErrIllegalTransition.WithReason("contrato em %s não pode iniciar a formalização", c.Status)
		}
		if err := ValidateWitnesses(c.Client, c.RogadoID, c.Witnesses, u.cfg.MinWitnesses); err != nil {
			return err
		}
		params, err := u.parameters(ctx, c.ProductType)
		if err != nil {
			return err
		}
		base := strings.TrimRight(strings.TrimSpace(params.FormalizationURL), "/")
		if base == "" {
			return ErrParametersNotFound.WithReason("url de formalização não configurada para o produto %s", c.ProductType)
		}
		envelope := c.EnvelopeToken
		if envelope == "" {
			envelope = c.Token
		}
		longURL := base + "/" + envelope

		short, err := u.shorten(ctx, longURL)
		if err != nil {
			return err
		}
		rogado := ""
		if c.Client.IsIlliterate() {
			if rogado, err = u.shorten(ctx, longURL+"/rogado"); err != nil {
				return err
			}
		}

		now := u.now()
		next, err := u.commit(ctx, c, change{
			to:          entities.StatusAguardaEnvioLink,
			actor:       actor,
			description: "link de formalização gerado",
			contract: func(c *entities.Contract) {
				c.FormalizationURL = short
				c.RogadoFormalizationURL = rogado
				c.LinkCreatedAt = &now
			},
		})
		if err != nil {
			return err
		}
		link = FormalizationLink{Contract: next, URL: short, RogadoURL: rogado}
		return nil
	})
	if err != nil {
		return FormalizationLink{}, err
	}
	return link, nil
}

func (u *ContractUseCase) shorten(ctx context.Context, longURL string) (string, error) {
	if u.shortener == nil {
		return longURL, nil
	}
	gctx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
	defer cancel()
	short, err := u.shortener.Shorten(gctx, longURL)
	if err != nil {
		return "", classifyGatewayErr("url shortener", err)
	}
	return short, nil
}

func (u *ContractUseCase) SendFormalizationLink(ctx context.Context, token, actor string) (entities.Contract, error) {
	token, actor, err := normalizeCall(token, actor)
	if err != nil {
		return entities.Contract{}, err
	}

	var out entities.Contract
	err = u.withLock(ctx, contractLockKey(token), func(ctx context.Context) error {
		c, err := u.load(ctx, token)
		if err != nil {
			return err
		}
		if c.Status == entities.StatusAndamentoFormalizacao {
			out = c
			return nil
		}
		if c.Status != entities.StatusAguardaEnvioLink {
			return ErrIllegalTransition.WithReason("contrato em %s não pode enviar o link", c.Status)
		}
		if c.FormalizationURL == "" {
			return ErrFormalizationPending
		}
		phone := strings.TrimSpace(c.Client.Phone)
		if phone == "" {
			return ErrMissingPhone
		}

		gctx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
		err = u.sms.Send(gctx, phone, formalizationMessage(u.cfg.OriginClient, c.FormalizationURL))
		cancel()
		if err != nil {
			err = classifyGatewayErr("sms", err)
			u.log.Warn("[contract][usecase] sms failed", zap.String("token", token), zap.Error(err))
			return err
		}

		out, err = u.commit(ctx, c, change{
			to:          entities.StatusAndamentoFormalizacao,
			actor:       actor,
			description: "link de formalização enviado por SMS",
		})
		return err
	})
	return out, err
}

func formalizationMessage(origin, url string) string {
	if origin == "" {
		return fmt.Sprintf("Acesse %s para formalizar o seu contrato.", url)
	}
	return fmt.Sprintf("%s: acesse %s para formalizar o seu contrato.", origin, url)
}

func (u *ContractUseCase) SubmitExternalProposal(ctx context.Context, token, actor string) (entities.Contract, error) {
	token, actor, err := normalizeCall(token, actor)
	if err != nil {
		return entities.Contract{}, err
	}
	u.log.Info("[contract][usecase] submit start", zap.String("token", token))

	var out entities.Contract
	err = u.withLock(ctx, contractLockKey(token), func(ctx context.Context) error {
		c, err := u.load(ctx, token)
		if err != nil {
			return err
		}
		if alreadySubmitted(c) {
			u.log.Info("[contract][usecase] submit no-op", zap.String("token", token), zap.String("status", string(c.Status)))
			out = c
			return nil
		}
		if !submittable(c.Status) {
			return ErrIllegalTransition.WithReason("contrato em %s não pode ser submetido", c.Status)
		}
		params, err := u.parameters(ctx, c.ProductType)
		if err != nil {
			return err
		}

		res, err := u.callExternal(ctx, c)
		if err != nil {
			return err
		}
		u.log.Info("[contract][usecase] external answer",
			zap.String("token", token), zap.String("outcome", res.kind.String()), zap.String("code", res.code))

		if res.kind == outcomeRetryable {
			out, err = u.startRetrySeries(ctx, c, actor, params.Retry, res)
			return err
		}
		ch := outcomeChange(actor, res)
		ch.eventKey = res.eventKey
		out, err = u.commit(ctx, c, ch)
		return err
	})
	return out, err
}

func alreadySubmitted(c entities.Contract) bool {
	return c.Status == entities.StatusAguardaAverbacao ||
		c.Status == entities.StatusAguardandoRetornoIN100 ||
		c.PendingRetryID != ""
}

// DispatchSubmission checks that the contract can be submitted and runs the submission in
// the background queue. Without a queue the submission runs inline.
func (u *ContractUseCase) DispatchSubmission(ctx context.Context, token, actor string) error {
	token, actor, err := normalizeCall(token, actor)
	if err != nil {
		return err
	}
	c, err := u.load(ctx, token)
	if err != nil {
		return err
	}
	if !alreadySubmitted(c) && !submittable(c.Status) {
		return ErrIllegalTransition.WithReason("contrato em %s não pode ser submetido", c.Status)
	}
	if u.queue == nil {
		_, err := u.SubmitExternalProposal(ctx, token, actor)
		return err
	}
	return u.queue.Enqueue("submit:"+token, func(ctx context.Context) error {
		_, err := u.SubmitExternalProposal(ctx, token, actor)
		return err
	})
}

// startRetrySeries records the failed call as attempt 1 and schedules attempt 2, or sends
// the contract to manual review when the product rule allows no further attempts.
func (u *ContractUseCase) startRetrySeries(ctx context.Context, c entities.Contract, actor string, rule entities.RetryRule, res externalOutcome) (entities.Contract, error) {
	now := u.now()
	first := entities.RetryAttempt{
		ID:                 u.newID(),
		ContractToken:      c.Token,
		Attempt:            1,
		SolicitadaEm:       now,
		ProximaTentativaEm: now,
		RespondidaEm:       &now,
		ReturnCode:         res.code,
		Outcome:            entities.RetryOutcomeRescheduled,
		RetornoDataprev:    res.raw,
	}

	if !rule.Enabled || rule.MaxAttempts <= 1 {
		first.Outcome = entities.RetryOutcomeExhausted
		return u.commit(ctx, c, change{
			to:          entities.StatusPendenteRevisaoManual,
			actor:       actor,
			description: "consulta indisponível: " + res.reason,
			attempts:    []entities.RetryAttempt{first},
			snapshot:    res.bureau,
		})
	}

	pending := u.pendingAttempt(c.Token, 2, now, rule)
	ch := change{
		actor:          actor,
		description:    "aguardando nova tentativa de consulta: " + res.reason,
		attempts:       []entities.RetryAttempt{first, pending},
		setPendingID:   true,
		pendingRetryID: pending.ID,
		snapshot:       res.bureau,
	}
	if !isHubProduct(c.ProductType) && c.Status != entities.StatusAguardandoRetornoIN100 {
		ch.to = entities.StatusAguardandoRetornoIN100
	}
	u.log.Info("[contract][usecase] retry scheduled",
		zap.String("token", c.Token), zap.Int("attempt", pending.Attempt), zap.Time("due", pending.ProximaTentativaEm))
	return u.commit(ctx, c, ch)
}

func (u *ContractUseCase) pendingAttempt(token string, attempt int, now time.Time, rule entities.RetryRule) entities.RetryAttempt {
	return entities.RetryAttempt{
		ID:                 u.newID(),
		ContractToken:      token,
		Attempt:            attempt,
		SolicitadaEm:       now,
		ProximaTentativaEm: now.Add(rule.Interval()),
	}
}

func (u *ContractUseCase) RecordBureauReturn(ctx context.Context, token string, result entities.BureauResult) (entities.Contract, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Contract{}, ErrInvalidToken
	}
	if strings.TrimSpace(result.ResponseID) == "" {
		return entities.Contract{}, ErrInvalidBureauReturn.WithReason("response_id é obrigatório")
	}
	if result.Sequence <= 0 {
		return entities.Contract{}, ErrInvalidBureauReturn.WithReason("sequence deve ser maior que zero")
	}
	switch result.Status {
	case entities.BureauStatusOK, entities.BureauStatusDataNotAvailable, entities.BureauStatusIneligible, entities.BureauStatusBlocked:
	default:
		return entities.Contract{}, ErrInvalidBureauReturn.WithReason("status %q desconhecido", result.Status)
	}
	u.log.Info("[contract][usecase] bureau return",
		zap.String("token", token), zap.String("response_id", result.ResponseID), zap.Int64("sequence", result.Sequence))

	var out entities.Contract
	err := u.withLock(ctx, contractLockKey(token), func(ctx context.Context) error {
		c, err := u.load(ctx, token)
		if err != nil {
			return err
		}
		if result.ReceivedAt.IsZero() {
			result.ReceivedAt = u.now()
		}
		if result.BenefitNumber == "" {
			result.BenefitNumber = c.BenefitNumber
		}

		applied, err := u.callbackApplied(ctx, token, result.ResponseID)
		if err != nil {
			return err
		}
		if applied {
			u.log.Info("[contract][usecase] bureau return already applied", zap.String("token", token), zap.String("response_id", result.ResponseID))
			out = c
			return nil
		}
		ch, err := u.bureauReturnChange(ctx, c, result)
		if err != nil {
			return err
		}
		if result.Sequence <= c.BureauSequence {
			return ErrStaleCallback.WithReason("sequência %d não é posterior à última aplicada (%d)", result.Sequence, c.BureauSequence)
		}
		if c.Status.IsTerminal() {
			return ErrIllegalTransition.WithReason("contrato em %s não aceita retorno do bureau", c.Status)
		}
		out, err = u.commit(ctx, c, ch)
		return err
	})
	return out, err
}

// detailEventTarget keys callbacks that only refresh the detail records.
const detailEventTarget entities.StatusName = "DETALHE"

// callbackTargets lists every target a bureau callback can be recorded under.
var callbackTargets = []entities.StatusName{
	entities.StatusAguardaAverbacao,
	entities.StatusReprovadoConsultaDataprev,
	entities.StatusRetornoIN100Recalculo,
	detailEventTarget,
}

// callbackApplied reports whether a callback with this response id was already recorded,
// whatever the contract status was when it arrived.
func (u *ContractUseCase) callbackApplied(ctx context.Context, token, responseID string) (bool, error) {
	for _, target := range callbackTargets {
		applied, err := u.repo.IsApplied(ctx, eventKey(token, target, responseID))
		if err != nil || applied {
			return applied, err
		}
	}
	return false, nil
}

// bureauReturnChange decides what a bureau callback does to the contract, without side
// effects: resolve a waiting lookup, complete a recalculation, or only refresh the detail.
func (u *ContractUseCase) bureauReturnChange(ctx context.Context, c entities.Contract, result entities.BureauResult) (change, error) {
	detailOnly := func() change {
		ch := outcomeChange(SystemActor, externalOutcome{bureau: &result})
		ch.to = ""
		ch.eventKey = eventKey(c.Token, detailEventTarget, result.ResponseID)
		return ch
	}

	switch {
	case awaitingBureau(c.Status):
		params, err := u.parameters(ctx, c.ProductType)
		if err != nil {
			return change{}, err
		}
		res := classifyBureau(c.Token, result, params.Retry)
		if res.kind == outcomeRetryable {
			return detailOnly(), nil
		}
		ch := outcomeChange(SystemActor, res)
		ch.eventKey = eventKey(c.Token, res.target, result.ResponseID)
		if c.PendingRetryID != "" {
			closed, err := u.supersedePending(ctx, c)
			if err != nil {
				return change{}, err
			}
			ch.attempts = closed
			ch.setPendingID = true
		}
		return ch, nil
	case c.Status == entities.StatusAguardandoIN100Recalculo:
		ch := outcomeChange(SystemActor, externalOutcome{bureau: &result})
		ch.to = entities.StatusRetornoIN100Recalculo
		ch.description = "retorno do recálculo recebido"
		ch.eventKey = eventKey(c.Token, ch.to, result.ResponseID)
		return ch, nil
	}
	return detailOnly(), nil
}

// nextMainProposal picks the sibling that becomes the main proposal of the envelope when
// c, the current main one, leaves it. It returns nil when there is nothing to move.
func (u *ContractUseCase) nextMainProposal(ctx context.Context, c entities.Contract) (*entities.Contract, error) {
	if !c.IsMainProposal || c.EnvelopeToken == "" {
		return nil, nil
	}
	siblings, err := u.repo.ListByClient(ctx, c.Client.ID)
	if err != nil {
		return nil, err
	}
	sort.Slice(siblings, func(i, j int) bool {
		if !siblings[i].CreatedAt.Equal(siblings[j].CreatedAt) {
			return siblings[i].CreatedAt.Before(siblings[j].CreatedAt)
		}
		return siblings[i].Token < siblings[j].Token
	})
	for _, s := range siblings {
		if s.Token == c.Token || s.EnvelopeToken != c.EnvelopeToken || s.IsMainProposal || !s.Status.IsActive() {
			continue
		}
		next := s
		return &next, nil
	}
	return nil, nil
}

// supersedePending closes the contract's pending retry attempt, if any.
func (u *ContractUseCase) supersedePending(ctx context.Context, c entities.Contract) ([]entities.RetryAttempt, error) {
	if c.PendingRetryID == "" || u.retries == nil {
		return nil, nil
	}
	a, err := u.retries.GetByID(ctx, c.PendingRetryID)
	if err != nil {
		return nil, err
	}
	if a.ID == "" || !a.Pending() {
		return nil, nil
	}
	now := u.now()
	a.RespondidaEm = &now
	a.Outcome = entities.RetryOutcomeSuperseded
	return []entities.RetryAttempt{a}, nil
}

func (u *ContractUseCase) RequestRecalculation(ctx context.Context, token, actor string) (entities.Contract, error) {
	return u.transitionTo(ctx, token, actor, entities.StatusAguardandoIN100Recalculo, "recálculo IN100 solicitado", nil)
}

func (u *ContractUseCase) CompleteEndorsement(ctx context.Context, token, actor string, approved bool, reason string) (entities.Contract, error) {
	to := entities.StatusFinalizado
	description := "averbação concluída"
	if !approved {
		to = entities.StatusRecusadaAverbacao
		description = "averbação recusada"
	}
	if r := strings.TrimSpace(reason); r != "" {
		description = r
	}
	return u.transitionTo(ctx, token, actor, to, description, func(c entities.Contract) error {
		if c.Status != entities.StatusAguardaAverbacao {
			return ErrIllegalTransition.WithReason("contrato em %s não está aguardando averbação", c.Status)
		}
		return nil
	})
}

func (u *ContractUseCase) Cancel(ctx context.Context, token, actor, reason string) (entities.Contract, error) {
	description := strings.TrimSpace(reason)
	if description == "" {
		description = "contrato cancelado"
	}
	return u.transitionTo(ctx, token, actor, entities.StatusCancelado, description, nil)
}

func (u *ContractUseCase) Reject(ctx context.Context, token, actor string, status entities.StatusName, reason string) (entities.Contract, error) {
	if !status.IsRejected() {
		return entities.Contract{}, ErrInvalidRejection.WithReason("%q não é um status de reprovação", status)
	}
	return u.transitionTo(ctx, token, actor, status, strings.TrimSpace(reason), nil)
}

// transitionTo runs a plain status change. Repeating a call whose target is already the
// current status is a no-op.
func (u *ContractUseCase) transitionTo(ctx context.Context, token, actor string, to entities.StatusName, description string, guard func(entities.Contract) error) (entities.Contract, error) {
	token, actor, err := normalizeCall(token, actor)
	if err != nil {
		return entities.Contract{}, err
	}

	var out entities.Contract
	err = u.withLock(ctx, contractLockKey(token), func(ctx context.Context) error {
		c, err := u.load(ctx, token)
		if err != nil {
			return err
		}
		if c.Status == to {
			out = c
			return nil
		}
		if guard != nil {
			if err := guard(c); err != nil {
				return err
			}
		}
		ch := change{to: to, actor: actor, description: description}
		if to.IsTerminal() && c.PendingRetryID != "" {
			if ch.attempts, err = u.supersedePending(ctx, c); err != nil {
				return err
			}
			ch.setPendingID = true
		}
		if to.IsTerminal() && !to.IsActive() {
			if ch.promote, err = u.nextMainProposal(ctx, c); err != nil {
				return err
			}
		}
		out, err = u.commit(ctx, c, ch)
		return err
	})
	return out, err
}

func (u *ContractUseCase) GetByToken(ctx context.Context, token string) (entities.Contract, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Contract{}, ErrInvalidToken
	}
	return u.load(ctx, token)
}

func (u *ContractUseCase) ListDetails(ctx context.Context, token string) ([]entities.ProductDetail, error) {
	c, err := u.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.repo.ListDetails(ctx, c.Token)
}

func (u *ContractUseCase) ListStatusHistory(ctx context.Context, token string) ([]entities.StatusHistoryEntry, error) {
	c, err := u.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.repo.ListStatusHistory(ctx, c.Token)
}

func (u *ContractUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Contract, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClient
	}
	return u.repo.ListByClient(ctx, clientID)
}

func (u *ContractUseCase) load(ctx context.Context, token string) (entities.Contract, error) {
	c, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Token == "" {
		return entities.Contract{}, ErrContractNotFound.WithReason("contrato %s não encontrado", token)
	}
	return c, nil
}

func (u *ContractUseCase) parameters(ctx context.Context, product entities.ProductType) (entities.BackofficeParameters, error) {
	p, ok, err := u.params.Get(ctx, product)
	if err != nil {
		return entities.BackofficeParameters{}, err
	}
	if !ok {
		return entities.BackofficeParameters{}, ErrParametersNotFound.WithReason("parâmetros do produto %s não encontrados", product)
	}
	if !p.Active {
		return entities.BackofficeParameters{}, ErrProductInactive.WithReason("produto %s inativo", product)
	}
	return p, nil
}

// withLock runs fn while holding the lock of key. A nil locker runs fn unguarded.
func (u *ContractUseCase) withLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if u.locker == nil {
		return fn(ctx)
	}
	lctx, cancel := context.WithTimeout(ctx, u.cfg.LockWait)
	unlock, err := u.locker.Lock(lctx, key, u.cfg.LockTTL)
	cancel()
	if err != nil {
		if errors.Is(err, interfaces.ErrLockNotAcquired) || errors.Is(err, context.DeadlineExceeded) {
			return ErrContractBusy.Wrap(err)
		}
		return err
	}
	defer unlock()
	return fn(ctx)
}

func normalizeCall(token, actor string) (string, string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", ErrInvalidToken
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = SystemActor
	}
	return token, actor, nil
}

func contractLockKey(token string) string { return "contract:" + token }

func clientLockKey(clientID string) string { return "client:" + clientID }

func eventKey(token string, target entities.StatusName, responseID string) string {
	return token + "|" + string(target) + "|" + responseID
}

// classifyGatewayErr makes sure every gateway error carries a taxonomy kind. Errors the
// gateway did not classify (network, context deadline) are treated as transient.
func classifyGatewayErr(gateway string, err error) error {
	if failure.KindOf(err) != nil {
		return err
	}
	return failure.Transient(gateway, err)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"
	mock_interfaces "consig_origination/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func createCommand(product entities.ProductType) CreateContractCommand {
	return CreateContractCommand{
		ProductType:   product,
		Client:        testClient(),
		Actor:         "operador",
		BenefitNumber: testBenefit,
		Terms: entities.ProposalTerms{
			ContractValue:  decimal.NewFromInt(2500),
			Balance:        decimal.NewFromInt(3000),
			OperationValue: decimal.NewFromInt(3500),
		},
	}
}

func TestContractUseCase_CreateContract(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid product", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.uc.CreateContract(ctx, createCommand(entities.ProductType(99)))
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("missing benefit", func(t *testing.T) {
		f := newFixture(t, nil)
		cmd := createCommand(entities.ProductINSS)
		cmd.BenefitNumber = "  "
		_, err := f.uc.CreateContract(ctx, cmd)
		if !errors.Is(err, ErrInvalidBenefit) {
			t.Fatalf("expected ErrInvalidBenefit, got %v", err)
		}
	})

	t.Run("card without enrollment", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.uc.CreateContract(ctx, createCommand(entities.ProductBenefitCard))
		if !errors.Is(err, ErrInvalidEnrollment) {
			t.Fatalf("expected ErrInvalidEnrollment, got %v", err)
		}
	})

	t.Run("parameters not configured", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.uc.CreateContract(ctx, createCommand(entities.ProductFGTS))
		if !errors.Is(err, ErrParametersNotFound) {
			t.Fatalf("expected ErrParametersNotFound, got %v", err)
		}
	})

	t.Run("inactive product", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.uc.CreateContract(ctx, createCommand(entities.ProductPayrollLoan))
		if !errors.Is(err, ErrProductInactive) {
			t.Fatalf("expected ErrProductInactive, got %v", err)
		}
		if !errors.Is(err, failure.ErrEligibility) {
			t.Fatalf("expected eligibility kind, got %v", err)
		}
	})

	t.Run("below minimum value", func(t *testing.T) {
		f := newFixture(t, nil)
		cmd := createCommand(entities.ProductFreeMargin)
		cmd.Terms.ContractValue = decimal.NewFromInt(50)
		_, err := f.uc.CreateContract(ctx, cmd)
		if !errors.Is(err, ErrMinimumValue) {
			t.Fatalf("expected ErrMinimumValue, got %v", err)
		}
		if err.Error() != "O valor mínimo para esse tipo de contrato é 100.00" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("negative refinancing change", func(t *testing.T) {
		f := newFixture(t, nil)
		cmd := createCommand(entities.ProductPortabilityRefinancing)
		cmd.Terms.Change = decimal.NewFromInt(-1)
		_, err := f.uc.CreateContract(ctx, cmd)
		if !errors.Is(err, ErrNegativeRefinChange) {
			t.Fatalf("expected ErrNegativeRefinChange, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, nil)
		c, err := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.StatusDigitacao || c.Version != 1 || !c.IsMainProposal {
			t.Fatalf("unexpected contract: %+v", c)
		}
		if c.Kind != entities.ContractKindNew {
			t.Fatalf("expected default kind, got %d", c.Kind)
		}
		details, _ := f.store.ListDetails(ctx, c.Token)
		if len(details) != 1 || details[0].Kind != entities.DetailFreeMargin || details[0].Status != entities.StatusDigitacao {
			t.Fatalf("unexpected details: %+v", details)
		}
		f.assertHistory(t, c.Token, entities.StatusDigitacao)
	})

	t.Run("contract limit", func(t *testing.T) {
		params := defaultParams()
		p := params[entities.ProductINSS]
		p.MaxContractsPerClient = 1
		params[entities.ProductINSS] = p
		f := newFixture(t, params)

		if _, err := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS))
		if !errors.Is(err, ErrContractLimitExceeded) {
			t.Fatalf("expected ErrContractLimitExceeded, got %v", err)
		}
	})

	t.Run("cancelled contracts do not count", func(t *testing.T) {
		params := defaultParams()
		p := params[entities.ProductINSS]
		p.MaxContractsPerClient = 1
		params[entities.ProductINSS] = p
		f := newFixture(t, params)
		f.seed(t, entities.ProductINSS, entities.StatusCancelado)

		if _, err := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate card", func(t *testing.T) {
		f := newFixture(t, nil)
		cmd := createCommand(entities.ProductBenefitCard)
		cmd.Enrollment = "mat-1"
		cmd.MarginType = 1
		if _, err := f.uc.CreateContract(ctx, cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := f.uc.CreateContract(ctx, cmd)
		if !errors.Is(err, ErrDuplicateActiveContract) {
			t.Fatalf("expected ErrDuplicateActiveContract, got %v", err)
		}

		cmd.MarginType = 2
		if _, err := f.uc.CreateContract(ctx, cmd); err != nil {
			t.Fatalf("other margin type should be allowed: %v", err)
		}
	})
}

func TestContractUseCase_BeginFormalization(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.uc.BeginFormalization(ctx, "missing", "op")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAguardaAverbacao)
		_, err := f.uc.BeginFormalization(ctx, c.Token, "op")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("illiterate client without witnesses", func(t *testing.T) {
		f := newFixture(t, nil)
		cmd := createCommand(entities.ProductINSS)
		cmd.Client.Escolaridade = entities.EscolaridadeAnalfabeto
		cmd.RogadoID = "rogado-1"
		cmd.Witnesses = []entities.Witness{{Name: "Joao", CPF: "111"}}
		c, err := f.uc.CreateContract(ctx, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = f.uc.BeginFormalization(ctx, c.Token, "op")
		if !errors.Is(err, ErrMissingWitness) {
			t.Fatalf("expected ErrMissingWitness, got %v", err)
		}
		if got := f.get(t, c.Token).Status; got != entities.StatusDigitacao {
			t.Fatalf("status should not change, got %s", got)
		}
	})

	t.Run("success is idempotent", func(t *testing.T) {
		f := newFixture(t, nil)
		c, _ := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS))
		f.shortener.EXPECT().Shorten(gomock.Any(), formURL+"/"+c.Token).Return("https://sho.rt/a", nil).Times(1)

		link, err := f.uc.BeginFormalization(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.URL != "https://sho.rt/a" || link.RogadoURL != "" {
			t.Fatalf("unexpected link: %+v", link)
		}
		if link.Contract.Status != entities.StatusAguardaEnvioLink || link.Contract.LinkCreatedAt == nil {
			t.Fatalf("unexpected contract: %+v", link.Contract)
		}

		again, err := f.uc.BeginFormalization(ctx, c.Token, "op")
		if err != nil || again.URL != link.URL {
			t.Fatalf("expected same link, got %+v / %v", again, err)
		}
		f.assertHistory(t, c.Token, entities.StatusDigitacao, entities.StatusAguardaEnvioLink)
	})

	t.Run("illiterate client gets rogado link", func(t *testing.T) {
		f := newFixture(t, nil)
		cmd := createCommand(entities.ProductINSS)
		cmd.Client.Escolaridade = entities.EscolaridadeAnalfabeto
		cmd.EnvelopeToken = "env-1"
		cmd.RogadoID = "rogado-1"
		cmd.Witnesses = []entities.Witness{{Name: "Joao", CPF: "111"}, {Name: "Ana", CPF: "222"}}
		c, _ := f.uc.CreateContract(ctx, cmd)

		f.shortener.EXPECT().Shorten(gomock.Any(), formURL+"/env-1").Return("https://sho.rt/a", nil)
		f.shortener.EXPECT().Shorten(gomock.Any(), formURL+"/env-1/rogado").Return("https://sho.rt/r", nil)

		link, err := f.uc.BeginFormalization(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.RogadoURL != "https://sho.rt/r" || link.Contract.RogadoFormalizationURL != "https://sho.rt/r" {
			t.Fatalf("unexpected link: %+v", link)
		}
	})

	t.Run("shortener unavailable", func(t *testing.T) {
		f := newFixture(t, nil)
		c, _ := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS))
		f.shortener.EXPECT().Shorten(gomock.Any(), gomock.Any()).Return("", errors.New("dial tcp: timeout"))

		_, err := f.uc.BeginFormalization(ctx, c.Token, "op")
		if !errors.Is(err, failure.ErrTransientExternal) {
			t.Fatalf("expected transient error, got %v", err)
		}
		if got := f.get(t, c.Token).Status; got != entities.StatusDigitacao {
			t.Fatalf("status should not change, got %s", got)
		}
	})
}

func TestContractUseCase_SendFormalizationLink(t *testing.T) {
	ctx := context.Background()

	formalized := func(t *testing.T, f *fixture) entities.Contract {
		c, _ := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS))
		f.shortener.EXPECT().Shorten(gomock.Any(), gomock.Any()).Return("https://sho.rt/a", nil)
		if _, err := f.uc.BeginFormalization(ctx, c.Token, "op"); err != nil {
			t.Fatalf("begin formalization: %v", err)
		}
		return c
	}

	t.Run("before link generation", func(t *testing.T) {
		f := newFixture(t, nil)
		c, _ := f.uc.CreateContract(ctx, createCommand(entities.ProductINSS))
		_, err := f.uc.SendFormalizationLink(ctx, c.Token, "op")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("sms failure keeps status", func(t *testing.T) {
		f := newFixture(t, nil)
		c := formalized(t, f)
		f.sms.EXPECT().Send(gomock.Any(), "11987654321", gomock.Any()).Return(failure.Transient("sms", errors.New("503")))

		_, err := f.uc.SendFormalizationLink(ctx, c.Token, "op")
		if !errors.Is(err, failure.ErrTransientExternal) {
			t.Fatalf("expected transient error, got %v", err)
		}
		if got := f.get(t, c.Token).Status; got != entities.StatusAguardaEnvioLink {
			t.Fatalf("status should not change, got %s", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, nil)
		c := formalized(t, f)
		f.sms.EXPECT().Send(gomock.Any(), "11987654321", "Banco Teste: acesse https://sho.rt/a para formalizar o seu contrato.").Return(nil).Times(1)

		out, err := f.uc.SendFormalizationLink(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusAndamentoFormalizacao {
			t.Fatalf("unexpected status %s", out.Status)
		}
		if _, err := f.uc.SendFormalizationLink(ctx, c.Token, "op"); err != nil {
			t.Fatalf("second send should be a no-op: %v", err)
		}
		f.assertHistory(t, c.Token, entities.StatusDigitacao, entities.StatusAguardaEnvioLink, entities.StatusAndamentoFormalizacao)
	})
}

func TestContractUseCase_SubmitExternalProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("not submittable", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusDigitacao)
		_, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("bureau approves", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{
			ResponseID: "r-1", Sequence: 1, Status: entities.BureauStatusOK, ReturnCode: "00",
			MarginValue: decimal.NewFromInt(450), LiquidValue: decimal.NewFromInt(3000),
		}, nil).Times(1)

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusAguardaAverbacao || out.BureauSequence != 1 {
			t.Fatalf("unexpected contract: %+v", out)
		}
		details, _ := f.store.ListDetails(ctx, c.Token)
		if !details[0].IN100Returned || !details[0].MarginValue.Equal(decimal.NewFromInt(450)) {
			t.Fatalf("detail not refreshed: %+v", details[0])
		}
		if details[0].Status != entities.StatusAguardaAverbacao {
			t.Fatalf("detail status not synced: %s", details[0].Status)
		}
		snap, ok, _ := f.store.GetBureauSnapshot(ctx, testBenefit)
		if !ok || snap.ResponseID != "r-1" {
			t.Fatalf("snapshot not stored: %+v", snap)
		}

		again, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || again.Version != out.Version {
			t.Fatalf("resubmission should be a no-op, got %+v / %v", again, err)
		}
		f.assertHistory(t, c.Token, entities.StatusAndamentoFormalizacao, entities.StatusAguardaAverbacao)
	})

	t.Run("no data is final", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{
			ResponseID: "r-1", Status: entities.BureauStatusDataNotAvailable, ReturnCode: entities.BureauCodeNoData,
		}, nil)

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusReprovadoConsultaDataprev || out.PendingRetryID != "" {
			t.Fatalf("unexpected contract: %+v", out)
		}
		attempts, _ := f.store.ListByContract(ctx, c.Token)
		if len(attempts) != 0 {
			t.Fatalf("no retry expected, got %d attempts", len(attempts))
		}
	})

	t.Run("ineligible code not retried", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{
			ResponseID: "r-1", Status: entities.BureauStatusBlocked, ReturnCode: "12",
		}, nil)

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || out.Status != entities.StatusReprovadoConsultaDataprev {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
	})

	t.Run("timeout starts a retry series", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{}, context.DeadlineExceeded)

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusAguardandoRetornoIN100 || out.PendingRetryID == "" {
			t.Fatalf("unexpected contract: %+v", out)
		}
		attempts, _ := f.store.ListByContract(ctx, c.Token)
		if len(attempts) != 2 {
			t.Fatalf("expected 2 attempt rows, got %d", len(attempts))
		}
		pending, _ := f.store.GetByID(ctx, out.PendingRetryID)
		if !pending.Pending() || pending.Attempt != 2 || !pending.ProximaTentativaEm.Equal(f.clock().Add(defaultRule().Interval())) {
			t.Fatalf("unexpected pending attempt: %+v", pending)
		}

		again, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || again.Version != out.Version {
			t.Fatalf("resubmission while waiting should be a no-op, got %+v / %v", again, err)
		}
	})

	t.Run("retry disabled goes to manual review", func(t *testing.T) {
		params := defaultParams()
		p := params[entities.ProductINSS]
		p.Retry = entities.RetryRule{}
		params[entities.ProductINSS] = p
		f := newFixture(t, params)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{}, errors.New("connection reset"))

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || out.Status != entities.StatusPendenteRevisaoManual || out.PendingRetryID != "" {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		attempts, _ := f.store.ListByContract(ctx, c.Token)
		if len(attempts) != 1 || attempts[0].Outcome != entities.RetryOutcomeExhausted {
			t.Fatalf("unexpected attempts: %+v", attempts)
		}
	})

	t.Run("hub accepts", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductPortability, entities.StatusAndamentoFormalizacao)
		f.hub.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p interfaces.ProposalSubmission) (interfaces.ProposalResult, error) {
				if p.ContractToken != c.Token || len(p.Details) != 1 {
					t.Fatalf("unexpected submission: %+v", p)
				}
				return interfaces.ProposalResult{Accepted: true, DocumentKey: "doc-1"}, nil
			})

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || out.Status != entities.StatusAguardaAverbacao {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		details, _ := f.store.ListDetails(ctx, c.Token)
		if details[0].HubDocumentKey != "doc-1" {
			t.Fatalf("hub key not stored: %+v", details[0])
		}
	})

	t.Run("hub resubmission after recalculation", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductPortability, entities.StatusAndamentoFormalizacao)
		f.hub.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).
			Return(interfaces.ProposalResult{Accepted: true, DocumentKey: "doc-1"}, nil).Times(2)

		if _, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op"); err != nil {
			t.Fatalf("first submit: %v", err)
		}
		if _, err := f.uc.RequestRecalculation(ctx, c.Token, "op"); err != nil {
			t.Fatalf("recalculation: %v", err)
		}
		if _, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{ResponseID: "rc-1", Sequence: 1, Status: entities.BureauStatusOK}); err != nil {
			t.Fatalf("recalculation return: %v", err)
		}

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || out.Status != entities.StatusAguardaAverbacao {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		f.assertHistory(t, c.Token,
			entities.StatusAndamentoFormalizacao, entities.StatusAguardaAverbacao, entities.StatusAguardandoIN100Recalculo,
			entities.StatusRetornoIN100Recalculo, entities.StatusAguardaAverbacao)
	})

	t.Run("applied hub event from another status", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductPortability, entities.StatusAndamentoFormalizacao)
		moved := c
		moved.Version = 2
		err := f.store.Commit(ctx, interfaces.ContractWrite{
			Contract:        moved,
			ExpectedVersion: 1,
			IdempotencyKey:  eventKey(c.Token, entities.StatusAguardaAverbacao, submissionRound("doc-1", 2)),
		})
		if err != nil {
			t.Fatalf("seed event: %v", err)
		}
		f.hub.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).Return(interfaces.ProposalResult{Accepted: true, DocumentKey: "doc-1"}, nil)

		_, err = f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if !errors.Is(err, ErrEventAlreadyApplied) {
			t.Fatalf("expected ErrEventAlreadyApplied, got %v", err)
		}
		if !errors.Is(err, failure.ErrConsistency) {
			t.Fatalf("expected a consistency error, got %v", err)
		}
	})

	t.Run("hub rejects", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductPortabilityRefinancing, entities.StatusAndamentoFormalizacao)
		f.hub.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).Return(interfaces.ProposalResult{
			Accepted: false, RejectionCode: "INVALID_CET", RejectionReason: "CET acima do permitido",
		}, nil)

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil || out.Status != entities.StatusReprovado {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		h, _ := f.store.ListStatusHistory(ctx, c.Token)
		if h[len(h)-1].Description != "CET acima do permitido" {
			t.Fatalf("unexpected description %q", h[len(h)-1].Description)
		}
	})

	t.Run("hub unavailable keeps status", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductPortability, entities.StatusAndamentoFormalizacao)
		f.hub.EXPECT().SubmitProposal(gomock.Any(), gomock.Any()).Return(interfaces.ProposalResult{}, failure.Transient("signature hub", errors.New("502")))

		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusAndamentoFormalizacao || out.PendingRetryID == "" {
			t.Fatalf("unexpected contract: %+v", out)
		}
		f.assertHistory(t, c.Token, entities.StatusAndamentoFormalizacao)
	})
}

func TestContractUseCase_DispatchSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("enqueues", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		queue := mock_interfaces.NewMockITaskQueue(gomock.NewController(t))
		f.uc.queue = queue
		queue.EXPECT().Enqueue("submit:"+c.Token, gomock.Any()).Return(nil)

		if err := f.uc.DispatchSubmission(ctx, c.Token, "op"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("illegal status is refused before enqueue", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusDigitacao)
		f.uc.queue = mock_interfaces.NewMockITaskQueue(gomock.NewController(t))

		err := f.uc.DispatchSubmission(ctx, c.Token, "op")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("runs inline without queue", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{ResponseID: "r", Sequence: 1, Status: entities.BureauStatusOK}, nil)

		if err := f.uc.DispatchSubmission(ctx, c.Token, "op"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := f.get(t, c.Token).Status; got != entities.StatusAguardaAverbacao {
			t.Fatalf("unexpected status %s", got)
		}
	})
}

func TestContractUseCase_RecordBureauReturn(t *testing.T) {
	ctx := context.Background()

	waiting := func(t *testing.T, f *fixture) entities.Contract {
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{}, context.DeadlineExceeded)
		out, err := f.uc.SubmitExternalProposal(ctx, c.Token, "op")
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		return out
	}

	t.Run("invalid payload", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.uc.RecordBureauReturn(ctx, "tok", entities.BureauResult{ResponseID: "r", Status: "weird"})
		if !errors.Is(err, ErrInvalidBureauReturn) {
			t.Fatalf("expected ErrInvalidBureauReturn, got %v", err)
		}
		_, err = f.uc.RecordBureauReturn(ctx, "tok", entities.BureauResult{Status: entities.BureauStatusOK})
		if !errors.Is(err, ErrInvalidBureauReturn) {
			t.Fatalf("expected ErrInvalidBureauReturn, got %v", err)
		}
	})

	t.Run("callback without sequence is invalid", func(t *testing.T) {
		f := newFixture(t, nil)
		c := waiting(t, f)

		_, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{ResponseID: "cb-1", Status: entities.BureauStatusOK})
		if !errors.Is(err, ErrInvalidBureauReturn) {
			t.Fatalf("expected ErrInvalidBureauReturn, got %v", err)
		}
		if errors.Is(err, ErrStaleCallback) {
			t.Fatalf("missing sequence must not be reported as stale")
		}
		if got := f.get(t, c.Token).Status; got != entities.StatusAguardandoRetornoIN100 {
			t.Fatalf("status changed to %s", got)
		}
	})

	t.Run("approval resolves the waiting contract", func(t *testing.T) {
		f := newFixture(t, nil)
		c := waiting(t, f)
		pendingID := c.PendingRetryID

		out, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{
			ResponseID: "cb-1", Sequence: 3, Status: entities.BureauStatusOK, MarginValue: decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusAguardaAverbacao || out.PendingRetryID != "" || out.BureauSequence != 3 {
			t.Fatalf("unexpected contract: %+v", out)
		}
		a, _ := f.store.GetByID(ctx, pendingID)
		if a.Pending() || a.Outcome != entities.RetryOutcomeSuperseded {
			t.Fatalf("pending attempt not superseded: %+v", a)
		}

		replay, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{
			ResponseID: "cb-1", Sequence: 3, Status: entities.BureauStatusOK,
		})
		if err != nil || replay.Version != out.Version {
			t.Fatalf("replay should be a no-op, got %+v / %v", replay, err)
		}
		f.assertHistory(t, c.Token,
			entities.StatusAndamentoFormalizacao, entities.StatusAguardandoRetornoIN100, entities.StatusAguardaAverbacao)
	})

	t.Run("older sequence is stale", func(t *testing.T) {
		f := newFixture(t, nil)
		c := waiting(t, f)
		if _, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{ResponseID: "cb-5", Sequence: 5, Status: entities.BureauStatusOK}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{ResponseID: "cb-3", Sequence: 3, Status: entities.BureauStatusIneligible})
		if !errors.Is(err, ErrStaleCallback) {
			t.Fatalf("expected ErrStaleCallback, got %v", err)
		}
		if got := f.get(t, c.Token).Status; got != entities.StatusAguardaAverbacao {
			t.Fatalf("stale callback changed status to %s", got)
		}
	})

	t.Run("retryable code only refreshes the detail", func(t *testing.T) {
		f := newFixture(t, nil)
		c := waiting(t, f)

		out, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{
			ResponseID: "cb-1", Sequence: 1, Status: entities.BureauStatusIneligible, ReturnCode: "05", MarginValue: decimal.NewFromInt(7),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.StatusAguardandoRetornoIN100 || out.PendingRetryID != c.PendingRetryID {
			t.Fatalf("unexpected contract: %+v", out)
		}
		details, _ := f.store.ListDetails(ctx, c.Token)
		if !details[0].MarginValue.Equal(decimal.NewFromInt(7)) {
			t.Fatalf("detail not refreshed: %+v", details[0])
		}
	})

	t.Run("recalculation", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAguardaAverbacao)

		if _, err := f.uc.RequestRecalculation(ctx, c.Token, "op"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{ResponseID: "rc-1", Sequence: 1, Status: entities.BureauStatusOK})
		if err != nil || out.Status != entities.StatusRetornoIN100Recalculo {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
	})

	t.Run("terminal contract", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusCancelado)
		_, err := f.uc.RecordBureauReturn(ctx, c.Token, entities.BureauResult{ResponseID: "x", Sequence: 1, Status: entities.BureauStatusOK})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestContractUseCase_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("endorsement requires averbacao", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		_, err := f.uc.CompleteEndorsement(ctx, c.Token, "op", true, "")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("endorsement approved", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAguardaAverbacao)
		out, err := f.uc.CompleteEndorsement(ctx, c.Token, "op", true, "")
		if err != nil || out.Status != entities.StatusFinalizado {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		again, err := f.uc.CompleteEndorsement(ctx, c.Token, "op", true, "")
		if err != nil || again.Version != out.Version {
			t.Fatalf("repeat should be a no-op, got %+v / %v", again, err)
		}
	})

	t.Run("endorsement refused", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAguardaAverbacao)
		out, err := f.uc.CompleteEndorsement(ctx, c.Token, "op", false, "margem insuficiente")
		if err != nil || out.Status != entities.StatusRecusadaAverbacao {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
	})

	t.Run("cancel closes pending retry", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		f.bureau.EXPECT().Query(gomock.Any(), testBenefit).Return(entities.BureauResult{}, context.DeadlineExceeded)
		waiting, _ := f.uc.SubmitExternalProposal(ctx, c.Token, "op")

		out, err := f.uc.Cancel(ctx, c.Token, "op", "")
		if err != nil || out.Status != entities.StatusCancelado || out.PendingRetryID != "" {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		a, _ := f.store.GetByID(ctx, waiting.PendingRetryID)
		if a.Outcome != entities.RetryOutcomeSuperseded {
			t.Fatalf("pending attempt not closed: %+v", a)
		}

		_, err = f.uc.Reject(ctx, c.Token, "op", entities.StatusReprovado, "x")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("terminal contract must not move, got %v", err)
		}
	})

	t.Run("reject with a non rejection status", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusDigitacao)
		_, err := f.uc.Reject(ctx, c.Token, "op", entities.StatusFinalizado, "x")
		if !errors.Is(err, ErrInvalidRejection) {
			t.Fatalf("expected ErrInvalidRejection, got %v", err)
		}
	})

	t.Run("reject", func(t *testing.T) {
		f := newFixture(t, nil)
		c := f.seed(t, entities.ProductINSS, entities.StatusAndamentoFormalizacao)
		out, err := f.uc.Reject(ctx, c.Token, "mesa", entities.StatusReprovadaMesaFormalizacao, "documento ilegível")
		if err != nil || out.Status != entities.StatusReprovadaMesaFormalizacao {
			t.Fatalf("unexpected result: %+v / %v", out, err)
		}
		h, _ := f.store.ListStatusHistory(ctx, c.Token)
		if h[1].CreatedBy != "mesa" || h[1].Description != "documento ilegível" {
			t.Fatalf("unexpected entry: %+v", h[1])
		}
	})
}

func TestContractUseCase_Concurrency(t *testing.T) {
	ctx := context.Background()
	stored := entities.Contract{Token: "tok", ProductType: entities.ProductINSS, Status: entities.StatusDigitacao, Version: 4}

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(ContractDeps{Repo: repo}, OrchestratorConfig{})

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(stored, nil)
		repo.EXPECT().ListDetails(gomock.Any(), "tok").Return(nil, nil)
		repo.EXPECT().ListStatusHistory(gomock.Any(), "tok").Return(nil, nil)
		repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, writes ...interfaces.ContractWrite) error {
			if len(writes) != 1 || writes[0].ExpectedVersion != 4 || writes[0].Contract.Version != 5 {
				t.Fatalf("unexpected write: %+v", writes)
			}
			return interfaces.ErrVersionConflict
		})

		_, err := uc.Cancel(ctx, "tok", "op", "")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("lock not acquired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		locker := mock_interfaces.NewMockIContractLocker(ctrl)
		uc := NewContractUseCase(ContractDeps{Repo: repo, Locker: locker}, OrchestratorConfig{})

		locker.EXPECT().Lock(gomock.Any(), "contract:tok", gomock.Any()).Return(nil, interfaces.ErrLockNotAcquired)

		_, err := uc.Cancel(ctx, "tok", "op", "")
		if !errors.Is(err, ErrContractBusy) {
			t.Fatalf("expected ErrContractBusy, got %v", err)
		}
	})

	t.Run("repository error is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(ContractDeps{Repo: repo}, OrchestratorConfig{})

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Contract{}, errors.New("db"))

		_, err := uc.GetByToken(ctx, "tok")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

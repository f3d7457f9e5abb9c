package usecase

import (
	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"
	"context"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=batch_usecase.go -destination=../adapter/http/handlers/mocks/batch_usecase_mock.go -package=mocks

// MaxBatchProposals bounds a batch so that its creation fits in one store transaction.
const MaxBatchProposals = 20

// CreateBatchCommand is a multi proposal request of one client: several portability
// proposals, or portability bundled with refinancing, typed together.
type CreateBatchCommand struct {
	ProductType   entities.ProductType
	Client        entities.Client
	Actor         string
	CorbanID      string
	BenefitNumber string
	EnvelopeToken string
	RogadoID      string
	Witnesses     []entities.Witness
	Proposals     []entities.ProposalTerms
}

type BatchResult struct {
	Contracts      []entities.Contract
	PortabilityIDs []string
	RefinancingIDs []string
}

// IBatchUseCase creates every contract of a multi proposal request, or none.
type IBatchUseCase interface {
	CreateBatch(ctx context.Context, cmd CreateBatchCommand) (BatchResult, error)
}

type BatchUseCase struct {
	contracts *ContractUseCase
}

var _ IBatchUseCase = (*BatchUseCase)(nil)

func NewBatchUseCase(contracts *ContractUseCase) *BatchUseCase {
	return &BatchUseCase{contracts: contracts}
}

func (b *BatchUseCase) CreateBatch(ctx context.Context, cmd CreateBatchCommand) (BatchResult, error) {
	u := b.contracts
	cmd.Actor = strings.TrimSpace(cmd.Actor)
	cmd.Client.ID = strings.TrimSpace(cmd.Client.ID)
	cmd.BenefitNumber = strings.TrimSpace(cmd.BenefitNumber)
	cmd.EnvelopeToken = strings.TrimSpace(cmd.EnvelopeToken)
	u.log.Info("[batch][usecase] create start",
		zap.String("client_id", cmd.Client.ID), zap.Stringer("product", cmd.ProductType), zap.Int("proposals", len(cmd.Proposals)))

	if !isHubProduct(cmd.ProductType) {
		return BatchResult{}, ErrInvalidBatch.WithReason("lote aceita apenas portabilidade ou portabilidade com refinanciamento")
	}
	if len(cmd.Proposals) == 0 {
		return BatchResult{}, ErrInvalidBatch.WithReason("nenhuma proposta informada")
	}
	if len(cmd.Proposals) > MaxBatchProposals {
		return BatchResult{}, ErrInvalidBatch.WithReason("máximo de %d propostas por lote", MaxBatchProposals)
	}
	single := CreateContractCommand{
		ProductType:   cmd.ProductType,
		Client:        cmd.Client,
		Actor:         cmd.Actor,
		CorbanID:      cmd.CorbanID,
		BenefitNumber: cmd.BenefitNumber,
		EnvelopeToken: cmd.EnvelopeToken,
		RogadoID:      cmd.RogadoID,
		Witnesses:     cmd.Witnesses,
	}
	if err := validateCreate(single); err != nil {
		return BatchResult{}, err
	}

	params, err := u.parameters(ctx, cmd.ProductType)
	if err != nil {
		return BatchResult{}, err
	}
	for _, p := range cmd.Proposals {
		if err := ValidateRefinChange(cmd.ProductType, p); err != nil {
			return BatchResult{}, err
		}
		if err := ValidateMinimumValue(cmd.ProductType, p, params.MinimumValue); err != nil {
			return BatchResult{}, err
		}
	}

	var result BatchResult
	err = u.withLock(ctx, clientLockKey(cmd.Client.ID), func(ctx context.Context) error {
		snapshot, found, err := u.repo.GetBureauSnapshot(ctx, cmd.BenefitNumber)
		if err != nil {
			return err
		}
		var bureau *entities.BureauResult
		if found {
			bureau = &snapshot
		}
		if err := ValidateNegativeMargin(bureau, len(cmd.Proposals)); err != nil {
			return err
		}

		existing, err := u.repo.ListByClient(ctx, cmd.Client.ID)
		if err != nil {
			return err
		}
		if err := CheckContractLimit(existing, cmd.ProductType, cmd.BenefitNumber, len(cmd.Proposals), params.ContractLimit()); err != nil {
			return err
		}

		if single.EnvelopeToken == "" {
			single.EnvelopeToken = u.newID()
		}
		writes := make([]interfaces.ContractWrite, 0, len(cmd.Proposals))
		for i, p := range cmd.Proposals {
			writes = append(writes, u.newContractWrite(single, p, i == 0))
		}
		if err := u.repo.Commit(ctx, writes...); err != nil {
			return err
		}

		for _, w := range writes {
			result.Contracts = append(result.Contracts, w.Contract)
			for _, d := range w.Details {
				switch d.Kind {
				case entities.DetailPortability:
					result.PortabilityIDs = append(result.PortabilityIDs, d.ID)
				case entities.DetailRefinancing:
					result.RefinancingIDs = append(result.RefinancingIDs, d.ID)
				}
			}
		}
		return nil
	})
	if err != nil {
		u.log.Warn("[batch][usecase] create rejected", zap.String("client_id", cmd.Client.ID), zap.Error(err))
		return BatchResult{}, err
	}
	u.log.Info("[batch][usecase] batch created", zap.String("client_id", cmd.Client.ID), zap.Int("contracts", len(result.Contracts)))
	return result, nil
}

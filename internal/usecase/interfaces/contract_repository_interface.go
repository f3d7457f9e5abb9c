package interfaces

import (
	"consig_origination/internal/domain/entities"
	"context"
	"errors"
)

//go:generate mockgen -source=contract_repository_interface.go -destination=mocks/contract_repository_interface_mock.go -package=mock_interfaces

var (
	// ErrVersionConflict is returned by Commit when a contract changed since it was read.
	ErrVersionConflict = errors.New("contract version conflict")
	// ErrAlreadyApplied is returned by Commit when the idempotency key was already recorded.
	ErrAlreadyApplied = errors.New("event already applied")
)

// ContractWrite is one contract mutation. Everything in it is persisted together:
// the contract row (guarded by ExpectedVersion), the detail rows, the status history
// entries, the idempotency key, the retry attempt rows and the bureau snapshot.
//
// ExpectedVersion == 0 creates the contract and fails when the token already exists.
type ContractWrite struct {
	Contract        entities.Contract
	ExpectedVersion int64
	Details         []entities.ProductDetail
	CloseEntry      *entities.StatusHistoryEntry
	AppendEntry     *entities.StatusHistoryEntry
	IdempotencyKey  string
	RetryAttempts   []entities.RetryAttempt
	BureauSnapshot  *entities.BureauResult
}

// IContractRepository abstracts persistence of contracts and everything they own.
//
// The orchestrator must be able to:
//   - commit a status change and its history entries in one step
//   - commit several new contracts at once (batch creation)
//   - rebuild the lifecycle of a contract from its history
//
// Getters return the zero value (empty Token) when the contract does not exist.
type IContractRepository interface {
	Commit(ctx context.Context, writes ...ContractWrite) error
	GetByToken(ctx context.Context, token string) (entities.Contract, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Contract, error)
	ListDetails(ctx context.Context, token string) ([]entities.ProductDetail, error)
	ListStatusHistory(ctx context.Context, token string) ([]entities.StatusHistoryEntry, error)
	IsApplied(ctx context.Context, idempotencyKey string) (bool, error)
	GetBureauSnapshot(ctx context.Context, benefitNumber string) (entities.BureauResult, bool, error)
}

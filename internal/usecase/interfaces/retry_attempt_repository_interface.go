package interfaces

import (
	"consig_origination/internal/domain/entities"
	"context"
	"time"
)

//go:generate mockgen -source=retry_attempt_repository_interface.go -destination=mocks/retry_attempt_repository_interface_mock.go -package=mock_interfaces

// IRetryAttemptRepository reads teimosinha rows. Rows are written through
// IContractRepository.Commit together with the contract they belong to.
type IRetryAttemptRepository interface {
	GetByID(ctx context.Context, id string) (entities.RetryAttempt, error)
	// ListDue returns up to limit pending attempts due at or before now, earliest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]entities.RetryAttempt, error)
	// ListByContract returns every attempt of the contract, newest first.
	ListByContract(ctx context.Context, token string) ([]entities.RetryAttempt, error)
}

package interfaces

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=lock_interface.go -destination=mocks/lock_interface_mock.go -package=mock_interfaces

var ErrLockNotAcquired = errors.New("lock not acquired")

// IContractLocker serializes work on one key (a contract token or a client id) across
// every process sharing the lock backend. Lock waits until the key is free or ctx is
// done; the returned func releases the lock.
type IContractLocker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func(), err error)
}

// ITaskQueue runs work in the background, outside the request that triggered it.
type ITaskQueue interface {
	Enqueue(name string, task func(ctx context.Context) error) error
}

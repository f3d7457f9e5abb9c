package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"consig_origination/internal/usecase/interfaces"
)

// MemoryLocker serializes keys inside one process. The ttl is ignored: a lock is held
// until released.
type MemoryLocker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

var _ interfaces.IContractLocker = (*MemoryLocker)(nil)

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{held: map[string]chan struct{}{}}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string, _ time.Duration) (func(), error) {
	for {
		l.mu.Lock()
		done, busy := l.held[key]
		if !busy {
			done = make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()
			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.held, key)
					l.mu.Unlock()
					close(done)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", interfaces.ErrLockNotAcquired, key, ctx.Err())
		case <-done:
		}
	}
}

package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"consig_origination/internal/infrastructure/config"
	"consig_origination/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedisLocker(t *testing.T) (*miniredis.Miniredis, *RedisLocker) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisLocker(client, zap.NewNop())
}

func lockers(t *testing.T) map[string]interfaces.IContractLocker {
	_, redisLocker := setupRedisLocker(t)
	return map[string]interfaces.IContractLocker{
		"redis":  redisLocker,
		"memory": NewMemoryLocker(),
	}
}

func TestLocker_ExclusiveAccess(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			var inside, maxInside int32
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					unlock, err := l.Lock(ctx, "contract:abc", time.Minute)
					if !assert.NoError(t, err) {
						return
					}
					n := atomic.AddInt32(&inside, 1)
					for {
						m := atomic.LoadInt32(&maxInside)
						if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					unlock()
				}()
			}
			wg.Wait()
			assert.Equal(t, int32(1), maxInside)
		})
	}
}

func TestLocker_TimesOutWhileHeld(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			unlock, err := l.Lock(context.Background(), "client:1", time.Minute)
			require.NoError(t, err)
			defer unlock()

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_, err = l.Lock(ctx, "client:1", time.Minute)
			assert.ErrorIs(t, err, interfaces.ErrLockNotAcquired)

			other, err := l.Lock(context.Background(), "client:2", time.Minute)
			require.NoError(t, err)
			other()
		})
	}
}

func TestRedisLocker_ReleaseKeepsForeignLease(t *testing.T) {
	mr, l := setupRedisLocker(t)

	unlock, err := l.Lock(context.Background(), "contract:x", time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"contract:x"))

	// the lease expires and another owner takes the key
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set(keyPrefix+"contract:x", "someone-else"))

	unlock()
	got, err := mr.Get(keyPrefix + "contract:x")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLocker_TTLIsApplied(t *testing.T) {
	mr, l := setupRedisLocker(t)

	_, err := l.Lock(context.Background(), "contract:ttl", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, mr.TTL(keyPrefix+"contract:ttl"))
}

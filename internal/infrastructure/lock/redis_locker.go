package lock

import (
	"context"
	"fmt"
	"time"

	"consig_origination/internal/infrastructure/config"
	"consig_origination/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	keyPrefix    = "origination:lock:"
	pollInterval = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token, so a lock that
// expired and was taken by someone else is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// NewRedisClient creates the Redis client the locker runs on.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisLocker is a lease based lock shared by every replica of the service.
type RedisLocker struct {
	client *redis.Client
	logger *zap.Logger
}

var _ interfaces.IContractLocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{client: client, logger: logger}
}

func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %v", interfaces.ErrLockNotAcquired, key, ctx.Err())
			}
			return nil, err
		}
		if ok {
			return func() { l.release(redisKey, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", interfaces.ErrLockNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil && err != redis.Nil {
		l.logger.Warn("[lock][redis] release failed", zap.String("key", redisKey), zap.Error(err))
	}
}

package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumni-jobboard-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still holds our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisLocker is a Locker shared by every server process pointing at the
// same Redis. The TTL bounds how long a crashed holder can block a key.
type RedisLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	retry  time.Duration
	script *redis.Script
}

func NewRedisLocker(client *redis.Client, prefix string, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
		script: redis.NewScript(releaseScript),
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := key
	if l.prefix != "" {
		redisKey = l.prefix + ":" + key
	}
	token := uuid.NewString()

	logger.ExternalServiceCall("redis", "lock", "key", redisKey)
	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			logger.ExternalServiceResult("redis", "lock", err, "key", redisKey)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, errors.Join(ErrNotAcquired, ctxErr)
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", redisKey, err)
		}
		if ok {
			logger.ExternalServiceResult("redis", "lock", nil, "key", redisKey)
			break
		}

		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		case <-timer.C:
		}
	}

	return func() {
		// Release must run even if the request context was cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := l.script.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
			logger.Warn("failed to release redis lock", "key", redisKey, "error", err)
		}
	}, nil
}

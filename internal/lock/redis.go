package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/you-humble/cimco-parts/internal/model"
)

const DefaultKey = "cimco-parts:analysis:run"

// releaseScript deletes the key only if it still holds our token, so an
// expired lock taken over by another process is left alone.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

type redisLocker struct {
	client Client
	key    string
	ttl    time.Duration
}

// NewRedisLocker returns a cross-process run lock. ttl bounds how long a
// crashed holder can block other runs.
func NewRedisLocker(client Client, key string, ttl time.Duration) *redisLocker {
	if key == "" {
		key = DefaultKey
	}
	return &redisLocker{client: client, key: key, ttl: ttl}
}

func (l *redisLocker) Acquire(ctx context.Context) (func(context.Context) error, error) {
	const op = "lock.redis.Acquire"

	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStoreUnavailable, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrRunInProgress)
	}

	release := func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Err(); err != nil {
			return fmt.Errorf("lock.redis.release: %w", err)
		}
		return nil
	}

	return release, nil
}

package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/internal/model"
)

// memClient emulates the two commands the locker uses.
type memClient struct {
	mu   sync.Mutex
	data map[string]any
	err  error
}

func newMemClient() *memClient { return &memClient{data: map[string]any{}} }

func (c *memClient) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return redis.NewBoolResult(false, c.err)
	}
	if _, ok := c.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	c.data[key] = value
	return redis.NewBoolResult(true, nil)
}

func (c *memClient) Eval(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data[keys[0]] == args[0] {
		delete(c.data, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedisLocker(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newMemClient()
	a := NewRedisLocker(client, "", time.Minute)
	b := NewRedisLocker(client, "", time.Minute)

	release, err := a.Acquire(ctx)
	require.NoError(t, err)

	_, err = b.Acquire(ctx)
	assert.ErrorIs(t, err, model.ErrRunInProgress)

	require.NoError(t, release(ctx))

	releaseB, err := b.Acquire(ctx)
	require.NoError(t, err)

	// a's token is gone; releasing again must not drop b's lock.
	require.NoError(t, release(ctx))
	_, err = a.Acquire(ctx)
	assert.ErrorIs(t, err, model.ErrRunInProgress)

	require.NoError(t, releaseB(ctx))
}

func TestRedisLockerUnavailable(t *testing.T) {
	t.Parallel()

	client := newMemClient()
	client.err = errors.New("dial tcp: connection refused")

	_, err := NewRedisLocker(client, "k", time.Minute).Acquire(context.Background())
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}

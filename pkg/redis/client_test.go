package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type mockCmdable struct {
	values      map[string]int64
	expireCalls []string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: map[string]int64{}}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.values[key]++
	return redis.NewIntResult(m.values[key], nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, key)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			delete(m.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestFixedWindowAllow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	allowed, count, err := client.FixedWindowAllow(ctx, "scope", 2, time.Second)
	require.NoError(t, err)
	require.True(t, allowed)
	require.EqualValues(t, 1, count)
	require.Len(t, mock.expireCalls, 1)

	allowed, count, err = client.FixedWindowAllow(ctx, "scope", 2, time.Second)
	require.NoError(t, err)
	require.True(t, allowed)
	require.EqualValues(t, 2, count)
	require.Len(t, mock.expireCalls, 1)

	allowed, _, err = client.FixedWindowAllow(ctx, "scope", 2, time.Second)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestLoginLimiter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mock := newMockCmdable()
	limiter := NewLoginLimiter(&Client{store: mock}, 1, time.Minute)

	ok, err := limiter.Allow(ctx, "LIB-00000001")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "LIB-00000001")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, limiter.Reset(ctx, "LIB-00000001"))
	ok, err = limiter.Allow(ctx, "LIB-00000001")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, mock.values, "libralite:rate_limit:login:LIB-00000001")
}

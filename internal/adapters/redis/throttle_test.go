package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "staybook/internal/adapters/redis"
)

func TestThrottle_BlocksAfterLimitUntilWindowEnds(t *testing.T) {
	mr := miniredis.RunT(t)
	th := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = th.Close() })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := th.Hit(ctx, "login:jdoe", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i)
	}
	ok, err := th.Hit(ctx, "login:jdoe", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("login:jdoe"))

	mr.FastForward(time.Minute + time.Second)
	ok, err = th.Hit(ctx, "login:jdoe", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestThrottle_Reset(t *testing.T) {
	mr := miniredis.RunT(t)
	th := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	_, _ = th.Hit(ctx, "k", 1, time.Minute)
	require.NoError(t, th.Reset(ctx, "k"))
	assert.False(t, mr.Exists("k"))

	ok, err := th.Hit(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestThrottle_FailsOpenWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	th := redisad.New(mr.Addr(), "", 0)
	mr.Close()

	ok, err := th.Hit(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
	assert.True(t, ok)
}

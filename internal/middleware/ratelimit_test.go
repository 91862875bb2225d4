package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit_EnvBypass(t *testing.T) {
	for _, env := range []string{"test", "development"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("APP_ENV", env)

			allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		})
	}
}

func TestCheckRateLimit_NilClient(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
	assert.Error(t, err)
}

func TestCheckRateLimit_Window(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	ctx := context.Background()
	const limit = 3

	for i := 0; i < limit; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "register", "ip:1.2.3.4", limit, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d within limit", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "register", "ip:1.2.3.4", limit, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Another caller has its own counter
	allowed, err = CheckRateLimit(ctx, rdb, "register", "ip:5.6.7.8", limit, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// The window expiring resets the counter
	mr.FastForward(2 * time.Minute)
	allowed, err = CheckRateLimit(ctx, rdb, "register", "ip:1.2.3.4", limit, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// newTestLimiter requires a running Redis on localhost:6379, the test is skipped otherwise.
func newTestLimiter(t *testing.T) *RedisLimiter {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, slog.Default())
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		value   string
		want    Rule
		wantErr bool
	}{
		{value: "100/1h", want: Rule{Key: "submit", Limit: 100, Window: time.Hour}},
		{value: " 60/1m ", want: Rule{Key: "submit", Limit: 60, Window: time.Minute}},
		{value: "100", wantErr: true},
		{value: "0/1h", wantErr: true},
		{value: "abc/1h", wantErr: true},
		{value: "10/forever", wantErr: true},
		{value: "10/-1s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := require.New(t)
			rule, err := ParseRule("submit", tt.value)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, rule)
		})
	}
}

func TestRedisLimiter_Allow_Until_Limit(t *testing.T) {
	req := require.New(t)
	limiter := newTestLimiter(t)
	rule := Rule{Key: "test", Limit: 3, Window: time.Minute}
	identifier := uuid.NewString()

	for i := 0; i < rule.Limit; i++ {
		decision, err := limiter.Allow(context.Background(), identifier, rule)
		req.NoError(err)
		req.True(decision.Allowed, fmt.Sprintf("hit %d", i+1))
	}

	decision, err := limiter.Allow(context.Background(), identifier, rule)
	req.NoError(err)
	req.False(decision.Allowed)
	req.Greater(decision.RetryAfter, time.Duration(0))
	req.LessOrEqual(decision.RetryAfter, rule.Window)
}

func TestRedisLimiter_Identifiers_Are_Independent(t *testing.T) {
	req := require.New(t)
	limiter := newTestLimiter(t)
	rule := Rule{Key: "test", Limit: 1, Window: time.Minute}
	first, second := uuid.NewString(), uuid.NewString()

	d, err := limiter.Allow(context.Background(), first, rule)
	req.NoError(err)
	req.True(d.Allowed)

	d, err = limiter.Allow(context.Background(), second, rule)
	req.NoError(err)
	req.True(d.Allowed)
}

func TestRedisLimiter_Fails_Open(t *testing.T) {
	req := require.New(t)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()
	limiter := NewRedisLimiter(client, slog.Default())

	decision, err := limiter.Allow(context.Background(), "anyone", Rule{Key: "test", Limit: 1, Window: time.Minute})

	req.Error(err)
	req.True(decision.Allowed)
}

func TestNoopLimiter_Allows_Everything(t *testing.T) {
	req := require.New(t)
	rule := Rule{Key: "test", Limit: 1, Window: time.Minute}
	for i := 0; i < 5; i++ {
		d, err := NoopLimiter{}.Allow(context.Background(), "anyone", rule)
		req.NoError(err)
		req.True(d.Allowed)
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=limiter.go -destination=../mocks/mock_limiter.go -package=mocks
// Package ratelimit throttles callers with Redis fixed-window counters
// (INCR, then EXPIRE on the first hit of the window).
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rule is a policy: at most Limit hits per Window for one identifier.
type Rule struct {
	Key    string
	Limit  int
	Window time.Duration
}

// Decision is the outcome of a single hit.
// RetryAfter is only set when the hit is refused.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type ILimiter interface {
	Allow(ctx context.Context, identifier string, rule Rule) (Decision, error)
}

// ParseRule reads "count/window", e.g. "100/1h" or "60/1m".
func ParseRule(key, value string) (Rule, error) {
	count, window, ok := strings.Cut(strings.TrimSpace(value), "/")
	if !ok {
		return Rule{}, fmt.Errorf("rate limit %q: expected count/window", value)
	}
	limit, err := strconv.Atoi(count)
	if err != nil || limit <= 0 {
		return Rule{}, fmt.Errorf("rate limit %q: count must be a positive integer", value)
	}
	d, err := time.ParseDuration(window)
	if err != nil || d <= 0 {
		return Rule{}, fmt.Errorf("rate limit %q: window must be a positive duration", value)
	}
	return Rule{Key: key, Limit: limit, Window: d}, nil
}

// RedisLimiter counts hits in Redis. On Redis errors it fails open, so an outage
// never blocks legitimate traffic; the error is still returned for logging.
type RedisLimiter struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisLimiter(client *redis.Client, log *slog.Logger) *RedisLimiter {
	return &RedisLimiter{client: client, log: log}
}

func (l *RedisLimiter) Allow(ctx context.Context, identifier string, rule Rule) (Decision, error) {
	key := "rl:" + rule.Key + ":" + identifier

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn("Rate limit INCR failed, failing open", "key", key, "error", err)
		return Decision{Allowed: true}, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, rule.Window).Err(); err != nil {
			l.log.Warn("Rate limit EXPIRE failed, failing open", "key", key, "error", err)
			// Without a TTL the key would block the identifier forever.
			l.client.Del(ctx, key)
			return Decision{Allowed: true}, err
		}
	}

	if int(count) <= rule.Limit {
		return Decision{Allowed: true}, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		ttl = rule.Window
	}
	return Decision{Allowed: false, RetryAfter: ttl}, nil
}

// NoopLimiter allows everything. Used when no Redis is configured.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string, Rule) (Decision, error) {
	return Decision{Allowed: true}, nil
}

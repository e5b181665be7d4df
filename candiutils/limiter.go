package candiutils

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/golangid/meetup/logger"
	"github.com/golangid/meetup/options"
)

// Limiter implementation of interfaces.Limiter, count failed attempt per key in a fixed window shared by all runtimes

type (
	// RedisLimiter count attempt using redis INCR with expiry
	RedisLimiter struct {
		pool    *redis.Pool
		options options.LimiterOptions
	}

	// NoopLimiter never limit
	NoopLimiter struct{}
)

// WithPrefixLimiter sets the prefix for keys
func WithPrefixLimiter(prefix string) options.LimiterOption {
	return func(o *options.LimiterOptions) {
		o.Prefix = prefix
	}
}

// WithTTLLimiter sets the window of each counter
func WithTTLLimiter(ttl time.Duration) options.LimiterOption {
	return func(o *options.LimiterOptions) {
		o.TTL = ttl
	}
}

// WithLimitLimiter sets max attempt in one window
func WithLimitLimiter(limit int) options.LimiterOption {
	return func(o *options.LimiterOptions) {
		o.Limit = limit
	}
}

// NewRedisLimiter constructor
func NewRedisLimiter(pool *redis.Pool, opts ...options.LimiterOption) *RedisLimiter {
	limiterOptions := options.LimiterOptions{
		Prefix: "ATTEMPT",
		TTL:    5 * time.Minute,
		Limit:  5,
	}
	for _, opt := range opts {
		opt(&limiterOptions)
	}
	return &RedisLimiter{pool: pool, options: limiterOptions}
}

func (r *RedisLimiter) key(key string) string {
	return fmt.Sprintf("%s:%s", r.options.Prefix, key)
}

// IsLimited true when attempt counter of key already reach limit
func (r *RedisLimiter) IsLimited(key string) bool {
	if r.options.Limit <= 0 {
		return false
	}

	conn := r.pool.Get()
	defer conn.Close()

	count, err := redis.Int64(conn.Do("GET", r.key(key)))
	if err != nil {
		return false
	}
	return count >= int64(r.options.Limit)
}

// Hit increment attempt counter, window start at first attempt
func (r *RedisLimiter) Hit(key string) int64 {
	conn := r.pool.Get()
	defer conn.Close()

	limitKey := r.key(key)
	incr, err := redis.Int64(conn.Do("INCR", limitKey))
	if err != nil {
		logger.LogE(err.Error())
		return 0
	}

	if incr == 1 && r.options.TTL > 0 {
		conn.Do("EXPIRE", limitKey, int(r.options.TTL.Seconds()))
	}
	return incr
}

// Reset method
func (r *RedisLimiter) Reset(key string) {
	conn := r.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", r.key(key)); err != nil {
		logger.LogE(err.Error())
	}
}

// Disconnect method, pool is owned by redis instance
func (r *RedisLimiter) Disconnect(ctx context.Context) error {
	return nil
}

// IsLimited method
func (NoopLimiter) IsLimited(string) bool { return false }

// Hit method
func (NoopLimiter) Hit(string) int64 { return 0 }

// Reset method
func (NoopLimiter) Reset(string) {}

// Disconnect method
func (NoopLimiter) Disconnect(context.Context) error { return nil }

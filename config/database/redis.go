package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/logger"
)

// RedisInstance redis connection pool
type RedisInstance struct {
	pool *redis.Pool
}

// Pool method
func (r *RedisInstance) Pool() *redis.Pool {
	return r.pool
}

// Health ping redis
func (r *RedisInstance) Health() map[string]error {
	conn := r.pool.Get()
	defer conn.Close()

	_, err := conn.Do("PING")
	return map[string]error{"redis": err}
}

// Disconnect close pool
func (r *RedisInstance) Disconnect(ctx context.Context) error {
	defer logger.LogWithDefer("\x1b[33;5mredis\x1b[0m: disconnect...")()
	return r.pool.Close()
}

// InitRedis connection from environment REDIS_HOST, REDIS_PORT, REDIS_AUTH, REDIS_TLS.
// Return nil if REDIS_HOST is empty
func InitRedis() *RedisInstance {
	if env.BaseEnv().RedisHost == "" {
		return nil
	}
	defer logger.LogWithDefer("Load Redis connection...")()

	addr := fmt.Sprintf("%s:%s", env.BaseEnv().RedisHost, env.BaseEnv().RedisPort)
	pool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 4 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr,
				redis.DialPassword(env.BaseEnv().RedisAuth),
				redis.DialUseTLS(env.BaseEnv().RedisUseTLS),
				redis.DialConnectTimeout(5*time.Second),
			)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	ping := pool.Get()
	defer ping.Close()
	if _, err := ping.Do("PING"); err != nil {
		panic(fmt.Errorf("redis ping: %v", err))
	}

	return &RedisInstance{pool: pool}
}

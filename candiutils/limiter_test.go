package candiutils

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
)

type fakeRedisStore struct {
	mu      sync.Mutex
	data    map[string]int64
	expires map[string]int
}

type fakeRedisConn struct{ store *fakeRedisStore }

func (c *fakeRedisConn) Close() error                      { return nil }
func (c *fakeRedisConn) Err() error                        { return nil }
func (c *fakeRedisConn) Send(string, ...interface{}) error { return nil }
func (c *fakeRedisConn) Flush() error                      { return nil }
func (c *fakeRedisConn) Receive() (interface{}, error)     { return nil, nil }
func (c *fakeRedisConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	if len(args) == 0 {
		// connection reset on pool release
		return nil, nil
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	key, _ := args[0].(string)
	switch cmd {
	case "INCR":
		c.store.data[key]++
		return c.store.data[key], nil
	case "GET":
		v, ok := c.store.data[key]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "EXPIRE":
		c.store.expires[key] = args[1].(int)
		return int64(1), nil
	case "DEL":
		delete(c.store.data, key)
		return int64(1), nil
	}
	return nil, errors.New("unknown command")
}

func newFakePool() (*redis.Pool, *fakeRedisStore) {
	store := &fakeRedisStore{data: map[string]int64{}, expires: map[string]int{}}
	return &redis.Pool{
		Dial: func() (redis.Conn, error) { return &fakeRedisConn{store: store}, nil },
	}, store
}

func TestRedisLimiter(t *testing.T) {
	pool, store := newFakePool()
	limiter := NewRedisLimiter(pool, WithPrefixLimiter("meetup"), WithLimitLimiter(3), WithTTLLimiter(time.Minute))

	key := "m1:owner"
	t.Run("Testcase #1: Positive, limited after max attempt and cleared by reset", func(t *testing.T) {
		assert.False(t, limiter.IsLimited(key))
		assert.Equal(t, int64(1), limiter.Hit(key))
		assert.Equal(t, 60, store.expires["meetup:"+key])
		limiter.Hit(key)
		assert.False(t, limiter.IsLimited(key))
		assert.Equal(t, int64(3), limiter.Hit(key))
		assert.True(t, limiter.IsLimited(key))

		limiter.Reset(key)
		assert.False(t, limiter.IsLimited(key))
		assert.NoError(t, limiter.Disconnect(context.Background()))
	})

	t.Run("Testcase #2: Positive, zero limit never limited", func(t *testing.T) {
		unlimited := NewRedisLimiter(pool, WithLimitLimiter(0))
		unlimited.Hit(key)
		assert.False(t, unlimited.IsLimited(key))
	})
}

func TestNoopLimiter(t *testing.T) {
	var l NoopLimiter
	assert.Equal(t, int64(0), l.Hit("x"))
	assert.False(t, l.IsLimited("x"))
	l.Reset("x")
	assert.NoError(t, l.Disconnect(context.Background()))
}

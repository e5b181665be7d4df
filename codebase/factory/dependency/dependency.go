package dependency

import (
	"context"

	"github.com/golangid/meetup/codebase/interfaces"
)

// Dependency base
type Dependency interface {
	GetMiddleware() interfaces.Middleware
	SetMiddleware(mw interfaces.Middleware)

	// GetMongoDatabase nil when service run without mongodb
	GetMongoDatabase() interfaces.MongoDatabase
	// GetRedisPool nil when REDIS_HOST is empty
	GetRedisPool() interfaces.RedisPool

	GetValidator() interfaces.Validator
	SetValidator(v interfaces.Validator)

	GetLimiter() interfaces.Limiter
	SetLimiter(l interfaces.Limiter)

	GetTokenIssuer() interfaces.TokenIssuer
	SetTokenIssuer(t interfaces.TokenIssuer)

	interfaces.Closer
}

// Option func type
type Option func(*deps)

// SetMiddleware option func
func SetMiddleware(mw interfaces.Middleware) Option {
	return func(d *deps) {
		d.mw = mw
	}
}

// SetMongoDatabase option func
func SetMongoDatabase(db interfaces.MongoDatabase) Option {
	return func(d *deps) {
		d.mongoDB = db
	}
}

// SetRedisPool option func
func SetRedisPool(db interfaces.RedisPool) Option {
	return func(d *deps) {
		d.redisPool = db
	}
}

// SetValidator option func
func SetValidator(validator interfaces.Validator) Option {
	return func(d *deps) {
		d.validator = validator
	}
}

// SetLimiter option func
func SetLimiter(limiter interfaces.Limiter) Option {
	return func(d *deps) {
		d.limiter = limiter
	}
}

// SetTokenIssuer option func
func SetTokenIssuer(tokenIssuer interfaces.TokenIssuer) Option {
	return func(d *deps) {
		d.tokenIssuer = tokenIssuer
	}
}

func safeClose(ctx context.Context, d interfaces.Closer) error {
	if d != nil {
		return d.Disconnect(ctx)
	}
	return nil
}

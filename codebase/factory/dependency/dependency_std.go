package dependency

import (
	"context"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/codebase/interfaces"
)

type deps struct {
	mw          interfaces.Middleware
	mongoDB     interfaces.MongoDatabase
	redisPool   interfaces.RedisPool
	validator   interfaces.Validator
	limiter     interfaces.Limiter
	tokenIssuer interfaces.TokenIssuer
}

// InitDependency constructor
func InitDependency(opts ...Option) Dependency {
	d := new(deps)
	for _, o := range opts {
		o(d)
	}

	return d
}

func (d *deps) GetMiddleware() interfaces.Middleware {
	return d.mw
}

func (d *deps) SetMiddleware(mw interfaces.Middleware) {
	d.mw = mw
}

func (d *deps) GetMongoDatabase() interfaces.MongoDatabase {
	return d.mongoDB
}

func (d *deps) GetRedisPool() interfaces.RedisPool {
	return d.redisPool
}

func (d *deps) GetValidator() interfaces.Validator {
	return d.validator
}

func (d *deps) SetValidator(v interfaces.Validator) {
	d.validator = v
}

func (d *deps) GetLimiter() interfaces.Limiter {
	return d.limiter
}

func (d *deps) SetLimiter(l interfaces.Limiter) {
	d.limiter = l
}

func (d *deps) GetTokenIssuer() interfaces.TokenIssuer {
	return d.tokenIssuer
}

func (d *deps) SetTokenIssuer(t interfaces.TokenIssuer) {
	d.tokenIssuer = t
}

// Disconnect release resource owned by dependency, mongo and redis instance closed by config.Exit
func (d *deps) Disconnect(ctx context.Context) error {
	mErr := candihelper.NewMultiError()
	if d.limiter != nil {
		mErr.Append("limiter", safeClose(ctx, d.limiter))
	}
	if mErr.HasError() {
		return mErr
	}
	return nil
}

package configs

import (
	"github.com/golangid/meetup/candiutils"
	"github.com/golangid/meetup/codebase/factory/dependency"
	"github.com/golangid/meetup/codebase/interfaces"
	"github.com/golangid/meetup/config"
	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/middleware"
	"github.com/golangid/meetup/pkg/shared/token"
)

// LoadServiceConfigs build service dependency from loaded base config
func LoadServiceConfigs(baseCfg *config.Config) dependency.Dependency {
	tokenIssuer := token.NewJWT(env.BaseEnv().OrganizerTokenSecret, env.BaseEnv().OrganizerTokenTTL)

	var limiter interfaces.Limiter = candiutils.NoopLimiter{}
	opts := []dependency.Option{
		dependency.SetMiddleware(middleware.NewMiddleware(tokenIssuer)),
		dependency.SetValidator(baseCfg.Validator),
		dependency.SetTokenIssuer(tokenIssuer),
	}
	if baseCfg.Mongo != nil {
		opts = append(opts, dependency.SetMongoDatabase(baseCfg.Mongo))
	}
	if baseCfg.Redis != nil {
		opts = append(opts, dependency.SetRedisPool(baseCfg.Redis))
		limiter = candiutils.NewRedisLimiter(baseCfg.Redis.Pool(),
			candiutils.WithPrefixLimiter(env.BaseEnv().ServiceName+":auth_attempt"),
			candiutils.WithLimitLimiter(env.BaseEnv().AuthMaxAttempt),
			candiutils.WithTTLLimiter(env.BaseEnv().AuthAttemptWindow),
		)
	}
	opts = append(opts, dependency.SetLimiter(limiter))

	return dependency.InitDependency(opts...)
}

package config

import (
	"context"
	"fmt"
	"log"

	"github.com/golangid/meetup/config/database"
	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/logger"
	"github.com/golangid/meetup/tracer"
	"github.com/golangid/meetup/validator"
	"go.mongodb.org/mongo-driver/mongo"
)

// Config app
type Config struct {
	Mongo     *database.MongoInstance
	Redis     *database.RedisInstance
	Tracer    tracer.PlatformType
	Validator *validator.Validator
}

// Init load environment and all connection, panic when exceed LOAD_CONFIG_TIMEOUT
func Init(serviceName string) *Config {
	env.Load(serviceName)
	logger.SetDebugMode(env.BaseEnv().DebugMode)

	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	cfgChan := make(chan *Config, 1)
	errConnect := make(chan interface{}, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errConnect <- r
			}
		}()

		var cfg Config
		cfg.Mongo = database.InitMongoDB(ctx)
		cfg.Redis = database.InitRedis()
		cfg.Validator = validator.NewValidator()

		if host := env.BaseEnv().JaegerTracingHost; host != "" {
			pl, err := tracer.InitJaeger(serviceName,
				tracer.OptionSetAgentHost(host),
				tracer.OptionSetLevel(env.BaseEnv().Environment),
				tracer.OptionSetBuildNumberTag(env.BaseEnv().BuildNumber),
				tracer.OptionSetMaxPacketSize(env.BaseEnv().JaegerMaxPacketSize),
				tracer.OptionSetErrorWhitelist([]error{mongo.ErrNoDocuments}),
			)
			if err != nil {
				log.Printf("\x1b[33;1mWarning: cannot init jaeger tracer: %v\x1b[0m", err)
			}
			cfg.Tracer = pl
		}

		cfgChan <- &cfg
	}()

	select {
	case cfg := <-cfgChan:
		return cfg
	case <-ctx.Done():
		panic(fmt.Errorf("Timeout to init configuration: %v", ctx.Err()))
	case e := <-errConnect:
		panic(fmt.Errorf("Failed init configuration :=> %v", e))
	}
}

// Exit release all connection, think as deferred function in main
func (c *Config) Exit(ctx context.Context) {
	if c.Mongo != nil {
		logger.LogIfError(c.Mongo.Disconnect(ctx))
	}
	if c.Redis != nil {
		logger.LogIfError(c.Redis.Disconnect(ctx))
	}
	if c.Tracer != nil {
		logger.LogIfError(c.Tracer.Disconnect(ctx))
	}
	log.Println("\x1b[33;1mConfig: Success close all connection\x1b[0m")
}

package meetup

import (
	"github.com/golangid/meetup/codebase/factory"
	"github.com/golangid/meetup/codebase/factory/dependency"
	"github.com/golangid/meetup/codebase/factory/types"
	"github.com/golangid/meetup/config"
	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/configs"
	"github.com/golangid/meetup/internal/modules/meeting"
)

// Service model
type Service struct {
	cfg     *config.Config
	deps    dependency.Dependency
	modules []factory.ModuleFactory
	name    types.Service
}

// NewService in this service
func NewService(cfg *config.Config) factory.ServiceFactory {
	deps := configs.LoadServiceConfigs(cfg)

	modules := []factory.ModuleFactory{
		meeting.NewModule(deps),
	}

	return &Service{
		cfg:     cfg,
		deps:    deps,
		modules: modules,
		name:    types.Service(env.BaseEnv().ServiceName),
	}
}

// GetConfig method
func (s *Service) GetConfig() *config.Config {
	return s.cfg
}

// GetDependency method
func (s *Service) GetDependency() dependency.Dependency {
	return s.deps
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() types.Service {
	return s.name
}

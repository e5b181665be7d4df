package factory

import (
	"github.com/golangid/meetup/codebase/factory/dependency"
	"github.com/golangid/meetup/codebase/factory/types"
)

// ServiceFactory factory
type ServiceFactory interface {
	GetDependency() dependency.Dependency
	GetModules() []ModuleFactory
	Name() types.Service
}

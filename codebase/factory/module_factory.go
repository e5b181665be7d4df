package factory

import (
	"github.com/golangid/meetup/codebase/factory/types"
	"github.com/golangid/meetup/codebase/interfaces"
)

// ModuleFactory factory
type ModuleFactory interface {
	RESTHandler() interfaces.RESTHandler
	Name() types.Module
}

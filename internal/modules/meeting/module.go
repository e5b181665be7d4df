package meeting

import (
	"github.com/golangid/meetup/codebase/factory/dependency"
	"github.com/golangid/meetup/codebase/factory/types"
	"github.com/golangid/meetup/codebase/interfaces"
	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/internal/modules/meeting/delivery/resthandler"
	"github.com/golangid/meetup/internal/modules/meeting/repository"
	"github.com/golangid/meetup/internal/modules/meeting/usecase"
	"github.com/golangid/meetup/logger"
	"github.com/golangid/meetup/pkg/shared/credential"
)

const (
	// Name module name
	Name types.Module = "meeting"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
}

// NewModule module constructor
func NewModule(deps dependency.Dependency) *Module {
	var repo repository.MeetingRepository
	if db := deps.GetMongoDatabase(); db != nil {
		repo = repository.NewMeetingRepoMongo(db.ReadDB(), db.WriteDB())
	} else {
		logger.LogYellow("meeting: mongodb not configured, using in memory repository")
		repo = repository.NewMeetingRepoInMem()
	}

	uc := usecase.NewMeetingUsecase(
		repo,
		credential.NewBcryptHasher(env.BaseEnv().BcryptCost),
		deps.GetLimiter(),
		deps.GetTokenIssuer(),
	)

	var mod Module
	mod.restHandler = resthandler.NewRestHandler(deps.GetMiddleware(), uc, deps.GetValidator())
	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.RESTHandler {
	return m.restHandler
}

// Name get module name
func (m *Module) Name() types.Module {
	return Name
}

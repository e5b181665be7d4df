package restserver

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/wrapper"
)

func defaultRootHandler(c echo.Context) error {
	return wrapper.NewHTTPResponse(http.StatusOK, "Service "+env.BaseEnv().ServiceName+" up and running", map[string]string{
		"buildNumber": env.BaseEnv().BuildNumber,
		"startAt":     env.BaseEnv().StartAt,
	}).JSON(c.Response())
}

// healthHandler ping every configured database, 503 when one of them failed
func (h *restServer) healthHandler(c echo.Context) error {
	deps := h.service.GetDependency()

	errs := map[string]error{}
	if db := deps.GetMongoDatabase(); db != nil {
		for k, v := range db.Health() {
			errs[k] = v
		}
	}
	if pool := deps.GetRedisPool(); pool != nil {
		for k, v := range pool.Health() {
			errs[k] = v
		}
	}

	code := http.StatusOK
	status := make(map[string]string, len(errs))
	for k, err := range errs {
		status[k] = "ok"
		if err != nil {
			status[k] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}
	return wrapper.NewHTTPResponse(code, http.StatusText(code), status).JSON(c.Response())
}

package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
)

// HTTPRequestID keep X-Request-Id from client or generate new one, echoed in response header
func (m *Middleware) HTTPRequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := req.Header.Get(candihelper.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Response().Header().Set(candihelper.HeaderXRequestID, id)
		c.SetRequest(req.WithContext(candishared.SetToContext(req.Context(), candishared.ContextKeyRequestID, id)))
		return next(c)
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/tracer"
	"github.com/golangid/meetup/wrapper"
)

// HTTPOrganizerAuth parse optional organizer bearer token, request without authorization header pass through
// so handler can fallback to password. Present but invalid token rejected with 401
func (m *Middleware) HTTPOrganizerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		authorization := req.Header.Get(candihelper.HeaderAuthorization)
		if authorization == "" {
			return next(c)
		}

		ctx := req.Context()
		tokenClaim, err := func() (*candishared.TokenClaim, error) {
			trace, ctx := tracer.StartTraceWithContext(ctx, "Middleware:HTTPOrganizerAuth")
			defer trace.Finish()

			tokenValue, err := extractAuthType(BEARER, authorization)
			if err != nil {
				trace.SetError(err)
				return nil, err
			}

			tokenClaim, err := m.tokenValidator.ValidateToken(ctx, tokenValue)
			if err != nil {
				trace.SetError(err)
				return nil, err
			}
			trace.SetTag("meeting_id", tokenClaim.Subject)
			return tokenClaim, nil
		}()
		if err != nil {
			return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
		}

		c.SetRequest(req.WithContext(candishared.SetToContext(ctx, candishared.ContextKeyTokenClaim, tokenClaim)))
		return next(c)
	}
}

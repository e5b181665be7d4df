package interfaces

import "github.com/labstack/echo"

// Middleware abstraction
type Middleware interface {
	// HTTPOrganizerAuth parse optional organizer bearer token into request context, reject invalid token
	HTTPOrganizerAuth(next echo.HandlerFunc) echo.HandlerFunc
	// HTTPRequestID ensure every request carry X-Request-Id
	HTTPRequestID(next echo.HandlerFunc) echo.HandlerFunc
}

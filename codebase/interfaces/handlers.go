package interfaces

import "github.com/labstack/echo"

// RESTHandler delivery factory for echo handler
type RESTHandler interface {
	Mount(group *echo.Group)
}

package restserver

import (
	"strings"

	"github.com/labstack/echo"
)

type (
	option struct {
		rootMiddlewares     []echo.MiddlewareFunc
		rootHandler         echo.HandlerFunc
		httpPort            uint16
		rootPath            string
		debugMode           bool
		jaegerMaxPacketSize int
	}

	// OptionFunc type
	OptionFunc func(*option)
)

var (
	// MiddlewareExcludeURLPath path skipped by tracer and logger middleware
	MiddlewareExcludeURLPath = map[string]struct{}{"/": {}, "/health": {}, "/favicon.ico": {}}
)

func getDefaultOption() option {
	return option{
		httpPort:            8000,
		rootPath:            "",
		debugMode:           true,
		jaegerMaxPacketSize: 65000,
		rootHandler:         defaultRootHandler,
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootPath option func, "/" and empty root path mount module handler at server root
func SetRootPath(rootPath string) OptionFunc {
	return func(o *option) {
		rootPath = strings.Trim(rootPath, "/")
		if rootPath != "" {
			rootPath = "/" + rootPath
		}
		o.rootPath = rootPath
	}
}

// SetRootHTTPHandler option func
func SetRootHTTPHandler(rootHandler echo.HandlerFunc) OptionFunc {
	return func(o *option) {
		o.rootHandler = rootHandler
	}
}

// SetDebugMode option func, request log printed only in debug mode
func SetDebugMode(debugMode bool) OptionFunc {
	return func(o *option) {
		o.debugMode = debugMode
	}
}

// SetJaegerMaxPacketSize option func
func SetJaegerMaxPacketSize(max int) OptionFunc {
	return func(o *option) {
		o.jaegerMaxPacketSize = max
	}
}

// SetRootMiddlewares option func, replace default root middlewares
func SetRootMiddlewares(middlewares ...echo.MiddlewareFunc) OptionFunc {
	return func(o *option) {
		o.rootMiddlewares = middlewares
	}
}

// AddRootMiddlewares option func
func AddRootMiddlewares(middlewares ...echo.MiddlewareFunc) OptionFunc {
	return func(o *option) {
		o.rootMiddlewares = append(o.rootMiddlewares, middlewares...)
	}
}

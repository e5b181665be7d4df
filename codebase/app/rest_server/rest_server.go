package restserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/labstack/echo"

	"github.com/golangid/meetup/codebase/factory"
	"github.com/golangid/meetup/codebase/factory/types"
	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/logger"
	"github.com/golangid/meetup/wrapper"
)

type restServer struct {
	serverEngine *echo.Echo
	service      factory.ServiceFactory
	opt          option
}

// NewServer create new REST server
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		serverEngine: echo.New(),
		service:      service,
		opt:          getDefaultOption(),
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HideBanner = true
	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler

	server.serverEngine.Use(
		EchoCORSMiddleware(
			env.BaseEnv().CORSAllowMethods, env.BaseEnv().CORSAllowHeaders,
			env.BaseEnv().CORSAllowOrigins, env.BaseEnv().CORSAllowCredential,
		),
	)
	if mw := service.GetDependency().GetMiddleware(); mw != nil {
		server.serverEngine.Use(mw.HTTPRequestID)
	}
	server.serverEngine.Use(
		server.tracerMiddleware,
		EchoLoggerMiddleware(server.opt.debugMode, os.Stdout),
	)
	server.serverEngine.Use(server.opt.rootMiddlewares...)

	server.serverEngine.GET("/", server.opt.rootHandler)
	server.serverEngine.GET("/health", server.healthHandler)

	root := server.serverEngine.Group(server.opt.rootPath)
	for _, m := range service.GetModules() {
		if h := m.RESTHandler(); h != nil {
			h.Mount(root)
		}
	}

	routes := server.serverEngine.Routes()
	sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
	for _, route := range routes {
		if route.Path == "/" || route.Path == "/health" {
			continue
		}
		logger.LogGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-40s --> %s", route.Method, route.Path, route.Name))
	}

	return server
}

func (h *restServer) Serve() {
	addr := fmt.Sprintf(":%d", h.opt.httpPort)
	fmt.Printf("\x1b[34;1m⇨ HTTP server run at port [::]%s\x1b[0m\n\n", addr)

	if err := h.serverEngine.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Panicf("REST Server: Unexpected Error: %v", err)
	}
}

func (h *restServer) Shutdown(ctx context.Context) {
	defer log.Println("\x1b[33;1mStopping HTTP server:\x1b[0m \x1b[32;1mSUCCESS\x1b[0m")

	logger.LogIfError(h.serverEngine.Shutdown(ctx))
}

func (h *restServer) Name() string {
	return string(types.REST)
}

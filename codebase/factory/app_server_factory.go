package factory

import "context"

// AppServerFactory server run by app, Serve block until server stopped
type AppServerFactory interface {
	Serve()
	// Shutdown stop accepting request and wait in flight request until ctx done
	Shutdown(ctx context.Context)
	Name() string
}

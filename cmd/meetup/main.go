package main

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/golangid/meetup/codebase/app"
	"github.com/golangid/meetup/config"

	service "github.com/golangid/meetup/internal"
)

func main() {
	const serviceName = "meetup"

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mFailed to start %s service: %v\x1b[0m\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	cfg := config.Init(serviceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cfg.Exit(ctx)
	}()

	app.New(service.NewService(cfg)).Run()
}

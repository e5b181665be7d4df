package tracer

import (
	"context"
	"sync"

	"github.com/golangid/meetup/candishared"
)

var (
	mu           sync.RWMutex
	activeTracer PlatformType = &noopTracer{}
)

// Tracer span abstraction
type Tracer interface {
	Context() context.Context
	Tags() map[string]interface{}
	SetTag(key string, value interface{})
	InjectRequestHeader(header map[string]string)
	SetError(err error)
	Log(key string, value interface{})
	Finish(additionalTags ...map[string]interface{})
}

// PlatformType define tracing platform. example using jaeger
type PlatformType interface {
	StartSpan(ctx context.Context, opName string) Tracer
	StartRootSpan(ctx context.Context, operationName string, header map[string]string) Tracer
	GetTraceID(ctx context.Context) string
	GetTraceURL(ctx context.Context) string
	Disconnect(ctx context.Context) error
}

// SetTracerPlatformType function for set tracer platform
func SetTracerPlatformType(t PlatformType) {
	mu.Lock()
	activeTracer = t
	mu.Unlock()
}

func platform() PlatformType {
	mu.RLock()
	defer mu.RUnlock()
	return activeTracer
}

// StartTrace starting trace child span from parent span
func StartTrace(ctx context.Context, operationName string) Tracer {
	if candishared.GetValueFromContext(ctx, skipTracer) != nil {
		return &noopTracer{ctx}
	}

	return platform().StartSpan(ctx, operationName)
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

// StartTraceFromHeader starting trace from root app handler based on header
func StartTraceFromHeader(ctx context.Context, operationName string, header map[string]string) (Tracer, context.Context) {
	t := platform().StartRootSpan(ctx, operationName, header)
	return t, t.Context()
}

// GetTraceID from active span in context
func GetTraceID(ctx context.Context) string {
	return platform().GetTraceID(ctx)
}

// GetTraceURL tracer dashboard url of active span
func GetTraceURL(ctx context.Context) string {
	return platform().GetTraceURL(ctx)
}

var skipTracer candishared.ContextKey = "nooptracer"

// SkipTraceContext inject to context for skip span tracer
func SkipTraceContext(ctx context.Context) context.Context {
	return candishared.SetToContext(ctx, skipTracer, struct{}{})
}

type noopTracer struct{ ctx context.Context }

func (n noopTracer) Context() context.Context                      { return n.ctx }
func (noopTracer) Tags() map[string]interface{}                    { return map[string]interface{}{} }
func (noopTracer) SetTag(key string, value interface{})            {}
func (noopTracer) InjectRequestHeader(header map[string]string)    {}
func (noopTracer) SetError(err error)                              {}
func (noopTracer) Log(key string, value interface{})               {}
func (noopTracer) Finish(additionalTags ...map[string]interface{}) {}
func (noopTracer) GetTraceID(ctx context.Context) string           { return "" }
func (noopTracer) GetTraceURL(ctx context.Context) string          { return "" }
func (noopTracer) Disconnect(ctx context.Context) error            { return nil }

func (n noopTracer) StartSpan(ctx context.Context, opName string) Tracer {
	n.ctx = ctx
	return &n
}
func (n noopTracer) StartRootSpan(ctx context.Context, operationName string, header map[string]string) Tracer {
	n.ctx = ctx
	return &n
}

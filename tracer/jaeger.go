package tracer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"runtime"
	"strings"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	ext "github.com/opentracing/opentracing-go/ext"
	jaeger "github.com/uber/jaeger-client-go"
	config "github.com/uber/jaeger-client-go/config"
)

const defaultMaxPacketSize = 65000

type jaegerPlatform struct {
	opt    Option
	closer io.Closer
}

// InitJaeger init jaeger tracing with opentracing global tracer, and set as active tracer platform
func InitJaeger(serviceName string, opts ...OptionFunc) (PlatformType, error) {
	option := Option{maxPacketSize: defaultMaxPacketSize}
	for _, opt := range opts {
		opt(&option)
	}

	if option.traceDashboard == "" {
		urlAgent, err := url.Parse("//" + option.agentHost)
		if urlAgent != nil && err == nil {
			option.traceDashboard = fmt.Sprintf("http://%s:16686/trace", urlAgent.Hostname())
		}
	}

	if option.level != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(option.level))
	}

	defaultTags := []opentracing.Tag{
		{Key: "num_cpu", Value: runtime.NumCPU()},
		{Key: "go_version", Value: runtime.Version()},
	}
	if option.buildNumberTag != "" {
		defaultTags = append(defaultTags, opentracing.Tag{Key: "build_number", Value: option.buildNumberTag})
	}

	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:            false,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  option.agentHost,
		},
		Tags: defaultTags,
	}
	tracer, closer, err := cfg.NewTracer(config.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)

	pl := &jaegerPlatform{opt: option, closer: closer}
	SetTracerPlatformType(pl)
	return pl, nil
}

func (j *jaegerPlatform) StartSpan(ctx context.Context, operationName string) Tracer {
	span, ctx := opentracing.StartSpanFromContext(ctx, operationName)
	return &jaegerTraceImpl{ctx: ctx, span: span, opt: &j.opt}
}

func (j *jaegerPlatform) StartRootSpan(ctx context.Context, operationName string, header map[string]string) Tracer {
	globalTracer := opentracing.GlobalTracer()

	var span opentracing.Span
	if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.TextMapCarrier(header)); err != nil {
		span = globalTracer.StartSpan(operationName)
	} else {
		span = globalTracer.StartSpan(operationName, opentracing.ChildOf(spanCtx))
	}
	ext.SpanKindRPCServer.Set(span)
	return &jaegerTraceImpl{ctx: opentracing.ContextWithSpan(ctx, span), span: span, opt: &j.opt}
}

func (j *jaegerPlatform) GetTraceID(ctx context.Context) string {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		return sc.TraceID().String()
	}
	return ""
}

func (j *jaegerPlatform) GetTraceURL(ctx context.Context) string {
	traceID := j.GetTraceID(ctx)
	if traceID == "" || j.opt.traceDashboard == "" {
		return ""
	}
	return j.opt.traceDashboard + "/" + traceID
}

func (j *jaegerPlatform) Disconnect(ctx context.Context) error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

type jaegerTraceImpl struct {
	ctx  context.Context
	span opentracing.Span
	tags map[string]interface{}
	opt  *Option
}

func (t *jaegerTraceImpl) Context() context.Context {
	return t.ctx
}

func (t *jaegerTraceImpl) Tags() map[string]interface{} {
	if t.tags == nil {
		t.tags = make(map[string]interface{})
	}
	return t.tags
}

func (t *jaegerTraceImpl) SetTag(key string, value interface{}) {
	if t.span == nil {
		return
	}
	t.Tags()[key] = value
}

// InjectRequestHeader continue span to outbound request header
func (t *jaegerTraceImpl) InjectRequestHeader(header map[string]string) {
	if t.span == nil {
		return
	}
	ext.SpanKindRPCClient.Set(t.span)
	t.span.Tracer().Inject(t.span.Context(), opentracing.HTTPHeaders, opentracing.TextMapCarrier(header))
}

func (t *jaegerTraceImpl) SetError(err error) {
	if t.span == nil || err == nil {
		return
	}
	for _, e := range t.opt.errorWhitelist {
		if errors.Is(err, e) {
			return
		}
	}
	SetError(t.ctx, err)
}

func (t *jaegerTraceImpl) Log(key string, value interface{}) {
	if t.span == nil {
		return
	}
	t.span.LogKV(key, toValue(value, t.opt.maxPacketSize))
}

// Finish trace with additional tags data, must in deferred function
func (t *jaegerTraceImpl) Finish(additionalTags ...map[string]interface{}) {
	if t.span == nil {
		return
	}
	defer t.span.Finish()

	for _, tag := range additionalTags {
		for k, v := range tag {
			t.Tags()[k] = v
		}
	}
	for k, v := range t.tags {
		t.span.SetTag(k, toValue(v, t.opt.maxPacketSize))
	}
	t.span.SetTag("num_goroutines", runtime.NumGoroutine())
}

package tracer

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/golangid/meetup/logger"
	opentracing "github.com/opentracing/opentracing-go"
	ext "github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
)

// WithTracerFunc functional with Tracer instance in function params
func WithTracerFunc(ctx context.Context, operationName string, fn func(context.Context, Tracer)) {
	t, ctx := StartTraceWithContext(ctx, operationName)
	defer t.Finish()

	fn(ctx, t)
}

func toValue(v interface{}, maxSize int) interface{} {
	var str string
	switch val := v.(type) {
	case error:
		if val != nil {
			str = val.Error()
		}
	case string:
		str = val
	case bool, int8, int16, int32, int, int64, uint16, float32, float64:
		return v
	case []byte:
		str = string(val)
	default:
		b, _ := json.Marshal(val)
		str = string(b)
	}

	if maxSize > 0 && len(str) >= maxSize {
		return fmt.Sprintf("<<Overflow, cannot show data. Size is = %d bytes, JAEGER_MAX_PACKET_SIZE = %d bytes>>", len(str), maxSize)
	}
	return logger.MaskLog(str)
}

// SetError mark active span in context as error, with stack trace
func SetError(ctx context.Context, err error) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil || err == nil {
		return
	}

	ext.Error.Set(span, true)
	span.SetTag("error.message", err.Error())

	stackTrace := make([]byte, 1024)
	for {
		n := runtime.Stack(stackTrace, false)
		if n < len(stackTrace) {
			stackTrace = stackTrace[:n]
			break
		}
		stackTrace = make([]byte, 2*len(stackTrace))
	}
	span.LogFields(otlog.String("stacktrace", string(stackTrace)))
}

// Log key value to active span in context
func Log(ctx context.Context, key string, value interface{}) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return
	}

	span.LogKV(key, toValue(value, defaultMaxPacketSize))
}

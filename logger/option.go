package logger

import (
	"io"

	"go.uber.org/zap/zapcore"
)

type (
	// Option for init logger option
	Option struct {
		MultiWriter  []io.Writer
		Level        zapcore.Level
		MaskKeywords []string
	}

	// OptionFunc func
	OptionFunc func(*Option)
)

// OptionAddWriter option func
func OptionAddWriter(w io.Writer) OptionFunc {
	return func(o *Option) {
		o.MultiWriter = append(o.MultiWriter, w)
	}
}

// OptionSetWriter option func, overide all log writer
func OptionSetWriter(w ...io.Writer) OptionFunc {
	return func(o *Option) {
		o.MultiWriter = w
	}
}

// OptionSetLevel option func, minimum level written
func OptionSetLevel(level zapcore.Level) OptionFunc {
	return func(o *Option) {
		o.Level = level
	}
}

// OptionSetMaskKeywords option func, field names whose value is redacted from log message
func OptionSetMaskKeywords(keywords ...string) OptionFunc {
	return func(o *Option) {
		o.MaskKeywords = keywords
	}
}

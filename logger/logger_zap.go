package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	masker Masker = NewMasker()
)

// InitZap logger with default writer to stdout
func InitZap(opts ...OptionFunc) {
	opt := Option{
		MultiWriter: []io.Writer{os.Stdout},
		Level:       zapcore.DebugLevel,
	}

	for _, o := range opts {
		o(&opt)
	}

	if len(opt.MaskKeywords) > 0 {
		masker = NewMasker(opt.MaskKeywords...)
	}

	encCfg := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey: "message",

		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	var cores []zapcore.Core
	for _, w := range opt.MultiWriter {
		cores = append(cores, zapcore.NewCore(encCfg, zapcore.AddSync(w), opt.Level))
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()
}

// MaskLog redact sensitive field (password, token) from text
func MaskLog(text string) string {
	return masker.Mask(text)
}

// Log func
func Log(level zapcore.Level, message string, context string, scope string) {
	if logger == nil {
		return
	}
	entry := logger.With(
		zap.String("context", context),
		zap.String("scope", scope),
	)

	setEntryType(level, entry, MaskLog(message))
}

// LogWithField func, "message" key is used as log message
func LogWithField(level zapcore.Level, fields map[string]interface{}) {
	if logger == nil {
		return
	}

	var message interface{}
	var args []interface{}
	for k, v := range fields {
		if k == "message" {
			message = v
			continue
		}
		args = append(args, k, v)
	}
	if s, ok := message.(string); ok {
		message = MaskLog(s)
	}
	setEntryType(level, logger.With(args...), message)
}

// LogE error
func LogE(message string) {
	setEntryType(zapcore.ErrorLevel, logger, MaskLog(message))
}

// LogEf error with format
func LogEf(format string, i ...interface{}) {
	setEntryType(zapcore.ErrorLevel, logger, MaskLog(fmt.Sprintf(format, i...)))
}

// LogI info
func LogI(message string) {
	setEntryType(zapcore.InfoLevel, logger, MaskLog(message))
}

// LogIf info with format
func LogIf(format string, i ...interface{}) {
	setEntryType(zapcore.InfoLevel, logger, MaskLog(fmt.Sprintf(format, i...)))
}

// LogIfError log error level only when err is not nil
func LogIfError(err error) {
	if err != nil {
		setEntryType(zapcore.ErrorLevel, logger, MaskLog(err.Error()))
	}
}

func setEntryType(level zapcore.Level, entry *zap.SugaredLogger, msg interface{}) {
	switch level {
	case zapcore.DebugLevel:
		entry.Debug(msg)
	case zapcore.InfoLevel:
		entry.Info(msg)
	case zapcore.WarnLevel:
		entry.Warn(msg)
	case zapcore.ErrorLevel:
		entry.Error(msg)
	case zapcore.FatalLevel:
		entry.Fatal(msg)
	case zapcore.PanicLevel:
		entry.Panic(msg)
	}
}

package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

type Logger struct {
	logger *zap.SugaredLogger
}

var _ Interface = (*Logger)(nil)

// New builds a zap backed logger. format is "json" or "console".
func New(level string, format ...string) *Logger {
	var l zapcore.Level

	switch strings.ToLower(level) {
	case "debug":
		l = zapcore.DebugLevel
	case "warn":
		l = zapcore.WarnLevel
	case "error":
		l = zapcore.ErrorLevel
	default:
		l = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"

	var enc zapcore.Encoder
	if len(format) > 0 && format[0] == "console" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(l))

	return &Logger{
		logger: zap.New(core).Sugar(),
	}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.logger.Debug(l.msg("debug", message, args...))
}

func (l *Logger) Info(message string, args ...interface{}) {
	l.logger.Info(l.msg("info", message, args...))
}

func (l *Logger) Warn(message string, args ...interface{}) {
	l.logger.Warn(l.msg("warn", message, args...))
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.logger.Error(l.msg("error", message, args...))
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.logger.Error(l.msg("fatal", message, args...))
	_ = l.logger.Sync()

	os.Exit(1)
}

// msg renders a string message with printf args. An error message is prefixed
// with its context when the first arg is a string: Error(err, "repo - Get").
func (l *Logger) msg(level string, message interface{}, args ...interface{}) string {
	switch m := message.(type) {
	case error:
		if len(args) == 0 {
			return m.Error()
		}
		if where, ok := args[0].(string); ok {
			return fmt.Sprintf(where, args[1:]...) + ": " + m.Error()
		}
		return m.Error()
	case string:
		if len(args) == 0 {
			return m
		}
		return fmt.Sprintf(m, args...)
	default:
		return fmt.Sprintf("%s message %v has unknown type %T", level, message, m)
	}
}

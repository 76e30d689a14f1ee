// Package logging contains the zap backed logger used by the gait pipeline and its tools.
package logging

import (
	"io"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging surface shared by every package in the module.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<parent>.<subname>" that shares the parent's level.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	GetLevel() Level
	Desugar() *zap.Logger
	Sync() error
}

// NewLoggerConfig returns the console encoder configuration used for stdout loggers.
func NewLoggerConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewLogger returns a new logger that outputs Info+ logs to stderr.
func NewLogger(name string) Logger {
	return newStderrLogger(name, INFO)
}

// NewDebugLogger returns a new logger that outputs Debug+ logs to stderr.
func NewDebugLogger(name string) Logger {
	return newStderrLogger(name, DEBUG)
}

func newStderrLogger(name string, level Level) Logger {
	return NewWriterLogger(name, os.Stderr, level)
}

// NewWriterLogger returns a new logger that outputs level+ logs to w.
func NewWriterLogger(name string, w io.Writer, level Level) Logger {
	atomicLevel := zap.NewAtomicLevelAt(level.AsZap())
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(NewLoggerConfig()), zapcore.Lock(zapcore.AddSync(w)), atomicLevel)
	return newImpl(zap.New(core, zap.AddCaller()), name, atomicLevel)
}

// NewTestLogger returns a new logger that outputs Debug+ logs through the test's log.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also saves logs to an in memory observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	atomicLevel := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	testCore := zaptest.NewLogger(tb, zaptest.Level(atomicLevel)).Core()
	observerCore, observedLogs := observer.New(atomicLevel)
	return newImpl(zap.New(zapcore.NewTee(testCore, observerCore)), "", atomicLevel), observedLogs
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return newImpl(zap.NewNop(), "", zap.NewAtomicLevelAt(zapcore.FatalLevel))
}

package uacodec

import "sync/atomic"

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Provide an adapter around your logging
// stack (see log/zap, log/logrus, log/slog).
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

type loggerBox struct{ l Logger }

var pkgLogger atomic.Pointer[loggerBox]

// SetLogger installs the logger that receives codec failure diagnostics.
// Passing nil restores the no-op logger. Safe to call concurrently with
// encoding and decoding.
func SetLogger(l Logger) {
	pkgLogger.Store(&loggerBox{l: coalesce[Logger](l, NopLogger{})})
}

func logger() Logger {
	if b := pkgLogger.Load(); b != nil {
		return b.l
	}
	return NopLogger{}
}

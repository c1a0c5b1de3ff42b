package logger

import (
	"log/slog"
	"os"
)

// serviceName is attached to every record so aggregated logs from several
// local services stay attributable.
const serviceName = "system-ai"

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// slogLogger adapts a slog.Logger to the Logger interface. Both backends
// embed it and differ only in handler and destination.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) slogLogger {
	return slogLogger{logger: slog.New(handler).With(slog.String("service", serviceName))}
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger logs human-readable records to stderr, keeping stdout free
// for CLI command output.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &ConsoleLogger{newSlogLogger(handler)}
}

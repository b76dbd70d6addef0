// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init creates and installs the default slog logger. Logs always go to
// stderr; when results stream to stdout as NDJSON the handler is JSON too,
// so both streams stay machine-parseable, otherwise text for humans.
// Every record carries service=ladder — payroll ingestion jobs interleave
// several stages' stderr into one capture, and the attribute keys the split.
func Init(outputIsStdout bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if outputIsStdout {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler).With(slog.String("service", "ladder"))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a level string to slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

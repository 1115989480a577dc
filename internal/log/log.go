// Package log configures the process-wide slog logger and names the
// structured fields shared across packages, so the same attribute keys
// show up in request logs, service logs, and error logs.
package log

import (
	"log/slog"
	"os"
)

// Field names used across the codebase. Log consumers key on these,
// so changing one is a breaking change for dashboards and alerts.
const (
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldUserID    = "user_id"
	FieldError     = "error"
)

// ParseLevel maps a config level string to a slog level. Unknown
// values fall back to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds the text logger and installs it as the slog default.
func Setup(level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

// Package logging configures the process-wide structured logger.
//
// The core packages stay log-free; the cmd layer uses this to report batch
// progress and summaries. Use "json" format when the output is collected by
// machines, "text" when a human is watching.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default slog logger with the given level and format.
//
// Level values: "debug", "info", "warn", "error" (default "info").
// Format values: "text", "json" (default "text").
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// WithFields returns a logger carrying consistent context through a
// multi-step operation, e.g. the batch id of a merge run.
func WithFields(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

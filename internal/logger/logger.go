// Package logger configures log/slog with JSON output and source locations.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger writing to stdout as the default
func Setup(level slog.Level) {
	slog.SetDefault(New(os.Stdout, level))
}

// New builds a JSON logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog.Level.
// Anything else is info.
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

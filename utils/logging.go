package utils

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ServiceName is attached to every log record
const ServiceName = "gol-regions"

// ParseLevel converts a configured level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NewLogger builds the run logger. Every record carries the service name and a
// run id so that interleaved runs can be told apart.
func NewLogger(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(
		"service", ServiceName,
		"run_id", uuid.NewString(),
	)
}

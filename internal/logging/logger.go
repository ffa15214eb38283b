// Package logging provides structured logging configuration using log/slog.
//
// Pipeline components receive the *slog.Logger built by [Setup] explicitly.
// The lookup server additionally uses [FromContext] so that chi's RequestID
// middleware propagates request IDs into every log entry of a request.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// Setup builds a logger for the given level and format, installs it as the
// slog default and returns it.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// A nil writer logs to stderr so that stdout stays free for tool output.
func Setup(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops every record. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDefault returns l, or the slog default logger when l is nil.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// parseLevel converts a string log level to slog.Level.
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

// FromContext returns base enriched with request context.
//
// When called with a request context that contains a chi RequestID,
// the returned logger includes request_id in all log entries.
//
// Usage:
//
//	func (s *Server) handleFlag(w http.ResponseWriter, r *http.Request) {
//	    logger := logging.FromContext(r.Context(), s.logger)
//	    logger.Info("flag lookup", "code", code)
//	}
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	logger := OrDefault(base)

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// Usage:
//
//	runLogger := logging.WithFields(ctx, logger,
//	    "run_id", runID,
//	    "output", cfg.Output.Path,
//	)
//	runLogger.Info("run started")
func WithFields(ctx context.Context, base *slog.Logger, args ...any) *slog.Logger {
	return FromContext(ctx, base).With(args...)
}

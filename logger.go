package polygo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with polygo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithID adds a polygon id field to the logger.
func (l *Logger) WithID(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithContextID adds a context identifier field to the logger.
func (l *Logger) WithContextID(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("context_id", id.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAddPolygon logs a polygon addition.
func (l *Logger) LogAddPolygon(ctx context.Context, id, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add polygon failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "polygon added",
			"id", id,
			"points", points,
		)
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, index string, items int, bytes int64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"index", index,
			"items", items,
			"estimated_bytes", bytes,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index built",
			"index", index,
			"items", items,
			"estimated_bytes", bytes,
			"duration", duration,
		)
	}
}

// LogQuery logs a batch query.
func (l *Logger) LogQuery(ctx context.Context, query string, points int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"query", query,
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"query", query,
			"points", points,
			"duration", duration,
		)
	}
}

// LogClose logs the release of a context.
func (l *Logger) LogClose(ctx context.Context, polygons, vertices int) {
	l.DebugContext(ctx, "context closed",
		"polygons", polygons,
		"vertices", vertices,
	)
}

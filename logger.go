package metrics

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with metric-specific fields.
// This keeps field names consistent across instrumented metrics.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithKind adds the metric kind to the logger.
func (l *Logger) WithKind(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// LogDist logs a distance evaluation. Failures are caller errors and are
// logged at warn level. Use WithKind to tag the metric.
func (l *Logger) LogDist(ctx context.Context, dist float64, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "dist failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "dist completed",
		"dist", dist,
		"elapsed", elapsed,
	)
}

// LogConfig logs a metric built from configuration.
func (l *Logger) LogConfig(ctx context.Context, cfg Config, domain string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "metric construction failed",
			"kind", cfg.Kind.String(),
			"p", cfg.P.String(),
			"domain", domain,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "metric constructed",
		"kind", cfg.Kind.String(),
		"p", cfg.P.String(),
		"domain", domain,
	)
}

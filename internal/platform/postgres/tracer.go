package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/redact"
)

// NewQueryTracer returns a pgx tracer that logs every statement through slog.
// Bound arguments are reduced to a count so user data never reaches the log.
func NewQueryTracer(base *slog.Logger) *tracelog.TraceLog {
	base = base.With(slog.String("component", "pgx"))

	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
			log := logger.FromContextOrDefault(ctx, base)
			log.LogAttrs(ctx, slogLevel(level), msg, traceAttrs(data)...)
		}),
		LogLevel: tracelog.LogLevelDebug,
	}
}

func slogLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelError:
		return slog.LevelError
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	case tracelog.LogLevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func traceAttrs(data map[string]any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(data))
	for key, value := range data {
		switch key {
		case "args":
			if args, ok := value.([]any); ok {
				attrs = append(attrs, slog.Int("arg_count", len(args)))
			}
		case "err":
			if err, ok := value.(error); ok {
				attrs = append(attrs, slog.String("error", redact.Error(err)))
			}
		default:
			attrs = append(attrs, slog.Any(key, value))
		}
	}
	return attrs
}

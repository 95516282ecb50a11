package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/lightbnb/internal/config"
	"github.com/phrazzld/lightbnb/internal/redact"
)

// DriverName is the database/sql driver registered by pgx's stdlib package.
const DriverName = "pgx"

// Open establishes a connection pool to the configured database and verifies
// it with a ping. The returned handle is shared by every store; the caller
// owns it and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	safeURL := redact.DatabaseURL(cfg.DSN())

	connConfig, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %s", redact.Error(err))
	}
	if cfg.ConnectTimeout > 0 {
		connConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.TraceQueries {
		connConfig.Tracer = NewQueryTracer(logger)
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connConfig), DriverName)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database ping failed",
			slog.String("url", safeURL),
			slog.String("error", redact.Error(err)))
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established", slog.String("url", safeURL))
	return db, nil
}

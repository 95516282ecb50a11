package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lightbnb/internal/redact"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table goose records applied versions in.
const MigrationTableName = "schema_migrations"

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// MigrationCommands lists the goose commands Migrate accepts.
var MigrationCommands = []string{"up", "down", "redo", "reset", "status", "version"}

// IsMigrationCommand reports whether command is one of MigrationCommands.
func IsMigrationCommand(command string) bool {
	for _, c := range MigrationCommands {
		if c == command {
			return true
		}
	}
	return false
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It does NOT call os.Exit; the failure is
// returned to the caller of Migrate.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Migrate runs a goose command against db using the embedded migration set.
func Migrate(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if db == nil {
		return fmt.Errorf("migrate: db cannot be nil")
	}
	if !IsMigrationCommand(command) {
		return fmt.Errorf("unknown migration command: %q (expected one of %v)", command, MigrationCommands)
	}
	if logger == nil {
		logger = slog.Default()
	}

	migrationLogger := logger.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	startTime := time.Now()
	migrationLogger.Info("starting migration command")

	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		migrationLogger.Error("migration command failed",
			slog.String("error", redact.Error(err)),
			slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	migrationLogger.Info("migration command executed successfully",
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
	return nil
}

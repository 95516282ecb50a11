package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/lightbnb/internal/config"
	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/platform/postgres"
	"github.com/phrazzld/lightbnb/internal/store"
)

// application holds the dependencies shared by every command.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sqlx.DB
	users        store.UserStore
	reservations store.ReservationStore
	properties   store.PropertyStore
}

// newApplication loads configuration, sets up logging and opens the database.
// The caller must Close the returned application.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Debug("configuration loaded",
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("database_url_present", cfg.Database.URL != ""),
		slog.Bool("trace_queries", cfg.Database.TraceQueries))

	db, err := postgres.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		users:        postgres.NewPostgresUserStore(db, log),
		reservations: postgres.NewPostgresReservationStore(db, log),
		properties:   postgres.NewPostgresPropertyStore(db, log),
	}, nil
}

// Close releases the database connection pool.
func (a *application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/redact"
	"github.com/phrazzld/lightbnb/internal/store"
)

const (
	userColumns = `id, name, email, password`

	getUserByEmailQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	getUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	insertUserQuery = `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "get_by_email", getUserByEmailQuery, email)
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getOne(ctx, "get_by_id", getUserByIDQuery, id)
}

// getOne runs a single-row user lookup. A missing row is not an error.
func (s *PostgresUserStore) getOne(ctx context.Context, operation, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := sqlx.GetContext(ctx, s.db, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found", slog.String("operation", operation))
		return nil, nil
	}
	if err != nil {
		log.Error("failed to query user",
			slog.String("operation", operation),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", operation, "query failed", MapError(err))
	}

	return &user, nil
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", store.ErrInvalidEntity)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var created domain.User
	err := sqlx.GetContext(ctx, s.db, &created, insertUserQuery, user.Name, user.Email, user.Password)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("email already registered")
			return nil, store.NewStoreError("user", "create", "email already registered",
				MapUniqueViolation(err, store.ErrEmailExists))
		}
		log.Error("failed to insert user", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	log.Info("user created", slog.Int64("user_id", created.ID))
	return &created, nil
}

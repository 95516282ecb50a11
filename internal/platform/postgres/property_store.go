package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/redact"
	"github.com/phrazzld/lightbnb/internal/store"
)

const insertPropertyQuery = `
	INSERT INTO properties (
		owner_id, title, description, thumbnail_photo_url, cover_photo_url,
		cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
		country, street, city, province, post_code, active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING *
`

// PostgresPropertyStore implements the store.PropertyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPropertyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPropertyStore creates a new PostgreSQL implementation of the PropertyStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPropertyStore(db store.DBTX, logger *slog.Logger) *PostgresPropertyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPropertyStore{
		db:     db,
		logger: logger.With(slog.String("component", "property_store")),
	}
}

// Ensure PostgresPropertyStore implements store.PropertyStore interface
var _ store.PropertyStore = (*PostgresPropertyStore)(nil)

// Search implements store.PropertyStore.Search
// Only properties with at least one review are returned, cheapest first.
func (s *PostgresPropertyStore) Search(
	ctx context.Context,
	opts domain.PropertySearchOptions,
	limit int,
) ([]domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search options: %w", err)
	}

	query, args := buildPropertySearchQuery(opts, limit)

	properties := []domain.Property{}
	if err := sqlx.SelectContext(ctx, s.db, &properties, query, args...); err != nil {
		log.Error("failed to search properties",
			slog.Int("arg_count", len(args)),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("property", "search", "query failed", MapError(err))
	}

	log.Debug("searched properties",
		slog.Int("arg_count", len(args)),
		slog.Int("count", len(properties)))
	return properties, nil
}

// Create implements store.PropertyStore.Create
func (s *PostgresPropertyStore) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if property == nil {
		return nil, fmt.Errorf("%w: property is nil", store.ErrInvalidEntity)
	}
	if err := property.Validate(); err != nil {
		log.Warn("property validation failed", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var created domain.Property
	err := sqlx.GetContext(ctx, s.db, &created, insertPropertyQuery,
		property.OwnerID,
		property.Title,
		property.Description,
		property.ThumbnailPhotoURL,
		property.CoverPhotoURL,
		property.CostPerNight,
		property.ParkingSpaces,
		property.NumberOfBathrooms,
		property.NumberOfBedrooms,
		property.Country,
		property.Street,
		property.City,
		property.Province,
		property.PostCode,
		property.Active,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("property owner does not exist",
				slog.Int64("owner_id", property.OwnerID))
			return nil, store.NewStoreError("property", "create",
				fmt.Sprintf("unknown owner %d", property.OwnerID), MapError(err))
		}

		log.Error("failed to insert property",
			slog.Int64("owner_id", property.OwnerID),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("property", "create", "insert failed", MapError(err))
	}

	log.Info("property created",
		slog.Int64("property_id", created.ID),
		slog.Int64("owner_id", created.OwnerID))
	return &created, nil
}

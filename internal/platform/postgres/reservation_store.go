package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/redact"
	"github.com/phrazzld/lightbnb/internal/store"
)

const listReservationsByGuestQuery = `
	SELECT id, start_date, end_date, property_id, guest_id
	FROM reservations
	WHERE guest_id = $1
	ORDER BY start_date
	LIMIT $2
`

// PostgresReservationStore implements the store.ReservationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReservationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReservationStore creates a new PostgreSQL implementation of the
// ReservationStore interface. If logger is nil, a default logger will be used.
func NewPostgresReservationStore(db store.DBTX, logger *slog.Logger) *PostgresReservationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReservationStore{
		db:     db,
		logger: logger.With(slog.String("component", "reservation_store")),
	}
}

// Ensure PostgresReservationStore implements store.ReservationStore interface
var _ store.ReservationStore = (*PostgresReservationStore)(nil)

// ListByGuest implements store.ReservationStore.ListByGuest
func (s *PostgresReservationStore) ListByGuest(
	ctx context.Context,
	guestID int64,
	limit int,
) ([]domain.Reservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	limit = store.NormalizeLimit(limit)

	reservations := []domain.Reservation{}
	if err := sqlx.SelectContext(ctx, s.db, &reservations, listReservationsByGuestQuery, guestID, limit); err != nil {
		log.Error("failed to list reservations",
			slog.Int64("guest_id", guestID),
			slog.Int("limit", limit),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("reservation", "list_by_guest", "query failed", MapError(err))
	}

	log.Debug("listed reservations",
		slog.Int64("guest_id", guestID),
		slog.Int("count", len(reservations)))
	return reservations, nil
}

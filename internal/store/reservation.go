package store

import (
	"context"

	"github.com/phrazzld/lightbnb/internal/domain"
)

// ReservationStore defines the interface for reservation reads.
type ReservationStore interface {
	// ListByGuest returns up to limit reservations made by the guest, earliest
	// start date first. A non-positive limit means DefaultLimit.
	ListByGuest(ctx context.Context, guestID int64, limit int) ([]domain.Reservation, error)
}

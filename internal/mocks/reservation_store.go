package mocks

import (
	"context"

	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockReservationStore is a mock of store.ReservationStore interface for use with testify/mock
type TestifyMockReservationStore struct {
	mock.Mock
}

var _ store.ReservationStore = (*TestifyMockReservationStore)(nil)

// ListByGuest is a mock implementation of store.ReservationStore.ListByGuest
func (m *TestifyMockReservationStore) ListByGuest(
	ctx context.Context,
	guestID int64,
	limit int,
) ([]domain.Reservation, error) {
	args := m.Called(ctx, guestID, limit)
	if reservations, ok := args.Get(0).([]domain.Reservation); ok {
		return reservations, args.Error(1)
	}
	return nil, args.Error(1)
}

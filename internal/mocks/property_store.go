package mocks

import (
	"context"

	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockPropertyStore is a mock of store.PropertyStore interface for use with testify/mock
type TestifyMockPropertyStore struct {
	mock.Mock
}

var _ store.PropertyStore = (*TestifyMockPropertyStore)(nil)

// Search is a mock implementation of store.PropertyStore.Search
func (m *TestifyMockPropertyStore) Search(
	ctx context.Context,
	opts domain.PropertySearchOptions,
	limit int,
) ([]domain.Property, error) {
	args := m.Called(ctx, opts, limit)
	if properties, ok := args.Get(0).([]domain.Property); ok {
		return properties, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.PropertyStore.Create
func (m *TestifyMockPropertyStore) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, property)
	if created, ok := args.Get(0).(*domain.Property); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

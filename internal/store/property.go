package store

import (
	"context"

	"github.com/phrazzld/lightbnb/internal/domain"
)

// PropertyStore defines the interface for property persistence.
type PropertyStore interface {
	// Search returns up to limit reviewed properties matching opts, each with
	// its average rating. A non-positive limit means DefaultLimit.
	Search(ctx context.Context, opts domain.PropertySearchOptions, limit int) ([]domain.Property, error)

	// Create inserts a property and returns the stored row, including its id.
	// Returns an error wrapping ErrInvalidEntity if the property fails
	// validation or references an unknown owner.
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
}

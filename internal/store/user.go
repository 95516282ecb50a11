package store

import (
	"context"

	"github.com/phrazzld/lightbnb/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetByEmail retrieves a user by their email address.
	// Returns (nil, nil) if no user has that email; an error is returned
	// only when the lookup itself fails.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID retrieves a user by their id.
	// Returns (nil, nil) if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create inserts a new user and returns the stored row, including its id.
	// Returns ErrEmailExists if the email is already taken and an error
	// wrapping ErrInvalidEntity if the user fails validation.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

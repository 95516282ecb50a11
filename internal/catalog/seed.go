package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/store"
)

// SeedResult counts what Seed wrote.
type SeedResult struct {
	UsersCreated      int `json:"users_created"`
	UsersExisting     int `json:"users_existing"`
	PropertiesCreated int `json:"properties_created"`
}

// Seed writes the catalog through the given stores in id order.
//
// Users whose email is already registered are reused rather than inserted,
// including when the email is registered between the lookup and the insert.
// Stores assign their own ids, so each property's owner id is rewritten to
// the id its owner received. Properties are inserted on every call.
func (c *Catalog) Seed(ctx context.Context, users store.UserStore, properties store.PropertyStore) (SeedResult, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	var result SeedResult
	ownerIDs := make(map[int64]int64)

	for _, u := range c.Users() {
		existing, err := users.GetByEmail(ctx, u.Email)
		if err != nil {
			return result, fmt.Errorf("failed to look up seed user %d: %w", u.ID, err)
		}
		if existing != nil {
			ownerIDs[u.ID] = existing.ID
			result.UsersExisting++
			continue
		}

		user := u
		user.ID = 0
		created, err := users.Create(ctx, &user)
		if store.IsDuplicateError(err) {
			existing, err = users.GetByEmail(ctx, u.Email)
			if err != nil {
				return result, fmt.Errorf("failed to look up seed user %d: %w", u.ID, err)
			}
			if existing == nil {
				return result, fmt.Errorf("seed user %d: %w: %s", u.ID, store.ErrUserNotFound, u.Email)
			}
			log.Debug("seed user registered concurrently", slog.Int64("user_id", existing.ID))
			ownerIDs[u.ID] = existing.ID
			result.UsersExisting++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to create seed user %d: %w", u.ID, err)
		}
		ownerIDs[u.ID] = created.ID
		result.UsersCreated++
	}

	for _, p := range c.Properties() {
		ownerID, ok := ownerIDs[p.OwnerID]
		if !ok {
			return result, fmt.Errorf("seed property %d: %w: owner %d", p.ID, store.ErrUserNotFound, p.OwnerID)
		}

		property := p
		property.ID = 0
		property.OwnerID = ownerID
		if _, err := properties.Create(ctx, &property); err != nil {
			return result, fmt.Errorf("failed to create seed property %d: %w", p.ID, err)
		}
		result.PropertiesCreated++
	}

	log.Info("catalog seeded",
		slog.Int("users_created", result.UsersCreated),
		slog.Int("users_existing", result.UsersExisting),
		slog.Int("properties_created", result.PropertiesCreated))
	return result, nil
}

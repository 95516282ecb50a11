package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/spf13/cast"
)

const (
	usersFile      = "users.json"
	propertiesFile = "properties.json"
)

//go:embed seed/*.json
var seedFS embed.FS

// seedUser mirrors a users.json entry. domain.User hides the password from
// JSON, so seed files are decoded through this type.
type seedUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// seedProperty mirrors a properties.json entry. Prices are in whole currency units.
type seedProperty struct {
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      float64 `json:"cost_per_night"`
	ParkingSpaces     int     `json:"parking_spaces"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
	Country           string  `json:"country"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Active            *bool   `json:"active"`
}

func (s seedProperty) toDomain(id int64) domain.Property {
	active := true
	if s.Active != nil {
		active = *s.Active
	}

	return domain.Property{
		ID:                id,
		OwnerID:           s.OwnerID,
		Title:             s.Title,
		Description:       s.Description,
		ThumbnailPhotoURL: s.ThumbnailPhotoURL,
		CoverPhotoURL:     s.CoverPhotoURL,
		CostPerNight:      domain.ToCents(s.CostPerNight),
		ParkingSpaces:     s.ParkingSpaces,
		NumberOfBathrooms: s.NumberOfBathrooms,
		NumberOfBedrooms:  s.NumberOfBedrooms,
		Country:           s.Country,
		Street:            s.Street,
		City:              s.City,
		Province:          s.Province,
		PostCode:          s.PostCode,
		Active:            active,
	}
}

// StagedProperty is a property held by the catalog. The catalog never writes
// to a database, so Persisted is always false; Seed copies properties into a
// store and the store returns its own records.
type StagedProperty struct {
	domain.Property
	Persisted bool `json:"persisted"`
}

// Catalog is the in-memory seed data set. It is safe for concurrent use.
type Catalog struct {
	mu         sync.Mutex
	users      map[int64]domain.User
	properties map[int64]domain.Property
	nextID     int64
	logger     *slog.Logger
}

// Load returns a catalog populated from the embedded seed files.
func Load(logger *slog.Logger) (*Catalog, error) {
	fsys, err := fs.Sub(seedFS, "seed")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded seed data: %w", err)
	}
	return LoadFS(fsys, logger)
}

// LoadFS returns a catalog populated from users.json and properties.json in fsys.
// Both files are JSON objects keyed by numeric id.
func LoadFS(fsys fs.FS, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var rawUsers map[string]seedUser
	if err := readJSON(fsys, usersFile, &rawUsers); err != nil {
		return nil, err
	}
	var rawProperties map[string]seedProperty
	if err := readJSON(fsys, propertiesFile, &rawProperties); err != nil {
		return nil, err
	}

	c := &Catalog{
		users:      make(map[int64]domain.User, len(rawUsers)),
		properties: make(map[int64]domain.Property, len(rawProperties)),
		logger:     logger.With(slog.String("component", "catalog")),
	}

	for key, raw := range rawUsers {
		id, err := parseID(usersFile, key)
		if err != nil {
			return nil, err
		}
		user := domain.User{ID: id, Name: raw.Name, Email: raw.Email, Password: raw.Password}
		if err := user.Validate(); err != nil {
			return nil, fmt.Errorf("%s: user %d: %w", usersFile, id, err)
		}
		c.users[id] = user
	}

	for key, raw := range rawProperties {
		id, err := parseID(propertiesFile, key)
		if err != nil {
			return nil, err
		}
		if !domain.ValidPrice(raw.CostPerNight) {
			return nil, fmt.Errorf("%s: property %d: %w: cost_per_night %v is out of range",
				propertiesFile, id, domain.ErrValidation, raw.CostPerNight)
		}
		property := raw.toDomain(id)
		if err := property.Validate(); err != nil {
			return nil, fmt.Errorf("%s: property %d: %w", propertiesFile, id, err)
		}
		c.properties[id] = property
		c.nextID = max(c.nextID, id)
	}

	c.logger.Debug("catalog loaded",
		slog.Int("users", len(c.users)),
		slog.Int("properties", len(c.properties)))
	return c, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func parseID(file, key string) (int64, error) {
	id, err := cast.ToInt64E(key)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: invalid id key %q", file, key)
	}
	return id, nil
}

// AddProperty stages a property in the catalog under one more than the highest
// id seen so far and returns it. Existing properties are never replaced. The
// property is NOT written to the database.
func (c *Catalog) AddProperty(property domain.Property) (StagedProperty, error) {
	if err := property.Validate(); err != nil {
		return StagedProperty{}, err
	}

	c.mu.Lock()
	c.nextID++
	property.ID = c.nextID
	property.AverageRating = nil
	c.properties[property.ID] = property
	c.mu.Unlock()

	c.logger.Warn("property staged in catalog only; it is not persisted",
		slog.Int64("property_id", property.ID),
		slog.Int64("owner_id", property.OwnerID))

	return StagedProperty{Property: property, Persisted: false}, nil
}

// Properties returns the staged properties ordered by id.
func (c *Catalog) Properties() []domain.Property {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Property, 0, len(c.properties))
	for _, p := range c.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Users returns the seed users ordered by id.
func (c *Catalog) Users() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.User, 0, len(c.users))
	for _, u := range c.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

package domain

import "math"

// Property is a rentable listing. CostPerNight is held in cents.
//
// AverageRating is only populated by searches, which aggregate the
// property's reviews.
type Property struct {
	ID                int64  `db:"id"                  json:"id"`
	OwnerID           int64  `db:"owner_id"            json:"owner_id"            validate:"gt=0"`
	Title             string `db:"title"               json:"title"               validate:"required,max=255"`
	Description       string `db:"description"         json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url" validate:"required,url,max=255"`
	CoverPhotoURL     string `db:"cover_photo_url"     json:"cover_photo_url"     validate:"required,url,max=255"`
	CostPerNight      int64  `db:"cost_per_night"      json:"cost_per_night"      validate:"gte=0,lte=2147483647"`
	ParkingSpaces     int    `db:"parking_spaces"      json:"parking_spaces"      validate:"gte=0"`
	NumberOfBathrooms int    `db:"number_of_bathrooms" json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `db:"number_of_bedrooms"  json:"number_of_bedrooms"  validate:"gte=0"`
	Country           string `db:"country"             json:"country"             validate:"required,max=255"`
	Street            string `db:"street"              json:"street"              validate:"required,max=255"`
	City              string `db:"city"                json:"city"                validate:"required,max=255"`
	Province          string `db:"province"            json:"province"            validate:"required,max=255"`
	PostCode          string `db:"post_code"           json:"post_code"           validate:"required,max=255"`
	Active            bool   `db:"active"              json:"active"`

	AverageRating *float64 `db:"average_rating" json:"average_rating,omitempty"`
}

// Validate checks the descriptive fields required to list a property.
func (p *Property) Validate() error {
	return validateStruct(p)
}

// MaxPricePerNight is the largest price, in whole currency units, whose cent
// value fits the INTEGER cost_per_night column.
const MaxPricePerNight = float64(math.MaxInt32) / 100

// ValidPrice reports whether price is finite and no greater than
// MaxPricePerNight. Negative prices are left to struct validation.
func ValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price <= MaxPricePerNight
}

// ToCents converts a price in whole currency units to cents. The result is
// only meaningful when ValidPrice(price) holds.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

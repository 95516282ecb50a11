package domain

import "time"

// Reservation is a guest's booking of a property between two dates.
type Reservation struct {
	ID         int64     `db:"id"          json:"id"`
	StartDate  time.Time `db:"start_date"  json:"start_date"`
	EndDate    time.Time `db:"end_date"    json:"end_date"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	GuestID    int64     `db:"guest_id"    json:"guest_id"`
}

package domain

import "time"

// Vehicle belongs to a client. LicensePlate is unique across the shop.
type Vehicle struct {
	ID           int64
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	ClientID     int64
	CreatedAt    time.Time
}

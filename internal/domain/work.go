package domain

import "time"

// Work is a repair job on a vehicle. Start and end dates are optional:
// a job can be registered before it is scheduled.
type Work struct {
	ID          int64
	Description string
	Cost        float64
	Status      string
	VehicleID   int64
	CreatedAt   time.Time
	StartDate   *time.Time
	EndDate     *time.Time
}

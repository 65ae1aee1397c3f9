package dto

// CreateWorkRequest is the POST body for a repair job. work_id and
// created_at are server-assigned.
type CreateWorkRequest struct {
	Description string   `json:"description" binding:"required"`
	Cost        *float64 `json:"cost" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	VehicleID   int64    `json:"vehicle_id" binding:"required"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date"`
}

// UpdateWorkRequest is the PUT body for a repair job. Unlike the other
// entities this is a partial patch: nil means "leave unchanged", so a
// zero cost or an empty-string date ("" clears it) is still expressible.
type UpdateWorkRequest struct {
	Description *string  `json:"description"`
	Cost        *float64 `json:"cost"`
	Status      *string  `json:"status"`
	VehicleID   *int64   `json:"vehicle_id"`
	StartDate   *Date    `json:"start_date"`
	EndDate     *Date    `json:"end_date"`
}

type WorkResponse struct {
	WorkID      int64    `json:"work_id"`
	Description string   `json:"description"`
	Cost        float64  `json:"cost"`
	Status      string   `json:"status"`
	VehicleID   int64    `json:"vehicle_id"`
	CreatedAt   DateTime `json:"created_at"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date"`
}

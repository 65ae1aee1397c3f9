package dto

// VehicleRequest is the POST/PUT body for a vehicle. vehicle_id and
// created_at are server-assigned.
type VehicleRequest struct {
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         *int   `json:"year" binding:"required"`
	LicensePlate string `json:"license_plate" binding:"required"`
	ClientID     int64  `json:"client_id" binding:"required"`
}

type VehicleResponse struct {
	VehicleID    int64    `json:"vehicle_id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	LicensePlate string   `json:"license_plate"`
	ClientID     int64    `json:"client_id"`
	CreatedAt    DateTime `json:"created_at"`
}

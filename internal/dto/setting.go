package dto

// UpdateSettingRequest is the PUT body for a setting. The key comes
// from the path; only the value is mutable.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

type SettingResponse struct {
	KeyName   string   `json:"key_name"`
	Value     string   `json:"value"`
	UpdatedAt DateTime `json:"updated_at"`
}

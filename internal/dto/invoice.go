package dto

// InvoiceRequest is the POST/PUT body for an invoice. invoice_id is
// server-assigned and never read from the body.
type InvoiceRequest struct {
	ClientID     int64    `json:"client_id" binding:"required"`
	IssuedAt     DateTime `json:"issued_at"` // required, checked in the handler
	Total        *float64 `json:"total" binding:"required"`
	IVA          *float64 `json:"iva" binding:"required"`
	TotalWithIVA *float64 `json:"total_with_iva" binding:"required"`
}

type InvoiceResponse struct {
	InvoiceID    int64    `json:"invoice_id"`
	ClientID     int64    `json:"client_id"`
	IssuedAt     DateTime `json:"issued_at"`
	Total        float64  `json:"total"`
	IVA          float64  `json:"iva"`
	TotalWithIVA float64  `json:"total_with_iva"`
}

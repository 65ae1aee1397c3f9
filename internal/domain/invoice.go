package domain

import "time"

// Invoice is a bill issued to a client. It owns its line items:
// deleting an invoice cascades to them at the database level.
type Invoice struct {
	ID           int64
	ClientID     int64
	IssuedAt     time.Time
	Total        float64
	IVA          float64
	TotalWithIVA float64
}

// InvoiceItem is a single line on an invoice. TaskID links the line
// back to the task that produced the charge, when there is one.
type InvoiceItem struct {
	ID          int64
	Description string
	Cost        float64
	InvoiceID   int64
	TaskID      *int64
}

package dto

// InvoiceItemRequest is the POST/PUT body for an invoice line item.
// task_id is optional: not every charge comes from a task.
type InvoiceItemRequest struct {
	Description string   `json:"description" binding:"required"`
	Cost        *float64 `json:"cost" binding:"required"`
	InvoiceID   int64    `json:"invoice_id" binding:"required"`
	TaskID      *int64   `json:"task_id"`
}

type InvoiceItemResponse struct {
	ItemID      int64   `json:"item_id"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	InvoiceID   int64   `json:"invoice_id"`
	TaskID      *int64  `json:"task_id"`
}

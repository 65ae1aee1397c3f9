package handlers

import (
	"log/slog"
	"net/http"

	dom "Taller/internal/domain"
	"Taller/internal/dto"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	svc *service.InvoiceService
}

func NewInvoiceHandler(svc *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// List godoc
// @Summary      List all invoices
// @Tags         invoice
// @Produce      json
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      500  {object}  map[string]string
// @Router       /invoice/ [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		slog.Error("list invoices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, invoicesToResponses(list))
}

// Create godoc
// @Summary      Create an invoice
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InvoiceRequest  true  "Invoice body"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  map[string]string
// @Router       /invoice/ [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IssuedAt.Ptr() == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "issued_at is required"})
		return
	}

	inv, err := h.svc.Create(c.Request.Context(), req.ClientID, *req.IssuedAt.Ptr(),
		*req.Total, *req.IVA, *req.TotalWithIVA)
	if err != nil {
		slog.Error("create invoice", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, invoiceToResponse(inv))
}

// GetByID godoc
// @Summary      Get an invoice by ID
// @Tags         invoice
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /invoice/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	inv, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("get invoice", "invoice_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, invoiceToResponse(inv))
}

// Update godoc
// @Summary      Update an invoice (full replace)
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Invoice ID"
// @Param        body  body      dto.InvoiceRequest  true  "Full field set"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /invoice/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IssuedAt.Ptr() == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "issued_at is required"})
		return
	}

	inv, err := h.svc.Update(c.Request.Context(), id, req.ClientID, *req.IssuedAt.Ptr(),
		*req.Total, *req.IVA, *req.TotalWithIVA)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("update invoice", "invoice_id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, invoiceToResponse(inv))
}

// Delete godoc
// @Summary      Delete an invoice and its line items
// @Tags         invoice
// @Param        id   path  int  true  "Invoice ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /invoice/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("delete invoice", "invoice_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func invoiceToResponse(inv dom.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		InvoiceID:    inv.ID,
		ClientID:     inv.ClientID,
		IssuedAt:     dto.NewDateTime(inv.IssuedAt),
		Total:        inv.Total,
		IVA:          inv.IVA,
		TotalWithIVA: inv.TotalWithIVA,
	}
}

func invoicesToResponses(list []dom.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, len(list))
	for i := range list {
		out[i] = invoiceToResponse(list[i])
	}
	return out
}

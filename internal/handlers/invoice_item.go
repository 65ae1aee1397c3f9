package handlers

import (
	"log/slog"
	"net/http"

	dom "Taller/internal/domain"
	"Taller/internal/dto"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoiceItemHandler struct {
	svc *service.InvoiceItemService
}

func NewInvoiceItemHandler(svc *service.InvoiceItemService) *InvoiceItemHandler {
	return &InvoiceItemHandler{svc: svc}
}

// List godoc
// @Summary      List all invoice items
// @Tags         invoice_item
// @Produce      json
// @Success      200  {array}   dto.InvoiceItemResponse
// @Failure      500  {object}  map[string]string
// @Router       /invoice_item/ [get]
func (h *InvoiceItemHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		slog.Error("list invoice items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, invoiceItemsToResponses(list))
}

// Create godoc
// @Summary      Create an invoice item
// @Tags         invoice_item
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InvoiceItemRequest  true  "Invoice item body"
// @Success      201   {object}  dto.InvoiceItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /invoice_item/ [post]
func (h *InvoiceItemHandler) Create(c *gin.Context) {
	var req dto.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.svc.Create(c.Request.Context(), req.Description, *req.Cost, req.InvoiceID, req.TaskID)
	if err != nil {
		slog.Error("create invoice item", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, invoiceItemToResponse(it))
}

// GetByID godoc
// @Summary      Get an invoice item by ID
// @Tags         invoice_item
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.InvoiceItemResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /invoice_item/{id} [get]
func (h *InvoiceItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	it, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("get invoice item", "item_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, invoiceItemToResponse(it))
}

// Update godoc
// @Summary      Update an invoice item (full replace)
// @Tags         invoice_item
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.InvoiceItemRequest  true  "Full field set"
// @Success      200   {object}  dto.InvoiceItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /invoice_item/{id} [put]
func (h *InvoiceItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.InvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.svc.Update(c.Request.Context(), id, req.Description, *req.Cost, req.InvoiceID, req.TaskID)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("update invoice item", "item_id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, invoiceItemToResponse(it))
}

// Delete godoc
// @Summary      Delete an invoice item
// @Tags         invoice_item
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /invoice_item/{id} [delete]
func (h *InvoiceItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("delete invoice item", "item_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func invoiceItemToResponse(it dom.InvoiceItem) dto.InvoiceItemResponse {
	return dto.InvoiceItemResponse{
		ItemID:      it.ID,
		Description: it.Description,
		Cost:        it.Cost,
		InvoiceID:   it.InvoiceID,
		TaskID:      it.TaskID,
	}
}

func invoiceItemsToResponses(list []dom.InvoiceItem) []dto.InvoiceItemResponse {
	out := make([]dto.InvoiceItemResponse, len(list))
	for i := range list {
		out[i] = invoiceItemToResponse(list[i])
	}
	return out
}

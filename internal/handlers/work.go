package handlers

import (
	"log/slog"
	"net/http"

	dom "Taller/internal/domain"
	"Taller/internal/dto"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	svc *service.WorkService
}

func NewWorkHandler(svc *service.WorkService) *WorkHandler {
	return &WorkHandler{svc: svc}
}

// List godoc
// @Summary      List all repair jobs
// @Tags         work
// @Produce      json
// @Success      200  {array}   dto.WorkResponse
// @Failure      500  {object}  map[string]string
// @Router       /work/ [get]
func (h *WorkHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		slog.Error("list works", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, worksToResponses(list))
}

// Create godoc
// @Summary      Create a repair job
// @Tags         work
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateWorkRequest  true  "Work body"
// @Success      201   {object}  dto.WorkResponse
// @Failure      400   {object}  map[string]string
// @Router       /work/ [post]
func (h *WorkHandler) Create(c *gin.Context) {
	var req dto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.svc.Create(c.Request.Context(), req.Description, *req.Cost, req.Status,
		req.VehicleID, req.StartDate.Ptr(), req.EndDate.Ptr())
	if err != nil {
		slog.Error("create work", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, workToResponse(w))
}

// GetByID godoc
// @Summary      Get a repair job by ID
// @Tags         work
// @Produce      json
// @Param        id   path      int  true  "Work ID"
// @Success      200  {object}  dto.WorkResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /work/{id} [get]
func (h *WorkHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	w, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("get work", "work_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, workToResponse(w))
}

// Update godoc
// @Summary      Update a repair job (partial)
// @Tags         work
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Work ID"
// @Param        body  body      dto.UpdateWorkRequest  true  "Fields to change; omitted fields keep their value"
// @Success      200   {object}  dto.WorkResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /work/{id} [put]
func (h *WorkHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := service.WorkPatch{
		Description: req.Description,
		Cost:        req.Cost,
		Status:      req.Status,
		VehicleID:   req.VehicleID,
	}
	if req.StartDate != nil {
		patch.SetStartDate = true
		patch.StartDate = req.StartDate.Ptr()
	}
	if req.EndDate != nil {
		patch.SetEndDate = true
		patch.EndDate = req.EndDate.Ptr()
	}

	w, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("update work", "work_id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, workToResponse(w))
}

// Delete godoc
// @Summary      Delete a repair job
// @Tags         work
// @Param        id   path  int  true  "Work ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /work/{id} [delete]
func (h *WorkHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("delete work", "work_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func workToResponse(w dom.Work) dto.WorkResponse {
	return dto.WorkResponse{
		WorkID:      w.ID,
		Description: w.Description,
		Cost:        w.Cost,
		Status:      w.Status,
		VehicleID:   w.VehicleID,
		CreatedAt:   dto.NewDateTime(w.CreatedAt),
		StartDate:   dto.NewDate(w.StartDate),
		EndDate:     dto.NewDate(w.EndDate),
	}
}

func worksToResponses(list []dom.Work) []dto.WorkResponse {
	out := make([]dto.WorkResponse, len(list))
	for i := range list {
		out[i] = workToResponse(list[i])
	}
	return out
}

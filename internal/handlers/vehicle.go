package handlers

import (
	"log/slog"
	"net/http"

	dom "Taller/internal/domain"
	"Taller/internal/dto"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	svc *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// List godoc
// @Summary      List all vehicles
// @Tags         vehicle
// @Produce      json
// @Success      200  {array}   dto.VehicleResponse
// @Failure      500  {object}  map[string]string
// @Router       /vehicle/ [get]
func (h *VehicleHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		slog.Error("list vehicles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, vehiclesToResponses(list))
}

// Create godoc
// @Summary      Register a vehicle
// @Tags         vehicle
// @Accept       json
// @Produce      json
// @Param        body  body      dto.VehicleRequest  true  "Vehicle body"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  map[string]string
// @Router       /vehicle/ [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.svc.Create(c.Request.Context(), req.Brand, req.Model, *req.Year,
		req.LicensePlate, req.ClientID)
	if err != nil {
		slog.Error("create vehicle", "license_plate", req.LicensePlate, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, vehicleToResponse(v))
}

// GetByID godoc
// @Summary      Get a vehicle by ID
// @Tags         vehicle
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  dto.VehicleResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /vehicle/{id} [get]
func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("get vehicle", "vehicle_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, vehicleToResponse(v))
}

// Update godoc
// @Summary      Update a vehicle (full replace)
// @Tags         vehicle
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Vehicle ID"
// @Param        body  body      dto.VehicleRequest  true  "Full field set"
// @Success      200   {object}  dto.VehicleResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /vehicle/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.svc.Update(c.Request.Context(), id, req.Brand, req.Model, *req.Year,
		req.LicensePlate, req.ClientID)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("update vehicle", "vehicle_id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, vehicleToResponse(v))
}

// Delete godoc
// @Summary      Delete a vehicle
// @Tags         vehicle
// @Param        id   path  int  true  "Vehicle ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /vehicle/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("delete vehicle", "vehicle_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func vehicleToResponse(v dom.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		VehicleID:    v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		ClientID:     v.ClientID,
		CreatedAt:    dto.NewDateTime(v.CreatedAt),
	}
}

func vehiclesToResponses(list []dom.Vehicle) []dto.VehicleResponse {
	out := make([]dto.VehicleResponse, len(list))
	for i := range list {
		out[i] = vehicleToResponse(list[i])
	}
	return out
}

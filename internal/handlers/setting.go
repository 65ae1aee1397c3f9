package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	dom "Taller/internal/domain"
	"Taller/internal/dto"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	svc *service.SettingService
}

func NewSettingHandler(svc *service.SettingService) *SettingHandler {
	return &SettingHandler{svc: svc}
}

// List godoc
// @Summary      List all settings
// @Tags         setting
// @Produce      json
// @Success      200  {array}   dto.SettingResponse
// @Failure      500  {object}  map[string]string
// @Router       /setting/ [get]
func (h *SettingHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		slog.Error("list settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, settingsToResponses(list))
}

// Get godoc
// @Summary      Get a setting by key
// @Tags         setting
// @Produce      json
// @Param        key  path      string  true  "Setting key"
// @Success      200  {object}  dto.SettingResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /setting/{key} [get]
func (h *SettingHandler) Get(c *gin.Context) {
	key, ok := parseKey(c)
	if !ok {
		return
	}
	st, err := h.svc.Get(c.Request.Context(), key)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("get setting", "key_name", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, settingToResponse(st))
}

// Update godoc
// @Summary      Update a setting's value
// @Tags         setting
// @Accept       json
// @Produce      json
// @Param        key   path      string  true  "Setting key"
// @Param        body  body      dto.UpdateSettingRequest  true  "New value"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /setting/{key} [put]
func (h *SettingHandler) Update(c *gin.Context) {
	key, ok := parseKey(c)
	if !ok {
		return
	}
	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.svc.Update(c.Request.Context(), key, req.Value)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("update setting", "key_name", key, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": writeErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, settingToResponse(st))
}

func parseKey(c *gin.Context) (string, bool) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key"})
		return "", false
	}
	return key, true
}

func settingToResponse(s dom.Setting) dto.SettingResponse {
	return dto.SettingResponse{
		KeyName:   s.KeyName,
		Value:     s.Value,
		UpdatedAt: dto.NewDateTime(s.UpdatedAt),
	}
}

func settingsToResponses(list []dom.Setting) []dto.SettingResponse {
	out := make([]dto.SettingResponse, len(list))
	for i := range list {
		out[i] = settingToResponse(list[i])
	}
	return out
}

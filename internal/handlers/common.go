package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"Taller/internal/service"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeErrorMessage picks the client-facing message for a failed create
// or update. Constraint violations name their class; anything else is an
// infrastructure fault and stays generic (details go to the log only).
func writeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrDuplicate):
		return service.ErrDuplicate.Error()
	case errors.Is(err, service.ErrBadReference):
		return service.ErrBadReference.Error()
	}
	return "bad request"
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	message string
}

// NewHealthHandler creates a HealthHandler answering with the given service
// message.
func NewHealthHandler(message string) *HealthHandler {
	return &HealthHandler{message: message}
}

// RegisterRoutes registers the health route on the given router group.
func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/healthchecker", h.Check)
}

// Check handles GET /api/v1/healthchecker.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": h.message})
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"repo-catalog/internal/application/service"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the database connection of the postgres cache driver
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	controller *service.RefreshController
	db         Pinger
}

// NewHealthHandler creates a new health handler. db may be nil when the
// cache does not live in a database.
func NewHealthHandler(controller *service.RefreshController, db Pinger) *HealthHandler {
	return &HealthHandler{
		controller: controller,
		db:         db,
	}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status of the service and the load status of the repository list
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:        "healthy",
		Message:       "Service is running",
		CatalogStatus: h.controller.Snapshot().Status.String(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			resp.Status = "unhealthy"
			resp.Message = "Cache database unreachable: " + err.Error()
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CatalogStatus string `json:"catalog_status"`
}

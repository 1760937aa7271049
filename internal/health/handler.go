// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/employee_api/internal/employee/client"
)

// Handler handles health check requests.
type Handler struct {
	client client.Client
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(c client.Client, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		client: c,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /health request. The service holds no state of its own,
// so health means the upstream employee API is reachable.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.client.FetchAll(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status: "unhealthy",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Status: "ok",
	})
}

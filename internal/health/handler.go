// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
)

// Pinger checks that a storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health check requests.
type Handler struct {
	store  *store.Store
	pinger Pinger
	driver string
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(st *store.Store, pinger Pinger, driver string, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		store:  st,
		pinger: pinger,
		driver: driver,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status  string                      `json:"status"`
	Storage snapshotModel.StorageStatus `json:"storage"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := h.store.Status()
	status.Driver = h.driver

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warnw("health check failed", "driver", h.driver, "error", err)
		status.Healthy = false
		if status.LastError == "" {
			status.LastError = err.Error()
		}
	}

	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, Response{Status: "degraded", Storage: status})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok", Storage: status})
}

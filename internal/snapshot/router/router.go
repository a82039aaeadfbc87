// Package router provides snapshot module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/snapshot/handler"
	"github.com/festy23/scoreboard/internal/snapshot/service"
	"github.com/festy23/scoreboard/internal/snapshot/store"
)

// RegisterRoutes registers snapshot module routes. driver names the storage backend
// reported by the storage status endpoint.
func RegisterRoutes(r *gin.Engine, st *store.Store, driver string, logger *zap.SugaredLogger) {
	svc := service.New(st, driver, logger)
	h := handler.New(svc, logger)

	snapshot := r.Group("/snapshot")
	snapshot.GET("", h.Get)
	snapshot.PUT("/mode", h.SetMode)
	snapshot.GET("/export", h.Export)
	snapshot.POST("/import", h.Import)
	snapshot.POST("/reset", h.ResetAll)
	snapshot.GET("/storage", h.StorageStatus)
}

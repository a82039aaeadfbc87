// Package router provides manual stats module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/manualstats/handler"
	"github.com/festy23/scoreboard/internal/manualstats/service"
	"github.com/festy23/scoreboard/internal/snapshot/store"
)

// RegisterRoutes registers manual stats module routes.
func RegisterRoutes(r *gin.Engine, st *store.Store, logger *zap.SugaredLogger) {
	svc := service.New(st, logger)
	h := handler.New(svc, logger)

	stats := r.Group("/manual-stats")
	stats.GET("", h.Table)
	stats.PUT("", h.Apply)
	stats.POST("/reset", h.ResetAll)
}

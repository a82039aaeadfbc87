// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/team/handler"
	"github.com/festy23/scoreboard/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, st *store.Store, logger *zap.SugaredLogger) {
	svc := service.New(st, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.GET("", h.List)
	teams.GET("/search", h.Search)
	teams.POST("/:id/points", h.AdjustPoints)
	teams.PUT("/:id/points", h.SetPoints)
	teams.PUT("/:id/name", h.Rename)
}

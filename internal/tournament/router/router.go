// Package router provides tournament module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/tournament/handler"
	"github.com/festy23/scoreboard/internal/tournament/service"
)

// RegisterRoutes registers tournament module routes.
func RegisterRoutes(r *gin.Engine, st *store.Store, logger *zap.SugaredLogger) {
	svc := service.New(st, logger)
	h := handler.New(svc, logger)

	tournament := r.Group("/tournament")
	tournament.GET("", h.Get)
	tournament.POST("", h.Create)
	tournament.POST("/games/:gameId/result", h.RecordResult)
	tournament.POST("/reset", h.Reset)
}

// Package router provides league module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/league/handler"
	"github.com/festy23/scoreboard/internal/league/service"
	"github.com/festy23/scoreboard/internal/snapshot/store"
)

// RegisterRoutes registers league module routes.
func RegisterRoutes(r *gin.Engine, st *store.Store, logger *zap.SugaredLogger) {
	svc := service.New(st, logger)
	h := handler.New(svc, logger)

	league := r.Group("/league")
	league.GET("", h.Get)
	league.POST("", h.Create)
	league.POST("/rounds/:roundId/games/:gameId/result", h.RecordResult)
	league.POST("/advance", h.AdvanceRound)
	league.POST("/reset", h.Reset)
}

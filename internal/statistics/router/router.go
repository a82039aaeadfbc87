// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/snapshot/store"
	"github.com/festy23/scoreboard/internal/standings"
	"github.com/festy23/scoreboard/internal/statistics/handler"
	"github.com/festy23/scoreboard/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, st *store.Store, formula standings.Formula, logger *zap.SugaredLogger) {
	svc := service.New(st, formula, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/final", h.FinalScores)
}

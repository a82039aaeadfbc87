// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
	"github.com/festy23/scoreboard/internal/standings"
	"github.com/festy23/scoreboard/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// FinalScores handles GET /statistics/final request.
// The optional formula query parameter overrides the configured table formula.
func (h *Handler) FinalScores(c *gin.Context) {
	resp, err := h.service.FinalScores(c.Request.Context(), c.Query("formula"))
	if err != nil {
		if errors.Is(err, standings.ErrUnknownFormula) {
			apierror.Respond(c, apierror.CodeValidation, "formula must be league or classic", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error building final scores", "error", err)
		apierror.Internal(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

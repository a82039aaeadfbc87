// Package handler provides HTTP handlers for manual stats endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
	manualModel "github.com/festy23/scoreboard/internal/manualstats/model"
	"github.com/festy23/scoreboard/internal/manualstats/service"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// Handler handles HTTP requests for manual stats endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new manual stats handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Table handles GET /manual-stats.
func (h *Handler) Table(c *gin.Context) {
	resp, err := h.service.Table(c.Request.Context())
	if err != nil {
		h.handleError(c, "error getting stats table", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Apply handles PUT /manual-stats.
func (h *Handler) Apply(c *gin.Context) {
	var req manualModel.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "stats must list team_id with wins, draws and losses", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), req.Stats)
	if err != nil {
		h.handleError(c, "error applying manual stats", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetAll handles POST /manual-stats/reset.
func (h *Handler) ResetAll(c *gin.Context) {
	var req manualModel.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ResetAll(c.Request.Context(), req.Confirm)
	if err != nil {
		h.handleError(c, "error resetting manual stats", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, manualModel.ErrEmptyStats), errors.Is(err, teamModel.ErrTeamNotFound):
		apierror.Respond(c, apierror.CodeValidation, err.Error(), http.StatusBadRequest)
	case errors.Is(err, matchModel.ErrNotConfirmed):
		apierror.Respond(c, apierror.CodeConfirmationRequired, "reset must be confirmed", http.StatusConflict)
	default:
		h.logger.Errorw(msg, "error", err, "path", c.FullPath())
		apierror.Internal(c)
	}
}

// Package handler provides HTTP handlers for tournament endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	tournamentModel "github.com/festy23/scoreboard/internal/tournament/model"
	"github.com/festy23/scoreboard/internal/tournament/service"
)

// Handler handles HTTP requests for tournament endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new tournament handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /tournament.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, tournamentModel.ErrTournamentNotStarted) {
			apierror.NotFound(c, "tournament not started")
			return
		}
		h.handleError(c, "error getting tournament", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /tournament.
func (h *Handler) Create(c *gin.Context) {
	var req tournamentModel.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req.Name, req.TeamIDs)
	if err != nil {
		h.handleError(c, "error creating tournament", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RecordResult handles POST /tournament/games/:gameId/result.
func (h *Handler) RecordResult(c *gin.Context) {
	var req tournamentModel.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "outcome is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordResult(c.Request.Context(), c.Param("gameId"), req.Outcome)
	if err != nil {
		h.handleError(c, "error recording tournament result", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset handles POST /tournament/reset.
func (h *Handler) Reset(c *gin.Context) {
	var req tournamentModel.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Reset(c.Request.Context(), req.Confirm)
	if err != nil {
		h.handleError(c, "error resetting tournament", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, tournamentModel.ErrInvalidTournamentName),
		errors.Is(err, tournamentModel.ErrInvalidTeamSelection),
		errors.Is(err, tournamentModel.ErrDrawNotAllowed),
		errors.Is(err, matchModel.ErrInvalidOutcome):
		apierror.Respond(c, apierror.CodeValidation, err.Error(), http.StatusBadRequest)
	case errors.Is(err, tournamentModel.ErrGameNotFound):
		apierror.NotFound(c, "game not found")
	case errors.Is(err, tournamentModel.ErrTournamentNotStarted):
		apierror.Respond(c, apierror.CodeNotStarted, "tournament not started", http.StatusConflict)
	case errors.Is(err, tournamentModel.ErrFinalNotReady):
		apierror.Respond(c, apierror.CodeNotReady, "both semifinals must be played before the final", http.StatusConflict)
	case errors.Is(err, matchModel.ErrNotConfirmed):
		apierror.Respond(c, apierror.CodeConfirmationRequired, "reset must be confirmed", http.StatusConflict)
	default:
		h.logger.Errorw(msg, "error", err, "path", c.FullPath())
		apierror.Internal(c)
	}
}

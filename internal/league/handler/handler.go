// Package handler provides HTTP handlers for league endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	"github.com/festy23/scoreboard/internal/league/service"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
)

// Handler handles HTTP requests for league endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new league handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /league.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, leagueModel.ErrLeagueNotStarted) {
			apierror.NotFound(c, "league not started")
			return
		}
		h.handleError(c, "error getting league", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /league.
func (h *Handler) Create(c *gin.Context) {
	var req leagueModel.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, "error creating league", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RecordResult handles POST /league/rounds/:roundId/games/:gameId/result.
func (h *Handler) RecordResult(c *gin.Context) {
	var req leagueModel.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "outcome is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordResult(c.Request.Context(), c.Param("roundId"), c.Param("gameId"), req.Outcome)
	if err != nil {
		h.handleError(c, "error recording league result", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdvanceRound handles POST /league/advance.
func (h *Handler) AdvanceRound(c *gin.Context) {
	resp, err := h.service.AdvanceRound(c.Request.Context())
	if err != nil {
		h.handleError(c, "error advancing league round", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset handles POST /league/reset.
func (h *Handler) Reset(c *gin.Context) {
	var req leagueModel.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Reset(c.Request.Context(), req.Confirm)
	if err != nil {
		h.handleError(c, "error resetting league", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, leagueModel.ErrInvalidLeagueName),
		errors.Is(err, matchModel.ErrInvalidOutcome):
		apierror.Respond(c, apierror.CodeValidation, err.Error(), http.StatusBadRequest)
	case errors.Is(err, leagueModel.ErrRoundNotFound):
		apierror.NotFound(c, "round not found")
	case errors.Is(err, leagueModel.ErrGameNotFound):
		apierror.NotFound(c, "game not found")
	case errors.Is(err, leagueModel.ErrLeagueNotStarted):
		apierror.Respond(c, apierror.CodeNotStarted, "league not started", http.StatusConflict)
	case errors.Is(err, leagueModel.ErrRoundNotReady):
		apierror.Respond(c, apierror.CodeNotReady, "complete all games in the current round first", http.StatusConflict)
	case errors.Is(err, leagueModel.ErrInvalidRoster):
		apierror.Respond(c, apierror.CodeInvalidRoster, err.Error(), http.StatusConflict)
	case errors.Is(err, matchModel.ErrNotConfirmed):
		apierror.Respond(c, apierror.CodeConfirmationRequired, "reset must be confirmed", http.StatusConflict)
	default:
		h.logger.Errorw(msg, "error", err, "path", c.FullPath())
		apierror.Internal(c)
	}
}

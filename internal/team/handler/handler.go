// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
	"github.com/festy23/scoreboard/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /teams.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "error listing teams", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustPoints handles POST /teams/:id/points.
func (h *Handler) AdjustPoints(c *gin.Context) {
	var req teamModel.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AdjustPoints(c.Request.Context(), c.Param("id"), req.Change)
	if err != nil {
		h.handleError(c, "error adjusting points", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetPoints handles PUT /teams/:id/points.
func (h *Handler) SetPoints(c *gin.Context) {
	var req teamModel.SetPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SetPoints(c.Request.Context(), c.Param("id"), req.Points)
	if err != nil {
		h.handleError(c, "error setting points", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Rename handles PUT /teams/:id/name.
func (h *Handler) Rename(c *gin.Context) {
	var req teamModel.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "name is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.handleError(c, "error renaming team", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search handles GET /teams/search?q=.
func (h *Handler) Search(c *gin.Context) {
	resp, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, "error searching teams", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		apierror.NotFound(c, "team not found")
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		apierror.Respond(c, apierror.CodeInvalidRequest, "name cannot be empty", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrEmptyQuery):
		apierror.Respond(c, apierror.CodeInvalidRequest, "q parameter is required", http.StatusBadRequest)
	default:
		h.internalError(c, msg, err)
	}
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Errorw(msg, "error", err, "path", c.FullPath())
	apierror.Internal(c)
}

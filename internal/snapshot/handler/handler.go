// Package handler provides HTTP handlers for whole-snapshot endpoints.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
	matchModel "github.com/festy23/scoreboard/internal/match/model"
	"github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/service"
)

// maxImportSize bounds an imported document.
const maxImportSize = 1 << 20

// Handler handles HTTP requests for snapshot endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new snapshot handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /snapshot.
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get(c.Request.Context()))
}

// SetMode handles PUT /snapshot/mode.
func (h *Handler) SetMode(c *gin.Context) {
	var req model.SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.CodeInvalidRequest, "game_mode is required", http.StatusBadRequest)
		return
	}

	snap, err := h.service.SetMode(c.Request.Context(), req.GameMode)
	if err != nil {
		h.handleError(c, "error setting game mode", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Export handles GET /snapshot/export.
func (h *Handler) Export(c *gin.Context) {
	data, name, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.handleError(c, "error exporting snapshot", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Import handles POST /snapshot/import.
func (h *Handler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apierror.Respond(c, apierror.CodePayloadTooLarge,
				fmt.Sprintf("snapshot document exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		apierror.Respond(c, apierror.CodeInvalidRequest, "failed to read request body", http.StatusBadRequest)
		return
	}

	snap, err := h.service.Import(c.Request.Context(), data)
	if err != nil {
		h.handleError(c, "error importing snapshot", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ResetAll handles POST /snapshot/reset.
func (h *Handler) ResetAll(c *gin.Context) {
	var req model.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierror.Respond(c, apierror.CodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	snap, err := h.service.ResetAll(c.Request.Context(), req.Confirm)
	if err != nil {
		h.handleError(c, "error resetting scoreboard", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// StorageStatus handles GET /snapshot/storage.
func (h *Handler) StorageStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.StorageStatus(c.Request.Context()))
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidGameMode):
		apierror.Respond(c, apierror.CodeValidation, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidFormat):
		apierror.Respond(c, apierror.CodeInvalidFormat, err.Error(), http.StatusBadRequest)
	case errors.Is(err, matchModel.ErrNotConfirmed):
		apierror.Respond(c, apierror.CodeConfirmationRequired, "reset must be confirmed", http.StatusConflict)
	default:
		h.logger.Errorw(msg, "error", err, "path", c.FullPath())
		apierror.Internal(c)
	}
}

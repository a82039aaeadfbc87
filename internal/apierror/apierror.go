// Package apierror writes the JSON error envelope returned by every endpoint.
package apierror

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the envelope.
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidRoster        = "INVALID_ROSTER"
	CodeInvalidFormat        = "INVALID_FORMAT"
	CodeNotFound             = "NOT_FOUND"
	CodeNotStarted           = "NOT_STARTED"
	CodeNotReady             = "NOT_READY"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodePayloadTooLarge      = "PAYLOAD_TOO_LARGE"
	CodeRateLimited          = "RATE_LIMITED"
	CodeInternal             = "INTERNAL_ERROR"
)

// Body is the code and message of a failed request.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the error envelope: {"error": {"code": ..., "message": ...}}.
type Response struct {
	Error Body `json:"error"`
}

// New builds an envelope.
func New(code, message string) Response {
	return Response{Error: Body{Code: code, Message: message}}
}

// Respond writes the envelope with the given status.
func Respond(c *gin.Context, code, message string, status int) {
	c.JSON(status, New(code, message))
}

// Abort writes the envelope and stops the handler chain.
func Abort(c *gin.Context, code, message string, status int) {
	c.AbortWithStatusJSON(status, New(code, message))
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, message string) {
	Respond(c, CodeNotFound, message, http.StatusNotFound)
}

// Internal writes the generic 500 envelope. Details stay in the logs.
func Internal(c *gin.Context) {
	Respond(c, CodeInternal, "internal server error", http.StatusInternalServerError)
}

package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/apierror"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack.
// A panic caused by the client hanging up is logged without a stack and
// nothing more is written. If the handler already wrote its status, the
// response is left as is.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			fields := []any{
				"panic", rec,
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			}

			if clientGone(rec) {
				logger.Warnw("client connection lost", fields...)
				c.Abort()
				return
			}

			logger.Errorw("panic recovered", append(fields, "stack", string(debug.Stack()))...)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			apierror.Abort(c, apierror.CodeInternal, "internal server error", http.StatusInternalServerError)
		}()

		c.Next()
	}
}

// clientGone reports whether rec is a write error on a connection the
// client already closed.
func clientGone(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if errors.As(opErr, &sysErr) {
		return errors.Is(sysErr.Err, syscall.EPIPE) || errors.Is(sysErr.Err, syscall.ECONNRESET)
	}
	return false
}

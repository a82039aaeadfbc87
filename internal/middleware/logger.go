// Package middleware provides the gin middleware chain of the scoreboard API.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuietPaths are logged at debug level when they succeed. Load balancers
// poll them every few seconds.
var QuietPaths = map[string]bool{
	"/health": true,
}

// Logger logs one entry per request once the handler chain has finished.
// Server errors log at error, client errors at warn, the rest at info.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		fields := []any{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if route := c.FullPath(); route != "" && route != path {
			fields = append(fields, "route", route)
		}
		if id := GetRequestID(c); id != "" {
			fields = append(fields, "request_id", id)
		}
		if query != "" {
			fields = append(fields, "query", query)
		}
		if ua := c.Request.UserAgent(); ua != "" {
			fields = append(fields, "user_agent", ua)
		}
		if size := c.Writer.Size(); size > 0 {
			fields = append(fields, "size", size)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			logger.Errorw("request failed", fields...)
		case status >= 400:
			logger.Warnw("request rejected", fields...)
		case QuietPaths[path]:
			logger.Debugw("request served", fields...)
		default:
			logger.Infow("request served", fields...)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRouter(level zapcore.Level) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(level)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core).Sugar()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/teams/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	r.POST("/league/matches/:id", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "NOT_STARTED"}})
	})
	r.GET("/statistics/final", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return r, logs
}

func TestLogger_RequestFields(t *testing.T) {
	r, logs := loggedRouter(zapcore.InfoLevel)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/t3?fields=points", nil)
	req.Header.Set("User-Agent", "scoreboard-display/1.0")
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request served", entry.Message)

	fields := entry.ContextMap()
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "/teams/t3", fields["path"])
	assert.Equal(t, "/teams/:id", fields["route"])
	assert.Equal(t, "fields=points", fields["query"])
	assert.Equal(t, "scoreboard-display/1.0", fields["user_agent"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
	assert.Contains(t, fields, "size")
}

func TestLogger_LevelByStatus(t *testing.T) {
	r, logs := loggedRouter(zapcore.DebugLevel)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/teams/t1"},
		{http.MethodPost, "/league/matches/m1"},
		{http.MethodGet, "/statistics/final"},
	} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "request rejected", entries[1].Message)
	assert.Contains(t, entries[1].ContextMap()["errors"], assert.AnError.Error())

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "request failed", entries[2].Message)
	assert.NotContains(t, entries[2].ContextMap(), "route")
}

func TestLogger_HealthChecksAreQuiet(t *testing.T) {
	r, logs := loggedRouter(zapcore.InfoLevel)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Zero(t, logs.Len())

	r, logs = loggedRouter(zapcore.DebugLevel)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
}

func TestLogger_UnknownRoute(t *testing.T) {
	r, logs := loggedRouter(zapcore.InfoLevel)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.NotContains(t, logs.All()[0].ContextMap(), "route")
}

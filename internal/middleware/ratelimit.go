package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/festy23/scoreboard/internal/apierror"
)

// limiterTTL is how long an idle client's bucket is kept.
const limiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client IP.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
	now     func() time.Time
}

// NewClientLimiter creates a limiter allowing rps requests per second with the given burst per client.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether the client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, cl := range l.clients {
		if now.Sub(cl.lastSeen) > limiterTTL {
			delete(l.clients, key)
		}
	}

	cl, ok := l.clients[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimit rejects requests over the per-client budget with 429.
func RateLimit(limiter *ClientLimiter, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		logger.Warnw("rate limit exceeded",
			"client_ip", c.ClientIP(),
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
		)
		apierror.Abort(c, apierror.CodeRateLimited, "too many requests", http.StatusTooManyRequests)
	}
}

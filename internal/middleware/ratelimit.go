package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"pr-notes/pkg/response"
)

// RateLimit rejects clients that exceed their per-IP budget with 429.
// Limiters for idle clients expire from the LRU.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !m.limiterFor(key).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.ErrorWithStatus(c, http.StatusTooManyRequests, "too many requests", nil, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// limiterFor returns the limiter for key, creating it on first use.
func (m Middleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, limiter)
	}
	return limiter
}

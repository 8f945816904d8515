package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pr-notes/internal/middleware"
	"pr-notes/pkg/log"
)

func newEngine(mw middleware.Middleware, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger(), mw.RateLimit())
	r.GET("/x", h)
	return r
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	var seen string
	r := newEngine(mw, func(c *gin.Context) {
		seen = log.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", w.Header().Get(middleware.HeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 60})
	r := newEngine(mw, func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := map[int]int{}
	for range 10 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes[w.Code]++
	}
	assert.Equal(t, 6, codes[http.StatusOK])
	assert.Equal(t, 4, codes[http.StatusTooManyRequests])
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 60})
	r := newEngine(mw, func(c *gin.Context) { c.Status(http.StatusOK) })

	var (
		mu    sync.Mutex
		codes = map[int]int{}
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			mu.Lock()
			codes[w.Code]++
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()

	// One shared bucket: only the burst gets through.
	assert.Equal(t, 6, codes[http.StatusOK])
	assert.Equal(t, 14, codes[http.StatusTooManyRequests])
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer  xyz ", "xyz"},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			c.Request.Header.Set("Authorization", tt.header)
		}
		assert.Equal(t, tt.want, middleware.BearerToken(c), tt.header)
	}
}

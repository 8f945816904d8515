package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"pr-notes/pkg/log"
)

const (
	defaultRequestsPerMin = 600
	maxTrackedClients     = 1000
	clientTTL             = 5 * time.Minute
)

// Config tunes the middleware chain.
type Config struct {
	RequestsPerMin int // per client IP, 0 uses the default
}

type Middleware struct {
	l        log.Logger
	mu       *sync.Mutex // guards get-or-create on limiters
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	return Middleware{
		l:        l,
		mu:       &sync.Mutex{},
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    max(perMin/10, 1),
	}
}

package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pr-notes/pkg/response"
)

const (
	serviceName    = "pr-notes"
	serviceVersion = "1.0.0"
	readyTimeout   = 2 * time.Second
)

// storePinger is the reachability check /ready runs against the Note Store.
type storePinger interface {
	Ping(ctx context.Context) error
}

type healthResp struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	NoteStore string `json:"note_store,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: serviceName, Version: serviceVersion}
}

// healthCheck godoc
// @Summary     Health check
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /health [GET]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// liveCheck godoc
// @Summary     Liveness check
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /live [GET]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}

// readyCheck godoc
// @Summary     Readiness check
// @Description Ready only while the Note Store answers its health endpoint.
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Failure     503 {object} response.Resp "Note Store unreachable"
// @Router      /ready [GET]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.store.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, "note store unreachable",
			map[string]any{"note_store": srv.noteStore.BaseURL, "cause": err.Error()}, nil)
		return
	}

	resp := newHealthResp("ready")
	resp.NoteStore = srv.noteStore.BaseURL
	response.OK(c, resp)
}

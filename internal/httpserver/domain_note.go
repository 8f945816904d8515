package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pr-notes/internal/middleware"
	noteHTTP "pr-notes/internal/note/delivery/http"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/note/repository/notestore"
	noteUC "pr-notes/internal/note/usecase"
)

// setupNoteDomain wires the Note Store repository, the session use case and the handler.
// Each session gets its own client so its token and rate limit are not shared.
func (srv *HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository factory
	newRepo := func(accessToken string) repository.Repository {
		cfg := srv.noteStore
		if accessToken != "" {
			cfg.AccessToken = accessToken
		}
		return notestore.New(notestore.NewClient(cfg), srv.l)
	}

	// 2. UseCase
	uc := noteUC.New(srv.l, newRepo, srv.session)

	// 3. HTTP Handler
	h := noteHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/sessions
	noteHTTP.RegisterRoutes(api.Group("/sessions"), h, mw)

	srv.l.Infof(ctx, "Note domain registered (note store: %s)", srv.noteStore.BaseURL)
	return nil
}

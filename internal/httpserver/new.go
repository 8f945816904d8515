package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pr-notes/internal/note/repository/notestore"
	"pr-notes/internal/note/usecase"
	"pr-notes/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Note domain
	noteStore       notestore.Config
	store           storePinger
	session         usecase.Config
	rateLimitPerMin int

	shutdownTimeout time.Duration
	srv             *http.Server
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Note domain
	NoteStore       notestore.Config
	Session         usecase.Config
	RateLimitPerMin int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		noteStore:       cfg.NoteStore,
		session:         cfg.Session,
		rateLimitPerMin: cfg.RateLimitPerMin,
		shutdownTimeout: 10 * time.Second,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.store = notestore.NewClient(notestore.Config{BaseURL: cfg.NoteStore.BaseURL, Timeout: readyTimeout})
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler { return srv.gin }

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.noteStore.BaseURL == "" {
		return errors.New("note store url is required")
	}
	return nil
}

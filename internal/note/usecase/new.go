package usecase

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/pkg/log"
	"pr-notes/pkg/markdown"
)

const (
	defaultMaxSessions  = 1000
	defaultSessionTTL   = 30 * time.Minute
	maxDraftsPerSession = 16
)

// RepositoryFactory builds a Note Store repository authenticated with accessToken.
type RepositoryFactory func(accessToken string) repository.Repository

// Config tunes session handling.
type Config struct {
	MaxSessions     int
	SessionTTL      time.Duration
	DefaultPageSize int
}

// implUseCase is the private implementation of note.UseCase.
type implUseCase struct {
	l        log.Logger
	newRepo  RepositoryFactory
	md       *markdown.Renderer
	sessions *expirable.LRU[string, *session]
	ttl      time.Duration
	initial  note.Criteria
	now      func() time.Time
}

var _ note.UseCase = (*implUseCase)(nil)

// New creates a new note UseCase implementation.
func New(l log.Logger, newRepo RepositoryFactory, cfg Config) *implUseCase {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	initial := note.DefaultCriteria()
	if slices.Contains(note.PageSizes, cfg.DefaultPageSize) {
		initial.PageSize = cfg.DefaultPageSize
	}

	return &implUseCase{
		l:        l,
		newRepo:  newRepo,
		md:       markdown.New(),
		sessions: expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
		ttl:      cfg.SessionTTL,
		initial:  initial,
		now:      time.Now,
	}
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"pr-notes/internal/collection"
	"pr-notes/internal/draft"
	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/notify"
)

const notificationCapacity = 50

// session is one user's client state.
type session struct {
	id         string
	repo       repository.Repository
	queue      *notify.Queue
	notifier   notify.Notifier
	collection *collection.Controller
	drafts     *expirable.LRU[string, *draft.Session]

	mu       sync.RWMutex
	identity model.UserIdentity
}

func (s *session) getIdentity() model.UserIdentity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *session) setIdentity(id model.UserIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
}

// OpenSession connects to the Note Store with the given token and reads the user profile.
func (uc *implUseCase) OpenSession(ctx context.Context, input note.OpenSessionInput) (note.SessionOutput, error) {
	repo := uc.newRepo(input.AccessToken)

	identity, err := repo.GetProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.OpenSession GetProfile: %v", err)
		return note.SessionOutput{}, fmt.Errorf("%w: %w", note.ErrProfileFailed, err)
	}

	queue := notify.NewQueue(notificationCapacity)
	notifier := notify.Multi{queue, notify.NewLogging(uc.l)}

	s := &session{
		id:         uuid.NewString(),
		repo:       repo,
		queue:      queue,
		notifier:   notifier,
		collection: collection.New(repo, notifier, uc.l, uc.initial),
		drafts:     expirable.NewLRU[string, *draft.Session](maxDraftsPerSession, nil, uc.ttl),
		identity:   identity,
	}
	uc.sessions.Add(s.id, s)

	uc.l.Infof(ctx, "uc.OpenSession: session %s opened (github configured: %t)", s.id, identity.GithubConfigured())
	return note.SessionOutput{
		ID:        s.id,
		Identity:  identity,
		ExpiresAt: uc.now().Add(uc.ttl),
	}, nil
}

// CloseSession drops a session and every draft it holds.
func (uc *implUseCase) CloseSession(ctx context.Context, sessionID string) error {
	if !uc.sessions.Remove(sessionID) {
		return note.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "uc.CloseSession: session %s closed", sessionID)
	return nil
}

// Profile re-reads the user profile so GitHub configuration changes are picked up.
func (uc *implUseCase) Profile(ctx context.Context, sessionID string) (model.UserIdentity, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return model.UserIdentity{}, err
	}

	identity, err := s.repo.GetProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile GetProfile: %v", err)
		return s.getIdentity(), fmt.Errorf("%w: %w", note.ErrProfileFailed, err)
	}
	s.setIdentity(identity)
	return identity, nil
}

// Notifications drains the session's pending notifications.
func (uc *implUseCase) Notifications(ctx context.Context, sessionID string) ([]notify.Message, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.queue.Drain(), nil
}

func (uc *implUseCase) session(id string) (*session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, note.ErrSessionNotFound
	}
	return s, nil
}

// Package draft drives one create or edit form from load through submission.
package draft

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/notify"
	pkgLog "pr-notes/pkg/log"
)

// State is the lifecycle state of a draft session.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateLoadFailed State = "load_failed"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

// Terminal reports whether no further transition can leave s.
func (s State) Terminal() bool {
	return s == StateLoadFailed || s == StateSubmitted
}

// Mode selects which Note Store operation a submission invokes.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Destination is where the UI should navigate once a session ends.
type Destination struct {
	View   string // "collection" or "note"
	NoteID string
}

const (
	ViewCollection = "collection"
	ViewNote       = "note"
)

// Store is the subset of the Note Store a draft session needs.
type Store interface {
	GetNote(ctx context.Context, id string) (model.Note, error)
	CreateNote(ctx context.Context, opt repository.SaveNoteOptions) (model.Note, error)
	UpdateNote(ctx context.Context, id string, opt repository.SaveNoteOptions) (model.Note, error)
}

// Snapshot is a read-only copy of a session.
type Snapshot struct {
	ID          string
	Mode        Mode
	NoteID      string
	State       State
	Draft       note.Draft
	Errors      note.ValidationErrors
	RemoteError string
	Note        *model.Note
	Destination *Destination
}

// Session is one draft form. Create sessions start Ready with an empty draft;
// edit sessions start Idle and must be loaded.
type Session struct {
	id       string
	mode     Mode
	noteID   string
	store    Store
	notifier notify.Notifier
	l        pkgLog.Logger

	mu        sync.Mutex
	state     State
	draft     note.Draft
	existing  *model.PRLink
	errs      note.ValidationErrors
	remoteErr string
	saved     *model.Note
	dest      *Destination
}

func newSession(mode Mode, noteID string, store Store, notifier notify.Notifier, l pkgLog.Logger) *Session {
	if notifier == nil {
		notifier = notify.Nop
	}
	return &Session{
		id:       uuid.NewString(),
		mode:     mode,
		noteID:   noteID,
		store:    store,
		notifier: notifier,
		l:        l,
	}
}

// NewCreate opens a create session, Ready with an empty draft.
func NewCreate(store Store, notifier notify.Notifier, l pkgLog.Logger) *Session {
	s := newSession(ModeCreate, "", store, notifier, l)
	s.state = StateReady
	return s
}

// NewEdit opens an edit session for noteID. Call Load before editing.
func NewEdit(store Store, notifier notify.Notifier, l pkgLog.Logger, noteID string) (*Session, error) {
	if noteID == "" {
		return nil, ErrEmptyNoteID
	}
	s := newSession(ModeEdit, noteID, store, notifier, l)
	s.state = StateIdle
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Load fetches the note being edited and seeds the draft from it.
// A failure is terminal: the session moves to LoadFailed and points back to the collection.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.mode != ModeEdit || s.state != StateIdle {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.state = StateLoading
	s.mu.Unlock()

	n, err := s.store.GetNote(ctx, s.noteID)

	s.mu.Lock()
	if err != nil {
		s.state = StateLoadFailed
		s.dest = &Destination{View: ViewCollection}
		s.mu.Unlock()

		s.l.Errorf(ctx, "draft.Load GetNote %s: %v", s.noteID, err)
		s.notifier.Notify(ctx, notify.KindError, msgLoadFailed)
		return ErrLoadFailed
	}

	s.draft = note.DraftFromNote(n)
	if n.PRLink != nil {
		link := *n.PRLink
		s.existing = &link
	}
	s.state = StateReady
	s.mu.Unlock()
	return nil
}

// Edit applies fn to the draft. Only allowed while Ready.
func (s *Session) Edit(fn func(d *note.Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrInvalidState
	}
	fn(&s.draft)
	return nil
}

// Replace swaps the whole draft. Only allowed while Ready.
func (s *Session) Replace(d note.Draft) error {
	return s.Edit(func(cur *note.Draft) { *cur = d })
}

// Submit validates the draft against identity and, if valid, creates or updates the note.
//
// A validation failure returns note.ValidationErrors without any network call. A remote
// failure returns *SubmitError. In both cases the session is back to Ready with the draft
// left exactly as it was.
func (s *Session) Submit(ctx context.Context, identity model.UserIdentity) (model.Note, error) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return model.Note{}, ErrInvalidState
	}
	s.state = StateValidating
	payload, err := note.Validate(s.draft, identity, s.existing)
	if err != nil {
		s.errs, _ = err.(note.ValidationErrors)
		s.remoteErr = ""
		s.state = StateReady
		s.mu.Unlock()
		return model.Note{}, err
	}
	s.errs = nil
	s.remoteErr = ""
	s.state = StateSubmitting
	s.mu.Unlock()

	opt := repository.SaveNoteOptions{Title: payload.Title, Content: payload.Content, PRLink: payload.PRLink}
	var (
		saved model.Note
		msg   string
	)
	if s.mode == ModeCreate {
		saved, err = s.store.CreateNote(ctx, opt)
		msg = msgCreated
	} else {
		saved, err = s.store.UpdateNote(ctx, s.noteID, opt)
		msg = msgUpdated
	}

	s.mu.Lock()
	if err != nil {
		se := NewSubmitError(err)
		s.remoteErr = se.Message
		s.state = StateReady
		s.mu.Unlock()

		s.l.Errorf(ctx, "draft.Submit %s: %v", s.mode, err)
		s.notifier.Notify(ctx, notify.KindError, se.Message)
		return model.Note{}, se
	}

	if saved.ID == "" {
		saved.ID = s.noteID
	}
	s.saved = &saved
	s.state = StateSubmitted
	s.dest = &Destination{View: ViewNote, NoteID: saved.ID}
	s.mu.Unlock()

	s.notifier.Notify(ctx, notify.KindSuccess, msg)
	return saved, nil
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.id,
		Mode:        s.mode,
		NoteID:      s.noteID,
		State:       s.state,
		Draft:       s.draft,
		RemoteError: s.remoteErr,
	}
	if len(s.errs) > 0 {
		snap.Errors = append(note.ValidationErrors(nil), s.errs...)
	}
	if s.saved != nil {
		n := *s.saved
		snap.Note = &n
	}
	if s.dest != nil {
		d := *s.dest
		snap.Destination = &d
	}
	return snap
}

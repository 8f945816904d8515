package note

import (
	"time"

	"pr-notes/internal/model"
)

// Navigation targets returned to the UI.
const (
	ViewCollection = "collection"
	ViewNote       = "note"
)

// Destination tells the UI where to navigate after an operation.
type Destination struct {
	View   string
	NoteID string
}

// --- UseCase Inputs ---

type OpenSessionInput struct {
	AccessToken string
}

// ListInput describes one change to the collection criteria. Unset fields keep their
// current value; an input with nothing set re-fetches the current criteria.
type ListInput struct {
	SessionID string
	Filters   *Filters // nil keeps the current filters
	Sort      Sort     // "" keeps the current sort
	PageSize  int      // 0 keeps the current page size
	Page      int      // 0 keeps the current page, or page 1 after any other change
}

type NoteRef struct {
	SessionID string
	NoteID    string
}

type StartDraftInput struct {
	SessionID string
	NoteID    string // empty starts a create draft
}

type DraftRef struct {
	SessionID string
	DraftID   string
}

// DraftPatch holds the fields to change; nil leaves a field untouched.
type DraftPatch struct {
	Title     *string
	Content   *string
	PRNumber  *string
	RepoOwner *string
	RepoName  *string
}

// Apply writes the set fields onto d.
func (p DraftPatch) Apply(d *Draft) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.Title, p.Title)
	set(&d.Content, p.Content)
	set(&d.PRNumber, p.PRNumber)
	set(&d.RepoOwner, p.RepoOwner)
	set(&d.RepoName, p.RepoName)
}

type EditDraftInput struct {
	DraftRef
	Patch DraftPatch
}

// --- UseCase Outputs ---

type SessionOutput struct {
	ID        string
	Identity  model.UserIdentity
	ExpiresAt time.Time
}

type ListOutput struct {
	Criteria   Criteria
	Result     model.PageResult
	Loaded     bool
	Loading    bool
	Error      string
	Window     []model.PageButton
	Summary    string
	HasFilters bool
	Empty      bool
}

type DetailOutput struct {
	Note        model.Note
	ContentHTML string
	BadgeClass  string // empty when the note has no PR
	Destination *Destination
}

type DashboardOutput struct {
	TotalNotes  int
	NotesWithPR int
	Recent      []model.Note
}

type DraftOutput struct {
	ID          string
	Mode        string
	NoteID      string
	State       string
	Draft       Draft
	Errors      ValidationErrors
	RemoteError string
	Note        *model.Note
	Destination *Destination
}

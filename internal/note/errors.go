package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrInvalidSort           = errors.New("invalid sort key")
	ErrInvalidPage           = errors.New("page must be a positive integer")
	ErrInvalidPageSize       = errors.New("page size must be one of 5, 10, 20, 50")
	ErrInvalidPRNumberFilter = errors.New("pr number filter must be a positive integer")
	ErrInvalidPRStateFilter  = errors.New("pr state filter must be open, closed or merged")
	ErrNoteNotFound          = errors.New("note not found")
	ErrSessionNotFound       = errors.New("session not found")
	ErrDraftNotFound         = errors.New("draft not found")
	ErrEmptyNoteID           = errors.New("note id is empty")

	ErrFetchFailed       = errors.New("failed to load notes")
	ErrDeleteFailed      = errors.New("failed to delete note")
	ErrLoadFailed        = errors.New("failed to load note")
	ErrSubmitFailed      = errors.New("failed to save note")
	ErrProfileFailed     = errors.New("failed to load profile")
	ErrDashboardFailed   = errors.New("failed to load dashboard data")
	ErrInvalidDraftState = errors.New("operation not allowed in current draft state")
)

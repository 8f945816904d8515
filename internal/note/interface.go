package note

import (
	"context"

	"pr-notes/internal/model"
	"pr-notes/internal/notify"
)

// UseCase is the session-scoped note client. Every session owns its own Note Store
// connection, collection state, drafts and notification queue.
//
// List, Delete, StartDraft and SubmitDraft return a usable output alongside
// ErrFetchFailed, ErrLoadFailed, ErrSubmitFailed or ValidationErrors so the caller
// can keep rendering the current screen.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Sessions
	OpenSession(ctx context.Context, input OpenSessionInput) (SessionOutput, error)
	CloseSession(ctx context.Context, sessionID string) error
	Profile(ctx context.Context, sessionID string) (model.UserIdentity, error)
	Notifications(ctx context.Context, sessionID string) ([]notify.Message, error)

	// Collection
	List(ctx context.Context, input ListInput) (ListOutput, error)
	ResetList(ctx context.Context, sessionID string) (ListOutput, error)
	Delete(ctx context.Context, ref NoteRef) (ListOutput, error)
	Dashboard(ctx context.Context, sessionID string) (DashboardOutput, error)

	// Detail
	Detail(ctx context.Context, ref NoteRef) (DetailOutput, error)
	DeleteFromDetail(ctx context.Context, ref NoteRef) (Destination, error)

	// Drafts
	StartDraft(ctx context.Context, input StartDraftInput) (DraftOutput, error)
	GetDraft(ctx context.Context, ref DraftRef) (DraftOutput, error)
	EditDraft(ctx context.Context, input EditDraftInput) (DraftOutput, error)
	SubmitDraft(ctx context.Context, ref DraftRef) (DraftOutput, error)
	DiscardDraft(ctx context.Context, ref DraftRef) error
}

package repository

import (
	"context"

	"pr-notes/internal/model"
)

// Repository is the composed interface for the remote Note Store.
type Repository interface {
	NoteRepository
	ProfileRepository
}

// NoteRepository defines the Note Store operations.
type NoteRepository interface {
	ListNotes(ctx context.Context, opt ListNotesOptions) (model.PageResult, error)
	GetNote(ctx context.Context, id string) (model.Note, error)
	CreateNote(ctx context.Context, opt SaveNoteOptions) (model.Note, error)
	UpdateNote(ctx context.Context, id string, opt SaveNoteOptions) (model.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// ProfileRepository resolves the identity of the session user.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (model.UserIdentity, error)
}

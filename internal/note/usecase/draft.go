package usecase

import (
	"context"
	"errors"

	"pr-notes/internal/draft"
	"pr-notes/internal/note"
)

// StartDraft opens a create draft, or an edit draft loaded from NoteID.
func (uc *implUseCase) StartDraft(ctx context.Context, input note.StartDraftInput) (note.DraftOutput, error) {
	s, err := uc.session(input.SessionID)
	if err != nil {
		return note.DraftOutput{}, err
	}

	var d *draft.Session
	if input.NoteID == "" {
		d = draft.NewCreate(s.repo, s.notifier, uc.l)
		s.drafts.Add(d.ID(), d)
		return toDraftOutput(d.Snapshot()), nil
	}

	d, err = draft.NewEdit(s.repo, s.notifier, uc.l, input.NoteID)
	if err != nil {
		return note.DraftOutput{}, note.ErrEmptyNoteID
	}
	s.drafts.Add(d.ID(), d)

	if err := d.Load(ctx); err != nil {
		return toDraftOutput(d.Snapshot()), note.ErrLoadFailed
	}
	return toDraftOutput(d.Snapshot()), nil
}

// GetDraft returns the current state of a draft.
func (uc *implUseCase) GetDraft(ctx context.Context, ref note.DraftRef) (note.DraftOutput, error) {
	d, err := uc.draft(ref)
	if err != nil {
		return note.DraftOutput{}, err
	}
	return toDraftOutput(d.Snapshot()), nil
}

// EditDraft applies field changes. Only a Ready draft accepts edits.
func (uc *implUseCase) EditDraft(ctx context.Context, input note.EditDraftInput) (note.DraftOutput, error) {
	d, err := uc.draft(input.DraftRef)
	if err != nil {
		return note.DraftOutput{}, err
	}

	if err := d.Edit(input.Patch.Apply); err != nil {
		return toDraftOutput(d.Snapshot()), note.ErrInvalidDraftState
	}
	return toDraftOutput(d.Snapshot()), nil
}

// SubmitDraft validates and saves a draft with the session's current identity.
func (uc *implUseCase) SubmitDraft(ctx context.Context, ref note.DraftRef) (note.DraftOutput, error) {
	s, err := uc.session(ref.SessionID)
	if err != nil {
		return note.DraftOutput{}, err
	}
	d, ok := s.drafts.Get(ref.DraftID)
	if !ok {
		return note.DraftOutput{}, note.ErrDraftNotFound
	}

	_, err = d.Submit(ctx, s.getIdentity())
	out := toDraftOutput(d.Snapshot())

	var (
		verrs note.ValidationErrors
		se    *draft.SubmitError
	)
	switch {
	case err == nil:
		return out, nil
	case errors.As(err, &verrs):
		return out, verrs
	case errors.As(err, &se):
		return out, note.ErrSubmitFailed
	case errors.Is(err, draft.ErrInvalidState):
		return out, note.ErrInvalidDraftState
	default:
		uc.l.Errorf(ctx, "uc.SubmitDraft: %v", err)
		return out, err
	}
}

// DiscardDraft drops a draft.
func (uc *implUseCase) DiscardDraft(ctx context.Context, ref note.DraftRef) error {
	s, err := uc.session(ref.SessionID)
	if err != nil {
		return err
	}
	if !s.drafts.Remove(ref.DraftID) {
		return note.ErrDraftNotFound
	}
	return nil
}

func (uc *implUseCase) draft(ref note.DraftRef) (*draft.Session, error) {
	s, err := uc.session(ref.SessionID)
	if err != nil {
		return nil, err
	}
	d, ok := s.drafts.Get(ref.DraftID)
	if !ok {
		return nil, note.ErrDraftNotFound
	}
	return d, nil
}

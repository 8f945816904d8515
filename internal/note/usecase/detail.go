package usecase

import (
	"context"
	"fmt"
	"html"

	"pr-notes/internal/note"
	"pr-notes/internal/notify"
)

const (
	msgLoadFailed   = "failed to load note"
	msgDeleteFailed = "failed to delete note"
	msgDeleted      = "note deleted successfully"
)

// Detail fetches one note with its rendered content. A failure points the UI back to the collection.
func (uc *implUseCase) Detail(ctx context.Context, ref note.NoteRef) (note.DetailOutput, error) {
	s, err := uc.session(ref.SessionID)
	if err != nil {
		return note.DetailOutput{}, err
	}
	if ref.NoteID == "" {
		return note.DetailOutput{}, note.ErrEmptyNoteID
	}

	n, err := s.repo.GetNote(ctx, ref.NoteID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetNote %s: %v", ref.NoteID, err)
		s.notifier.Notify(ctx, notify.KindError, msgLoadFailed)
		out := note.DetailOutput{Destination: &note.Destination{View: note.ViewCollection}}
		if isNotFound(err) {
			return out, fmt.Errorf("%w: %w", note.ErrLoadFailed, note.ErrNoteNotFound)
		}
		return out, note.ErrLoadFailed
	}

	body, err := uc.md.Render(n.Content)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Detail Render %s: %v", n.ID, err)
		body = "<pre>" + html.EscapeString(n.Content) + "</pre>"
	}

	out := note.DetailOutput{Note: n, ContentHTML: body}
	if n.PR != nil {
		out.BadgeClass = n.PR.State.BadgeClass()
	}
	return out, nil
}

// DeleteFromDetail deletes the viewed note and sends the UI back to the collection.
func (uc *implUseCase) DeleteFromDetail(ctx context.Context, ref note.NoteRef) (note.Destination, error) {
	s, err := uc.session(ref.SessionID)
	if err != nil {
		return note.Destination{}, err
	}
	if ref.NoteID == "" {
		return note.Destination{}, note.ErrEmptyNoteID
	}

	if err := s.repo.DeleteNote(ctx, ref.NoteID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteFromDetail DeleteNote %s: %v", ref.NoteID, err)
		s.notifier.Notify(ctx, notify.KindError, msgDeleteFailed)
		return note.Destination{View: note.ViewNote, NoteID: ref.NoteID}, note.ErrDeleteFailed
	}

	s.notifier.Notify(ctx, notify.KindSuccess, msgDeleted)
	return note.Destination{View: note.ViewCollection}, nil
}

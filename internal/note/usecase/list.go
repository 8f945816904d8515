package usecase

import (
	"context"
	"errors"

	"pr-notes/internal/collection"
	"pr-notes/internal/note"
)

// List applies input to the session criteria and fetches the matching page.
// Changes are applied as filters, sort, page size and finally an explicit page.
func (uc *implUseCase) List(ctx context.Context, input note.ListInput) (note.ListOutput, error) {
	s, err := uc.session(input.SessionID)
	if err != nil {
		return note.ListOutput{}, err
	}

	v, err := s.collection.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) {
		return nextCriteria(cur, input)
	})
	if err != nil && !isCollectionErr(err) {
		return toListOutput(v), err
	}
	return toListOutput(v), uc.mapCollectionErr(ctx, "uc.List", err)
}

// ResetList restores default criteria and fetches.
func (uc *implUseCase) ResetList(ctx context.Context, sessionID string) (note.ListOutput, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return note.ListOutput{}, err
	}

	v, err := s.collection.Reset(ctx)
	return toListOutput(v), uc.mapCollectionErr(ctx, "uc.ResetList", err)
}

// Delete removes a note from the collection screen and re-fetches the current page.
func (uc *implUseCase) Delete(ctx context.Context, ref note.NoteRef) (note.ListOutput, error) {
	s, err := uc.session(ref.SessionID)
	if err != nil {
		return note.ListOutput{}, err
	}

	v, err := s.collection.Delete(ctx, ref.NoteID)
	return toListOutput(v), uc.mapCollectionErr(ctx, "uc.Delete", err)
}

// Dashboard loads the landing summary.
func (uc *implUseCase) Dashboard(ctx context.Context, sessionID string) (note.DashboardOutput, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return note.DashboardOutput{}, err
	}

	d, err := collection.LoadDashboard(ctx, s.repo, s.notifier, uc.l)
	if err != nil {
		return note.DashboardOutput{}, note.ErrDashboardFailed
	}
	return note.DashboardOutput{
		TotalNotes:  d.TotalNotes,
		NotesWithPR: d.NotesWithPR,
		Recent:      d.Recent,
	}, nil
}

func nextCriteria(cur note.Criteria, input note.ListInput) (note.Criteria, error) {
	next := cur
	var err error

	if input.Filters != nil {
		if next, err = next.WithFilters(*input.Filters); err != nil {
			return cur, err
		}
	}
	if input.Sort != "" && input.Sort != next.Sort {
		if next, err = next.WithSort(input.Sort); err != nil {
			return cur, err
		}
	}
	if input.PageSize != 0 && input.PageSize != next.PageSize {
		if next, err = next.WithPageSize(input.PageSize); err != nil {
			return cur, err
		}
	}
	if input.Page != 0 {
		if next, err = next.WithPage(input.Page); err != nil {
			return cur, err
		}
	}
	return next, nil
}

// isCollectionErr reports whether err came from the fetch itself rather than from deriving criteria.
func isCollectionErr(err error) bool {
	return errors.Is(err, collection.ErrSuperseded) || errors.Is(err, collection.ErrFetchFailed)
}

// mapCollectionErr converts controller errors to domain errors. A superseded fetch is not an error.
func (uc *implUseCase) mapCollectionErr(ctx context.Context, op string, err error) error {
	switch {
	case err == nil, errors.Is(err, collection.ErrSuperseded):
		return nil
	case errors.Is(err, collection.ErrFetchFailed):
		return note.ErrFetchFailed
	case errors.Is(err, collection.ErrDeleteFailed):
		return note.ErrDeleteFailed
	default:
		uc.l.Warnf(ctx, "%s: %v", op, err)
		return err
	}
}

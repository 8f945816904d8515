package usecase

import (
	"errors"
	"net/http"

	"pr-notes/internal/collection"
	"pr-notes/internal/draft"
	"pr-notes/internal/note"
)

func toListOutput(v collection.View) note.ListOutput {
	out := note.ListOutput{
		Criteria:   v.Criteria,
		Result:     v.Result,
		Loaded:     v.Loaded,
		Loading:    v.Loading,
		Window:     v.Window,
		Summary:    v.Summary(),
		HasFilters: v.Criteria.HasFilters(),
		Empty:      v.Empty(),
	}
	if v.Err != nil {
		out.Error = collection.ErrFetchFailed.Error()
	}
	return out
}

func toDraftOutput(s draft.Snapshot) note.DraftOutput {
	out := note.DraftOutput{
		ID:          s.ID,
		Mode:        string(s.Mode),
		NoteID:      s.NoteID,
		State:       string(s.State),
		Draft:       s.Draft,
		Errors:      s.Errors,
		RemoteError: s.RemoteError,
		Note:        s.Note,
	}
	if s.Destination != nil {
		out.Destination = &note.Destination{View: s.Destination.View, NoteID: s.Destination.NoteID}
	}
	return out
}

// isNotFound reports whether err carries a 404 from the Note Store.
func isNotFound(err error) bool {
	var re interface{ HTTPStatus() int }
	return errors.As(err, &re) && re.HTTPStatus() == http.StatusNotFound
}

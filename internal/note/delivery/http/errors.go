package http

import (
	"errors"
	"net/http"

	"pr-notes/internal/note"
	pkgErrors "pr-notes/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
)

// mapError translates domain errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	var verrs note.ValidationErrors
	if errors.As(err, &verrs) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, verrs.Error()).WithErrors(newValidationResp(verrs))
	}

	switch {
	case errors.Is(err, note.ErrSessionNotFound),
		errors.Is(err, note.ErrDraftNotFound),
		errors.Is(err, note.ErrLoadFailed):
		return pkgErrors.NewHTTPError(http.StatusNotFound, rootMessage(err))
	case errors.Is(err, note.ErrInvalidSort),
		errors.Is(err, note.ErrInvalidPage),
		errors.Is(err, note.ErrInvalidPageSize),
		errors.Is(err, note.ErrInvalidPRNumberFilter),
		errors.Is(err, note.ErrInvalidPRStateFilter),
		errors.Is(err, note.ErrEmptyNoteID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, note.ErrInvalidDraftState):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, note.ErrFetchFailed),
		errors.Is(err, note.ErrDeleteFailed),
		errors.Is(err, note.ErrSubmitFailed),
		errors.Is(err, note.ErrProfileFailed),
		errors.Is(err, note.ErrDashboardFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, rootMessage(err))
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// rootMessage keeps the leading domain message of a wrapped error.
func rootMessage(err error) string {
	for _, e := range []error{
		note.ErrLoadFailed, note.ErrFetchFailed, note.ErrDeleteFailed,
		note.ErrSubmitFailed, note.ErrProfileFailed, note.ErrDashboardFailed,
	} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return err.Error()
}

func statusOf(err error) int {
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

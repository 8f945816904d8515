package collection

import "errors"

var (
	// ErrFetchFailed wraps any transport or non-success response while listing notes.
	ErrFetchFailed = errors.New("failed to load notes")
	// ErrSuperseded is returned to the caller of a fetch whose response arrived after a newer
	// fetch had been issued. The response was discarded; the returned View is the current one.
	ErrSuperseded   = errors.New("fetch superseded by a newer request")
	ErrDeleteFailed = errors.New("failed to delete note")
)

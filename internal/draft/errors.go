package draft

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidState = errors.New("operation not allowed in current draft state")
	ErrLoadFailed   = errors.New("failed to load note")
	ErrEmptyNoteID  = errors.New("note id is empty")
)

// User-facing submission messages keyed by the Note Store status.
const (
	MsgPRNotFound       = "repository or PR number not found, check repository name and PR number."
	MsgGithubAuthFailed = "GitHub authentication failed, check token."
	MsgRepoAccessDenied = "access denied to repository; check token permissions or repository visibility."
	MsgSaveFailed       = "failed to save note"
	msgLoadFailed       = "failed to load note"
	msgCreated          = "note created successfully"
	msgUpdated          = "note updated successfully"
)

// remoteError is satisfied by Note Store errors that carry a status and server message.
type remoteError interface {
	HTTPStatus() int
	ServerMessage() string
}

// SubmitError is a failed create or update with its user-facing message.
type SubmitError struct {
	Status  int // 0 for transport failures
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit failed (status %d): %s", e.Status, e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// NewSubmitError maps a Note Store failure to its user-facing message.
func NewSubmitError(err error) *SubmitError {
	se := &SubmitError{Message: MsgSaveFailed, Err: err}

	var re remoteError
	if !errors.As(err, &re) {
		return se
	}
	se.Status = re.HTTPStatus()

	switch se.Status {
	case http.StatusNotFound:
		se.Message = MsgPRNotFound
	case http.StatusUnauthorized:
		se.Message = MsgGithubAuthFailed
	case http.StatusForbidden:
		se.Message = MsgRepoAccessDenied
	default:
		if msg := re.ServerMessage(); msg != "" {
			se.Message = msg
		}
	}
	return se
}

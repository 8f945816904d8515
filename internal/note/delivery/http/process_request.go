package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"pr-notes/internal/middleware"
	"pr-notes/internal/note"
)

// bindOptionalJSON binds a JSON body when present. An empty body leaves req untouched.
func bindOptionalJSON(c *gin.Context, req any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return errWrongBody
	}
	return nil
}

func (h *handler) processOpenSessionReq(c *gin.Context) (note.OpenSessionInput, error) {
	var req openSessionReq
	if err := bindOptionalJSON(c, &req); err != nil {
		return note.OpenSessionInput{}, err
	}
	return req.toInput(middleware.BearerToken(c)), nil
}

func (h *handler) processListReq(c *gin.Context) (note.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return note.ListInput{}, errWrongQuery
	}
	if err := req.validate(); err != nil {
		return note.ListInput{}, err
	}
	return req.toInput(c.Param("sid")), nil
}

func (h *handler) processNoteRef(c *gin.Context) note.NoteRef {
	return note.NoteRef{SessionID: c.Param("sid"), NoteID: c.Param("id")}
}

func (h *handler) processDraftRef(c *gin.Context) note.DraftRef {
	return note.DraftRef{SessionID: c.Param("sid"), DraftID: c.Param("did")}
}

func (h *handler) processStartDraftReq(c *gin.Context) (note.StartDraftInput, error) {
	var req startDraftReq
	if err := bindOptionalJSON(c, &req); err != nil {
		return note.StartDraftInput{}, err
	}
	return note.StartDraftInput{SessionID: c.Param("sid"), NoteID: req.NoteID}, nil
}

func (h *handler) processEditDraftReq(c *gin.Context) (note.EditDraftInput, error) {
	var req editDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return note.EditDraftInput{}, errWrongBody
	}
	return req.toInput(h.processDraftRef(c)), nil
}

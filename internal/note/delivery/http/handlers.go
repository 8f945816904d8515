package http

import (
	"github.com/gin-gonic/gin"

	"pr-notes/pkg/response"
)

// OpenSession godoc
// @Summary     Open a client session
// @Description Connects to the Note Store with the bearer token (or body access_token) and reads the user profile.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       body body openSessionReq false "Optional access token"
// @Success     201 {object} sessionResp
// @Failure     502 {object} response.Resp "Profile could not be loaded"
// @Router      /api/v1/sessions [POST]
func (h *handler) OpenSession(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processOpenSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.OpenSession(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newSessionResp(out))
}

// CloseSession godoc
// @Summary     Close a client session
// @Tags        Sessions
// @Produce     json
// @Param       sid path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/sessions/{sid} [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CloseSession(ctx, c.Param("sid")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// Profile godoc
// @Summary     Refresh the user profile
// @Tags        Sessions
// @Produce     json
// @Param       sid path string true "Session ID"
// @Success     200 {object} identityResp
// @Router      /api/v1/sessions/{sid}/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.uc.Profile(ctx, c.Param("sid"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newIdentityResp(id))
}

// Notifications godoc
// @Summary     Drain pending notifications
// @Tags        Sessions
// @Produce     json
// @Param       sid path string true "Session ID"
// @Success     200 {array} notificationResp
// @Router      /api/v1/sessions/{sid}/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	ctx := c.Request.Context()

	msgs, err := h.uc.Notifications(ctx, c.Param("sid"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newNotificationsResp(msgs))
}

// Dashboard godoc
// @Summary     Dashboard summary
// @Tags        Notes
// @Produce     json
// @Param       sid path string true "Session ID"
// @Success     200 {object} dashboardResp
// @Router      /api/v1/sessions/{sid}/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Dashboard(ctx, c.Param("sid"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newDashboardResp(out))
}

// List godoc
// @Summary     List notes
// @Description Applies the given criteria changes and returns the current page. Sort, page and limit keep their value when absent.
// @Description Any of search, pr_number or pr_state submits the whole filter form: filter parameters left out are cleared.
// @Tags        Notes
// @Produce     json
// @Param       sid       path  string true  "Session ID"
// @Param       search    query string false "Search text"
// @Param       pr_number query string false "PR number"
// @Param       pr_state  query string false "open, closed or merged"
// @Param       sort      query string false "created_desc, created_asc, title_asc or title_desc"
// @Param       page      query int    false "Page"
// @Param       limit     query int    false "5, 10, 20 or 50"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp
// @Failure     502 {object} response.Resp "Fetch failed, data holds the previous page"
// @Router      /api/v1/sessions/{sid}/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), gin.H{"list": h.newListResp(out)})
		return
	}
	response.OK(c, h.newListResp(out))
}

// ResetList godoc
// @Summary     Reset list criteria
// @Tags        Notes
// @Produce     json
// @Param       sid path string true "Session ID"
// @Success     200 {object} listResp
// @Router      /api/v1/sessions/{sid}/notes/reset [POST]
func (h *handler) ResetList(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ResetList(ctx, c.Param("sid"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ResetList: %v", err)
		response.Error(c, h.mapError(err), gin.H{"list": h.newListResp(out)})
		return
	}
	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Note detail
// @Tags        Notes
// @Produce     json
// @Param       sid path string true "Session ID"
// @Param       id  path string true "Note ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not found, data.destination points to the collection"
// @Router      /api/v1/sessions/{sid}/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, h.processNoteRef(c))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), gin.H{"destination": newDestinationResp(out.Destination)})
		return
	}
	response.OK(c, h.newDetailResp(out))
}

// Delete godoc
// @Summary     Delete a note
// @Description From the collection (default) the current page is re-fetched; with from=detail the response holds the navigation target.
// @Tags        Notes
// @Produce     json
// @Param       sid  path  string true  "Session ID"
// @Param       id   path  string true  "Note ID"
// @Param       from query string false "collection or detail"
// @Success     200 {object} listResp
// @Router      /api/v1/sessions/{sid}/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	ref := h.processNoteRef(c)

	if c.Query("from") == "detail" {
		dest, err := h.uc.DeleteFromDetail(ctx, ref)
		if err != nil {
			h.l.Warnf(ctx, "uc.DeleteFromDetail: %v", err)
			response.Error(c, h.mapError(err), gin.H{"destination": newDestinationResp(&dest)})
			return
		}
		response.OK(c, gin.H{"destination": newDestinationResp(&dest)})
		return
	}

	out, err := h.uc.Delete(ctx, ref)
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), gin.H{"list": h.newListResp(out)})
		return
	}
	response.OK(c, h.newListResp(out))
}

// StartDraft godoc
// @Summary     Start a draft
// @Description Without note_id a create draft is opened; with note_id the note is loaded for editing.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       sid  path string        true  "Session ID"
// @Param       body body startDraftReq false "Note to edit"
// @Success     201 {object} draftResp
// @Failure     404 {object} response.Resp "Load failed, data.draft.destination points to the collection"
// @Router      /api/v1/sessions/{sid}/drafts [POST]
func (h *handler) StartDraft(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processStartDraftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.StartDraft(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.StartDraft: %v", err)
		response.Error(c, h.mapError(err), gin.H{"draft": h.newDraftResp(out)})
		return
	}
	response.Created(c, h.newDraftResp(out))
}

// GetDraft godoc
// @Summary     Get a draft
// @Tags        Drafts
// @Produce     json
// @Param       sid path string true "Session ID"
// @Param       did path string true "Draft ID"
// @Success     200 {object} draftResp
// @Router      /api/v1/sessions/{sid}/drafts/{did} [GET]
func (h *handler) GetDraft(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GetDraft(ctx, h.processDraftRef(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newDraftResp(out))
}

// EditDraft godoc
// @Summary     Edit draft fields
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       sid  path string       true "Session ID"
// @Param       did  path string       true "Draft ID"
// @Param       body body editDraftReq true "Fields to change"
// @Success     200 {object} draftResp
// @Failure     409 {object} response.Resp "Draft is not editable"
// @Router      /api/v1/sessions/{sid}/drafts/{did} [PATCH]
func (h *handler) EditDraft(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processEditDraftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.EditDraft(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err), gin.H{"draft": h.newDraftResp(out)})
		return
	}
	response.OK(c, h.newDraftResp(out))
}

// SubmitDraft godoc
// @Summary     Submit a draft
// @Tags        Drafts
// @Produce     json
// @Param       sid path string true "Session ID"
// @Param       did path string true "Draft ID"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     409 {object} response.Resp "Draft is not ready"
// @Failure     502 {object} response.Resp "Note Store rejected the save"
// @Router      /api/v1/sessions/{sid}/drafts/{did}/submit [POST]
func (h *handler) SubmitDraft(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.SubmitDraft(ctx, h.processDraftRef(c))
	if err != nil {
		h.l.Warnf(ctx, "uc.SubmitDraft: %v", err)
		mapped := h.mapError(err)
		if out.RemoteError != "" {
			response.ErrorWithStatus(c, statusOf(mapped), out.RemoteError, gin.H{"draft": h.newDraftResp(out)}, nil)
			return
		}
		response.Error(c, mapped, gin.H{"draft": h.newDraftResp(out)})
		return
	}
	response.OK(c, h.newDraftResp(out))
}

// DiscardDraft godoc
// @Summary     Discard a draft
// @Tags        Drafts
// @Produce     json
// @Param       sid path string true "Session ID"
// @Param       did path string true "Draft ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/sessions/{sid}/drafts/{did} [DELETE]
func (h *handler) DiscardDraft(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DiscardDraft(ctx, h.processDraftRef(c)); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

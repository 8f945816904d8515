package http

import (
	"strconv"
	"strings"

	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/notify"
	"pr-notes/pkg/response"
)

// --- Request DTOs ---

type openSessionReq struct {
	AccessToken string `json:"access_token"`
}

func (r openSessionReq) toInput(bearer string) note.OpenSessionInput {
	token := strings.TrimSpace(r.AccessToken)
	if token == "" {
		token = bearer
	}
	return note.OpenSessionInput{AccessToken: token}
}

// listReq carries the collection query. Absent sort, page and limit keep their current value.
// Any filter parameter submits the whole filter form, so filters left out are cleared.
type listReq struct {
	Search   *string `form:"search"`
	PRNumber *string `form:"pr_number"`
	PRState  *string `form:"pr_state"`
	Sort     string  `form:"sort"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

func (r listReq) validate() error {
	if r.Page < 0 || r.Limit < 0 {
		return errWrongQuery
	}
	return nil
}

func (r listReq) toInput(sid string) note.ListInput {
	in := note.ListInput{
		SessionID: sid,
		Sort:      note.Sort(r.Sort),
		Page:      r.Page,
		PageSize:  r.Limit,
	}
	if r.Search != nil || r.PRNumber != nil || r.PRState != nil {
		deref := func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		}
		in.Filters = &note.Filters{
			Search:   deref(r.Search),
			PRNumber: deref(r.PRNumber),
			PRState:  deref(r.PRState),
		}
	}
	return in
}

type startDraftReq struct {
	NoteID string `json:"note_id"`
}

type editDraftReq struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	PRNumber  *string `json:"pr_number"`
	RepoOwner *string `json:"repo_owner"`
	RepoName  *string `json:"repo_name"`
}

func (r editDraftReq) toInput(ref note.DraftRef) note.EditDraftInput {
	return note.EditDraftInput{
		DraftRef: ref,
		Patch: note.DraftPatch{
			Title:     r.Title,
			Content:   r.Content,
			PRNumber:  r.PRNumber,
			RepoOwner: r.RepoOwner,
			RepoName:  r.RepoName,
		},
	}
}

// --- Response DTOs ---

type identityResp struct {
	Email            string `json:"email"`
	GithubUsername   string `json:"github_username,omitempty"`
	HasGithubToken   bool   `json:"has_github_token"`
	GithubConfigured bool   `json:"github_configured"`
}

func newIdentityResp(id model.UserIdentity) identityResp {
	return identityResp{
		Email:            id.Email,
		GithubUsername:   id.GithubUsername,
		HasGithubToken:   id.HasGithubToken,
		GithubConfigured: id.GithubConfigured(),
	}
}

type sessionResp struct {
	ID        string            `json:"id"`
	Identity  identityResp      `json:"identity"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func (h *handler) newSessionResp(out note.SessionOutput) sessionResp {
	return sessionResp{
		ID:        out.ID,
		Identity:  newIdentityResp(out.Identity),
		ExpiresAt: response.DateTime(out.ExpiresAt),
	}
}

type prResp struct {
	Number    int               `json:"number"`
	RepoOwner string            `json:"repo_owner"`
	RepoName  string            `json:"repo_name"`
	Repo      string            `json:"repo"`
	State     string            `json:"state,omitempty"`
	Title     string            `json:"title,omitempty"`
	Author    string            `json:"author,omitempty"`
	URL       string            `json:"url,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

type noteResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	PR        *prResp           `json:"pr,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newNoteResp(n model.Note) noteResp {
	resp := noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: response.DateTime(n.CreatedAt),
		UpdatedAt: response.DateTime(n.UpdatedAt),
	}
	if n.PRLink != nil {
		pr := &prResp{
			Number:    n.PRLink.Number,
			RepoOwner: n.PRLink.RepoOwner,
			RepoName:  n.PRLink.RepoName,
			Repo:      n.PRLink.Repo(),
		}
		if n.PR != nil {
			pr.State = string(n.PR.State)
			pr.Title = n.PR.Title
			pr.Author = n.PR.Author
			pr.URL = n.PR.URL
			pr.CreatedAt = response.DateTime(n.PR.CreatedAt)
		}
		resp.PR = pr
	}
	return resp
}

func newNoteResps(notes []model.Note) []noteResp {
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = newNoteResp(n)
	}
	return out
}

type criteriaResp struct {
	Search   string `json:"search"`
	PRNumber string `json:"pr_number"`
	PRState  string `json:"pr_state"`
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type paginationResp struct {
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	Total       int                `json:"total"`
	PerPage     int                `json:"per_page"`
	HasPrev     bool               `json:"has_prev"`
	HasNext     bool               `json:"has_next"`
	Window      []model.PageButton `json:"window"`
}

type listResp struct {
	Notes      []noteResp     `json:"notes"`
	Criteria   criteriaResp   `json:"criteria"`
	Pagination paginationResp `json:"pagination"`
	Summary    string         `json:"summary"`
	HasFilters bool           `json:"has_filters"`
	Empty      bool           `json:"empty"`
	Loaded     bool           `json:"loaded"`
	Error      string         `json:"error,omitempty"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	c := out.Criteria
	p := out.Result.Pagination
	prNumber := ""
	if c.PRNumber > 0 {
		prNumber = strconv.Itoa(c.PRNumber)
	}
	window := out.Window
	if window == nil {
		window = []model.PageButton{}
	}
	return listResp{
		Notes: newNoteResps(out.Result.Items),
		Criteria: criteriaResp{
			Search:   c.Search,
			PRNumber: prNumber,
			PRState:  string(c.PRState),
			Sort:     string(c.Sort),
			Page:     c.Page,
			Limit:    c.PageSize,
		},
		Pagination: paginationResp{
			CurrentPage: p.CurrentPage,
			TotalPages:  p.TotalPages,
			Total:       p.TotalCount,
			PerPage:     p.PageSize,
			HasPrev:     model.HasPrev(p.CurrentPage),
			HasNext:     model.HasNext(p.CurrentPage, p.TotalPages),
			Window:      window,
		},
		Summary:    out.Summary,
		HasFilters: out.HasFilters,
		Empty:      out.Empty,
		Loaded:     out.Loaded,
		Error:      out.Error,
	}
}

type destinationResp struct {
	View   string `json:"view"`
	NoteID string `json:"note_id,omitempty"`
}

func newDestinationResp(d *note.Destination) *destinationResp {
	if d == nil {
		return nil
	}
	return &destinationResp{View: d.View, NoteID: d.NoteID}
}

type detailResp struct {
	Note        noteResp         `json:"note"`
	ContentHTML string           `json:"content_html"`
	BadgeClass  string           `json:"badge_class,omitempty"`
	Destination *destinationResp `json:"destination,omitempty"`
}

func (h *handler) newDetailResp(out note.DetailOutput) detailResp {
	return detailResp{
		Note:        newNoteResp(out.Note),
		ContentHTML: out.ContentHTML,
		BadgeClass:  out.BadgeClass,
		Destination: newDestinationResp(out.Destination),
	}
}

type dashboardResp struct {
	TotalNotes  int        `json:"total_notes"`
	NotesWithPR int        `json:"notes_with_pr"`
	Recent      []noteResp `json:"recent"`
}

func (h *handler) newDashboardResp(out note.DashboardOutput) dashboardResp {
	return dashboardResp{
		TotalNotes:  out.TotalNotes,
		NotesWithPR: out.NotesWithPR,
		Recent:      newNoteResps(out.Recent),
	}
}

type validationResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newValidationResp(errs note.ValidationErrors) []validationResp {
	out := make([]validationResp, len(errs))
	for i, e := range errs {
		out[i] = validationResp{Code: string(e.Code), Message: e.Message}
	}
	return out
}

type draftFieldsResp struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	PRNumber  string `json:"pr_number"`
	RepoOwner string `json:"repo_owner"`
	RepoName  string `json:"repo_name"`
}

type draftResp struct {
	ID          string           `json:"id"`
	Mode        string           `json:"mode"`
	NoteID      string           `json:"note_id,omitempty"`
	State       string           `json:"state"`
	Draft       draftFieldsResp  `json:"draft"`
	Errors      []validationResp `json:"errors,omitempty"`
	RemoteError string           `json:"remote_error,omitempty"`
	Note        *noteResp        `json:"note,omitempty"`
	Destination *destinationResp `json:"destination,omitempty"`
}

func (h *handler) newDraftResp(out note.DraftOutput) draftResp {
	resp := draftResp{
		ID:     out.ID,
		Mode:   out.Mode,
		NoteID: out.NoteID,
		State:  out.State,
		Draft: draftFieldsResp{
			Title:     out.Draft.Title,
			Content:   out.Draft.Content,
			PRNumber:  out.Draft.PRNumber,
			RepoOwner: out.Draft.RepoOwner,
			RepoName:  out.Draft.RepoName,
		},
		RemoteError: out.RemoteError,
		Destination: newDestinationResp(out.Destination),
	}
	if len(out.Errors) > 0 {
		resp.Errors = newValidationResp(out.Errors)
	}
	if out.Note != nil {
		n := newNoteResp(*out.Note)
		resp.Note = &n
	}
	return resp
}

type notificationResp struct {
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	CreatedAt response.DateTime `json:"created_at"`
}

func (h *handler) newNotificationsResp(msgs []notify.Message) []notificationResp {
	out := make([]notificationResp, len(msgs))
	for i, m := range msgs {
		out[i] = notificationResp{Kind: string(m.Kind), Message: m.Text, CreatedAt: response.DateTime(m.Created)}
	}
	return out
}

package notestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"pr-notes/internal/model"
	"pr-notes/internal/note/repository"
	pkgLog "pr-notes/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Note Store backed repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("note/repository/notestore: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/notestore.%s", method)
}

func (r *implRepository) ListNotes(ctx context.Context, opt repository.ListNotesOptions) (model.PageResult, error) {
	resp, err := r.client.ListNotes(ctx, buildListQuery(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return model.PageResult{}, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	result, err := toPageResult(resp, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return model.PageResult{}, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return result, nil
}

func (r *implRepository) GetNote(ctx context.Context, id string) (model.Note, error) {
	dto, err := r.client.GetNote(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetNote"), err)
		return model.Note{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	return toNote(*dto), nil
}

func (r *implRepository) CreateNote(ctx context.Context, opt repository.SaveNoteOptions) (model.Note, error) {
	dto, err := r.client.CreateNote(ctx, toSaveRequest(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	return toNote(*dto), nil
}

func (r *implRepository) UpdateNote(ctx context.Context, id string, opt repository.SaveNoteOptions) (model.Note, error) {
	dto, err := r.client.UpdateNote(ctx, id, toSaveRequest(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return model.Note{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return toNote(*dto), nil
}

func (r *implRepository) DeleteNote(ctx context.Context, id string) error {
	if err := r.client.DeleteNote(ctx, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) GetProfile(ctx context.Context) (model.UserIdentity, error) {
	dto, err := r.client.GetProfile(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.UserIdentity{}, fmt.Errorf("%w: %w", repository.ErrFailedProfile, err)
	}
	return model.UserIdentity{
		Email:          dto.Email,
		GithubUsername: dto.GithubUsername,
		HasGithubToken: dto.HasGithubToken,
	}, nil
}

// buildListQuery maps options to query parameters. Empty optional fields are omitted.
func buildListQuery(opt repository.ListNotesOptions) url.Values {
	q := url.Values{}
	if opt.Search != "" {
		q.Set("search", opt.Search)
	}
	if opt.PRNumber > 0 {
		q.Set("pr_number", strconv.Itoa(opt.PRNumber))
	}
	if opt.PRState != "" {
		q.Set("pr_state", opt.PRState)
	}
	if opt.Sort != "" {
		q.Set("sort", opt.Sort)
	}
	if opt.Page > 0 {
		q.Set("page", strconv.Itoa(opt.Page))
	}
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}
	return q
}

// toPageResult normalises both list shapes into a PageResult.
// A missing pagination block is derived from the request and the item count.
func toPageResult(resp *ListNotesResponse, opt repository.ListNotesOptions) (model.PageResult, error) {
	var (
		dtos []NoteDTO
		p    PaginationDTO
	)

	raw := bytes.TrimSpace(resp.Data)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '[':
		if err := json.Unmarshal(raw, &dtos); err != nil {
			return model.PageResult{}, fmt.Errorf("failed to decode notes: %w", err)
		}
	case raw[0] == '{':
		var legacy legacyList
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return model.PageResult{}, fmt.Errorf("failed to decode notes: %w", err)
		}
		dtos = legacy.Notes
		p = PaginationDTO{CurrentPage: legacy.Page, Total: legacy.Total, PerPage: legacy.Limit}
	default:
		return model.PageResult{}, fmt.Errorf("unexpected data payload %q", string(raw[:1]))
	}

	if resp.Pagination != nil {
		p = *resp.Pagination
	}
	if p.CurrentPage <= 0 {
		p.CurrentPage = max(opt.Page, 1)
	}
	if p.PerPage <= 0 {
		p.PerPage = opt.Limit
	}
	if p.Total <= 0 && resp.Pagination == nil {
		p.Total = len(dtos)
	}
	if p.TotalPages <= 0 && p.PerPage > 0 {
		p.TotalPages = (p.Total + p.PerPage - 1) / p.PerPage
	}

	items := make([]model.Note, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toNote(dto))
	}

	return model.PageResult{
		Items: items,
		Pagination: model.Pagination{
			CurrentPage: p.CurrentPage,
			TotalPages:  p.TotalPages,
			TotalCount:  p.Total,
			PageSize:    p.PerPage,
		},
	}, nil
}

// toNote converts a wire note. The PR link is kept only when all three fields are present.
func toNote(dto NoteDTO) model.Note {
	n := model.Note{
		ID:        dto.ID,
		Title:     dto.Title,
		Content:   dto.Content,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}

	if dto.GithubPRNumber == nil || *dto.GithubPRNumber <= 0 || dto.RepoOwner == "" || dto.RepoName == "" {
		return n
	}
	n.PRLink = &model.PRLink{
		Number:    *dto.GithubPRNumber,
		RepoOwner: dto.RepoOwner,
		RepoName:  dto.RepoName,
	}
	n.PR = toPRInfo(dto, *n.PRLink)
	return n
}

// toPRInfo prefers flat pr_* fields, then the matching pull_requests entry.
func toPRInfo(dto NoteDTO, link model.PRLink) *model.PRInfo {
	if dto.PRState != "" || dto.PRTitle != "" || dto.PRURL != "" {
		info := &model.PRInfo{
			State:  model.ParsePRState(dto.PRState),
			Title:  dto.PRTitle,
			Author: dto.PRAuthor,
			URL:    dto.PRURL,
		}
		if dto.PRCreatedAt != nil {
			info.CreatedAt = *dto.PRCreatedAt
		}
		return info
	}

	for _, pr := range dto.PullRequests {
		if pr.Number != link.Number {
			continue
		}
		if pr.RepoOwner != "" && (pr.RepoOwner != link.RepoOwner || pr.RepoName != link.RepoName) {
			continue
		}
		return &model.PRInfo{
			State:     model.ParsePRState(pr.State),
			Title:     pr.Title,
			Author:    pr.Author,
			URL:       pr.URL,
			CreatedAt: pr.CreatedAt,
		}
	}
	return nil
}

func toSaveRequest(opt repository.SaveNoteOptions) SaveNoteRequest {
	req := SaveNoteRequest{Title: opt.Title, Content: opt.Content}
	if opt.PRLink != nil {
		n := opt.PRLink.Number
		req.GithubPRNumber = &n
		req.RepoOwner = opt.PRLink.RepoOwner
		req.RepoName = opt.PRLink.RepoName
	}
	return req
}

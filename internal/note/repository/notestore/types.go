package notestore

import (
	"encoding/json"
	"time"
)

type envelope[T any] struct {
	Data T `json:"data"`
}

// PullRequestDTO is PR metadata cached by the Note Store.
type PullRequestDTO struct {
	Number    int       `json:"number"`
	RepoOwner string    `json:"repo_owner"`
	RepoName  string    `json:"repo_name"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	State     string    `json:"state"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteDTO is the Note Store note object.
type NoteDTO struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Content        string           `json:"content"`
	GithubPRNumber *int             `json:"github_pr_number,omitempty"`
	RepoOwner      string           `json:"repo_owner,omitempty"`
	RepoName       string           `json:"repo_name,omitempty"`
	PRState        string           `json:"pr_state,omitempty"`
	PRTitle        string           `json:"pr_title,omitempty"`
	PRAuthor       string           `json:"pr_author,omitempty"`
	PRURL          string           `json:"pr_url,omitempty"`
	PRCreatedAt    *time.Time       `json:"pr_created_at,omitempty"`
	PullRequests   []PullRequestDTO `json:"pull_requests,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PaginationDTO is the pagination block of a list response.
type PaginationDTO struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
}

// ListNotesResponse is the body of GET /api/notes. Data is kept raw because older
// stores wrap the list as {"notes": [...], "total", "page", "limit"}.
type ListNotesResponse struct {
	Data       json.RawMessage `json:"data"`
	Pagination *PaginationDTO  `json:"pagination"`
}

// legacyList is the {"notes", "total", "page", "limit"} list shape.
type legacyList struct {
	Notes []NoteDTO `json:"notes"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// SaveNoteRequest is the body for POST and PUT /api/notes.
type SaveNoteRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	GithubPRNumber *int   `json:"github_pr_number,omitempty"`
	RepoOwner      string `json:"repo_owner,omitempty"`
	RepoName       string `json:"repo_name,omitempty"`
}

// ProfileDTO is the body of GET /api/user/profile.
type ProfileDTO struct {
	Email          string `json:"email"`
	GithubUsername string `json:"github_username"`
	HasGithubToken bool   `json:"has_github_token"`
}

package model

import "time"

// PRState is the lifecycle state of a linked pull request as reported by the Note Store.
type PRState string

const (
	PRStateOpen    PRState = "open"
	PRStateClosed  PRState = "closed"
	PRStateMerged  PRState = "merged"
	PRStateUnknown PRState = "unknown"
)

// ParsePRState maps a remote state string to a PRState. Anything unrecognised is PRStateUnknown.
func ParsePRState(s string) PRState {
	switch PRState(s) {
	case PRStateOpen, PRStateClosed, PRStateMerged:
		return PRState(s)
	default:
		return PRStateUnknown
	}
}

// IsFilter reports whether s can be used as a pr_state filter.
func (s PRState) IsFilter() bool {
	return s == PRStateOpen || s == PRStateClosed || s == PRStateMerged
}

// BadgeClass returns the presentation class used for a PR state badge.
func (s PRState) BadgeClass() string {
	switch s {
	case PRStateOpen:
		return "success"
	case PRStateClosed:
		return "danger"
	case PRStateMerged:
		return "primary"
	default:
		return "secondary"
	}
}

// PRLink ties a note to a GitHub pull request. It is all-or-nothing:
// a note carries either a complete PRLink or a nil one.
type PRLink struct {
	Number    int
	RepoOwner string
	RepoName  string
}

// Repo returns "owner/name".
func (l PRLink) Repo() string {
	return l.RepoOwner + "/" + l.RepoName
}

// PRInfo is PR metadata cached by the Note Store. Any field may be empty
// when the remote GitHub fetch did not succeed.
type PRInfo struct {
	State     PRState
	Title     string
	Author    string
	URL       string
	CreatedAt time.Time
}

// Note is a user note as returned by the Note Store.
type Note struct {
	ID        string
	Title     string
	Content   string
	PRLink    *PRLink
	PR        *PRInfo // only set when PRLink is set and the store returned metadata
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPR reports whether the note is linked to a pull request.
func (n Note) HasPR() bool {
	return n.PRLink != nil
}

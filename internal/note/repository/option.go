package repository

import "pr-notes/internal/model"

// ListNotesOptions holds filter, sort and pagination parameters for listing notes.
// Zero values are omitted from the remote query.
type ListNotesOptions struct {
	Search   string
	PRNumber int
	PRState  string
	Sort     string // wire sort value, e.g. "created_at_desc"
	Page     int
	Limit    int
}

// SaveNoteOptions is the create/update body. PRLink nil means no PR fields are sent.
type SaveNoteOptions struct {
	Title   string
	Content string
	PRLink  *model.PRLink
}

package model

// Pagination is the pagination summary of one fetched page.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	PageSize    int
}

// PageResult is one normalised page of notes. It is recomputed on every fetch
// and never mutated in place.
type PageResult struct {
	Items      []Note
	Pagination Pagination
}

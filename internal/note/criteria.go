package note

import (
	"slices"
	"strconv"
	"strings"

	"pr-notes/internal/model"
)

// Sort is the ordering requested from the Note Store.
type Sort string

const (
	SortCreatedDesc Sort = "created_desc"
	SortCreatedAsc  Sort = "created_asc"
	SortTitleAsc    Sort = "title_asc"
	SortTitleDesc   Sort = "title_desc"
)

// Valid reports whether s is a known sort key.
func (s Sort) Valid() bool {
	switch s {
	case SortCreatedDesc, SortCreatedAsc, SortTitleAsc, SortTitleDesc:
		return true
	}
	return false
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = SortCreatedDesc
)

// PageSizes lists the accepted page sizes.
var PageSizes = []int{5, 10, 20, 50}

// Criteria is one immutable snapshot of search, filter, sort and pagination state.
// Every With* method returns a new value; the receiver is never modified.
type Criteria struct {
	Search   string
	PRNumber int           // 0 means no PR number filter
	PRState  model.PRState // "" means all states
	Sort     Sort
	Page     int
	PageSize int
}

// DefaultCriteria returns page 1, 10 per page, newest first, no filters.
func DefaultCriteria() Criteria {
	return Criteria{
		Sort:     DefaultSort,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Filters is the raw user input of the search form.
type Filters struct {
	Search   string
	PRNumber string
	PRState  string
}

// WithFilters applies a submitted search form and goes back to page 1.
func (c Criteria) WithFilters(f Filters) (Criteria, error) {
	next := c
	next.Search = strings.TrimSpace(f.Search)
	next.Page = DefaultPage

	next.PRNumber = 0
	if raw := strings.TrimSpace(f.PRNumber); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c, ErrInvalidPRNumberFilter
		}
		next.PRNumber = n
	}

	next.PRState = ""
	if raw := strings.TrimSpace(f.PRState); raw != "" {
		st := model.PRState(strings.ToLower(raw))
		if !st.IsFilter() {
			return c, ErrInvalidPRStateFilter
		}
		next.PRState = st
	}

	return next, nil
}

// WithSort changes the ordering and goes back to page 1.
func (c Criteria) WithSort(s Sort) (Criteria, error) {
	if !s.Valid() {
		return c, ErrInvalidSort
	}
	next := c
	next.Sort = s
	next.Page = DefaultPage
	return next, nil
}

// WithPage moves to page p. Pages beyond the last known page are not clamped.
func (c Criteria) WithPage(p int) (Criteria, error) {
	if p < 1 {
		return c, ErrInvalidPage
	}
	next := c
	next.Page = p
	return next, nil
}

// WithPageSize changes the page size and goes back to page 1.
func (c Criteria) WithPageSize(n int) (Criteria, error) {
	if !slices.Contains(PageSizes, n) {
		return c, ErrInvalidPageSize
	}
	next := c
	next.PageSize = n
	next.Page = DefaultPage
	return next, nil
}

// Reset restores every field to its default, page size included.
func (c Criteria) Reset() Criteria {
	return DefaultCriteria()
}

// HasFilters reports whether any search or PR filter is active.
func (c Criteria) HasFilters() bool {
	return c.Search != "" || c.PRNumber > 0 || c.PRState != ""
}

// Validate checks that c can be sent to the Note Store.
func (c Criteria) Validate() error {
	if !c.Sort.Valid() {
		return ErrInvalidSort
	}
	if c.Page < 1 {
		return ErrInvalidPage
	}
	if !slices.Contains(PageSizes, c.PageSize) {
		return ErrInvalidPageSize
	}
	if c.PRNumber < 0 {
		return ErrInvalidPRNumberFilter
	}
	if c.PRState != "" && !c.PRState.IsFilter() {
		return ErrInvalidPRStateFilter
	}
	return nil
}

// Package collection holds the note collection view-state: the criteria driving the list,
// the last successfully fetched page, and the page window derived from it.
package collection

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/notify"
	pkgLog "pr-notes/pkg/log"
)

const (
	msgFetchFailed  = "failed to load notes"
	msgDeleteFailed = "failed to delete note"
	msgDeleted      = "note deleted successfully"
)

// Store is the subset of the Note Store the controller needs.
type Store interface {
	ListNotes(ctx context.Context, opt repository.ListNotesOptions) (model.PageResult, error)
	DeleteNote(ctx context.Context, id string) error
}

// View is an immutable snapshot of the collection screen.
type View struct {
	Criteria note.Criteria
	Result   model.PageResult
	Loaded   bool  // at least one fetch succeeded
	Loading  bool  // the latest issued fetch has not resolved yet
	Err      error // failure of the latest resolved fetch, nil after a success
	Window   []model.PageButton
}

// Controller reconciles criteria changes with the remote paged dataset.
//
// Every fetch is tagged with a sequence number. Only the response to the most recently
// issued fetch is applied; older responses are dropped on arrival (last-issued-wins).
type Controller struct {
	store    Store
	notifier notify.Notifier
	l        pkgLog.Logger

	mu       sync.Mutex
	criteria note.Criteria
	issued   uint64
	result   model.PageResult
	loaded   bool
	loading  bool
	lastErr  error
}

// New creates a Controller starting from initial criteria. Nothing is fetched until Load.
func New(store Store, notifier notify.Notifier, l pkgLog.Logger, initial note.Criteria) *Controller {
	if notifier == nil {
		notifier = notify.Nop
	}
	return &Controller{
		store:    store,
		notifier: notifier,
		l:        l,
		criteria: initial,
	}
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return View{
		Criteria: c.criteria,
		Result:   model.PageResult{Items: slices.Clone(c.result.Items), Pagination: c.result.Pagination},
		Loaded:   c.loaded,
		Loading:  c.loading,
		Err:      c.lastErr,
		Window:   model.DerivePageWindow(c.result.Pagination.CurrentPage, c.result.Pagination.TotalPages),
	}
}

// Criteria returns the criteria of the latest issued fetch.
func (c *Controller) Criteria() note.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Fetch replaces the criteria wholesale and fetches the matching page.
func (c *Controller) Fetch(ctx context.Context, criteria note.Criteria) (View, error) {
	return c.Apply(ctx, func(note.Criteria) (note.Criteria, error) { return criteria, nil })
}

// Apply derives the next criteria from the current ones with fn and fetches them.
// Deriving, storing and issuing the fetch happen under one lock, so a transition is never
// built on criteria that a concurrent transition has already replaced.
func (c *Controller) Apply(ctx context.Context, fn func(cur note.Criteria) (note.Criteria, error)) (View, error) {
	c.mu.Lock()
	next, err := fn(c.criteria)
	if err == nil {
		err = next.Validate()
	}
	if err != nil {
		v := c.viewLocked()
		c.mu.Unlock()
		return v, err
	}
	c.issued++
	seq := c.issued
	c.criteria = next
	c.loading = true
	c.mu.Unlock()

	res, err := c.store.ListNotes(ctx, toListOptions(next))

	c.mu.Lock()
	if seq != c.issued {
		latest := c.issued
		v := c.viewLocked()
		c.mu.Unlock()
		c.l.Debugf(ctx, "collection.Apply: dropping response %d, latest is %d", seq, latest)
		return v, ErrSuperseded
	}

	c.loading = false
	if err != nil {
		c.lastErr = err
		v := c.viewLocked()
		c.mu.Unlock()

		c.l.Errorf(ctx, "collection.Apply ListNotes: %v", err)
		c.notifier.Notify(ctx, notify.KindError, msgFetchFailed)
		return v, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	c.result = res
	c.loaded = true
	c.lastErr = nil
	v := c.viewLocked()
	c.mu.Unlock()
	return v, nil
}

// Load fetches the current criteria again.
func (c *Controller) Load(ctx context.Context) (View, error) {
	return c.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) { return cur, nil })
}

// Search submits the search form; the page goes back to 1.
func (c *Controller) Search(ctx context.Context, f note.Filters) (View, error) {
	return c.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) { return cur.WithFilters(f) })
}

// Sort changes the ordering; the page goes back to 1.
func (c *Controller) Sort(ctx context.Context, s note.Sort) (View, error) {
	return c.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) { return cur.WithSort(s) })
}

// GoToPage replaces the page and fetches it.
func (c *Controller) GoToPage(ctx context.Context, page int) (View, error) {
	return c.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) { return cur.WithPage(page) })
}

// SetPageSize changes the page size; the page goes back to 1.
func (c *Controller) SetPageSize(ctx context.Context, size int) (View, error) {
	return c.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) { return cur.WithPageSize(size) })
}

// Reset restores default criteria and fetches.
func (c *Controller) Reset(ctx context.Context) (View, error) {
	return c.Apply(ctx, func(cur note.Criteria) (note.Criteria, error) { return cur.Reset(), nil })
}

// Delete removes a note then re-fetches the current criteria, since deletion can shift
// pagination counts.
func (c *Controller) Delete(ctx context.Context, id string) (View, error) {
	if id == "" {
		return c.View(), note.ErrEmptyNoteID
	}

	if err := c.store.DeleteNote(ctx, id); err != nil {
		c.l.Errorf(ctx, "collection.Delete DeleteNote %s: %v", id, err)
		c.notifier.Notify(ctx, notify.KindError, msgDeleteFailed)
		return c.View(), fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	c.notifier.Notify(ctx, notify.KindSuccess, msgDeleted)

	v, err := c.Load(ctx)
	if errors.Is(err, ErrSuperseded) {
		return v, nil
	}
	return v, err
}

var wireSort = map[note.Sort]string{
	note.SortCreatedDesc: "created_at_desc",
	note.SortCreatedAsc:  "created_at_asc",
	note.SortTitleAsc:    "title_asc",
	note.SortTitleDesc:   "title_desc",
}

// toListOptions maps criteria to store options. The default sort is left implicit.
func toListOptions(c note.Criteria) repository.ListNotesOptions {
	opt := repository.ListNotesOptions{
		Search:   c.Search,
		PRNumber: c.PRNumber,
		PRState:  string(c.PRState),
		Page:     c.Page,
		Limit:    c.PageSize,
	}
	if c.Sort != note.DefaultSort {
		opt.Sort = wireSort[c.Sort]
	}
	return opt
}

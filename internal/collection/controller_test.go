package collection_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-notes/internal/collection"
	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/notify"
	pkgLog "pr-notes/pkg/log"
)

// memStore is an in-memory Store that paginates a fixed slice.
type memStore struct {
	mu      sync.Mutex
	notes   []model.Note
	listErr error
	delErr  error
	calls   []repository.ListNotesOptions
}

func newMemStore(n int) *memStore {
	s := &memStore{}
	for i := 1; i <= n; i++ {
		s.notes = append(s.notes, model.Note{ID: fmt.Sprintf("n%d", i), Title: fmt.Sprintf("note %d", i)})
	}
	return s
}

func (s *memStore) ListNotes(_ context.Context, opt repository.ListNotesOptions) (model.PageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, opt)
	if s.listErr != nil {
		return model.PageResult{}, s.listErr
	}

	total := len(s.notes)
	pages := (total + opt.Limit - 1) / opt.Limit
	from := min((opt.Page-1)*opt.Limit, total)
	to := min(from+opt.Limit, total)
	return model.PageResult{
		Items: append([]model.Note(nil), s.notes[from:to]...),
		Pagination: model.Pagination{
			CurrentPage: opt.Page,
			TotalPages:  pages,
			TotalCount:  total,
			PageSize:    opt.Limit,
		},
	}, nil
}

func (s *memStore) DeleteNote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delErr != nil {
		return s.delErr
	}
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (s *memStore) lastCall() repository.ListNotesOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func newController(store collection.Store, q *notify.Queue) *collection.Controller {
	return collection.New(store, q, pkgLog.NewNop(), note.DefaultCriteria())
}

func TestLoadReplacesPageAtomically(t *testing.T) {
	store := newMemStore(12)
	c := newController(store, notify.NewQueue(0))

	v, err := c.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, v.Loaded)
	assert.False(t, v.Loading)
	assert.Len(t, v.Result.Items, 10)
	assert.Equal(t, model.Pagination{CurrentPage: 1, TotalPages: 2, TotalCount: 12, PageSize: 10}, v.Result.Pagination)
	assert.Equal(t, "Showing 10 of 12 notes", v.Summary())
	assert.Len(t, v.Window, 2)
}

func TestListOptionsMapping(t *testing.T) {
	store := newMemStore(3)
	c := newController(store, notify.NewQueue(0))
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.ListNotesOptions{Page: 1, Limit: 10}, store.lastCall())

	_, err = c.Search(ctx, note.Filters{Search: "  deploy ", PRNumber: "42", PRState: "merged"})
	require.NoError(t, err)
	assert.Equal(t, repository.ListNotesOptions{Search: "deploy", PRNumber: 42, PRState: "merged", Page: 1, Limit: 10}, store.lastCall())

	_, err = c.Sort(ctx, note.SortTitleDesc)
	require.NoError(t, err)
	assert.Equal(t, "title_desc", store.lastCall().Sort)

	_, err = c.Sort(ctx, note.SortCreatedAsc)
	require.NoError(t, err)
	assert.Equal(t, "created_at_asc", store.lastCall().Sort)
}

func TestCriteriaTransitions(t *testing.T) {
	store := newMemStore(60)
	c := newController(store, notify.NewQueue(0))
	ctx := context.Background()

	v, err := c.GoToPage(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Criteria.Page)
	assert.Equal(t, 4, v.Result.Pagination.CurrentPage)

	v, err = c.Sort(ctx, note.SortTitleAsc)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Criteria.Page)

	v, err = c.GoToPage(ctx, 3)
	require.NoError(t, err)
	v, err = c.SetPageSize(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Criteria.Page)
	assert.Equal(t, 20, v.Criteria.PageSize)
	assert.Equal(t, 3, v.Result.Pagination.TotalPages)

	v, err = c.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, note.DefaultCriteria(), v.Criteria)
}

func TestInvalidCriteriaDoNotFetch(t *testing.T) {
	store := newMemStore(3)
	c := newController(store, notify.NewQueue(0))
	ctx := context.Background()

	_, err := c.GoToPage(ctx, 0)
	assert.ErrorIs(t, err, note.ErrInvalidPage)

	_, err = c.SetPageSize(ctx, 7)
	assert.ErrorIs(t, err, note.ErrInvalidPageSize)

	_, err = c.Search(ctx, note.Filters{PRNumber: "abc"})
	assert.ErrorIs(t, err, note.ErrInvalidPRNumberFilter)

	assert.Empty(t, store.calls)
}

func TestFailureKeepsPreviousPage(t *testing.T) {
	store := newMemStore(12)
	q := notify.NewQueue(0)
	c := newController(store, q)
	ctx := context.Background()

	before, err := c.Load(ctx)
	require.NoError(t, err)

	store.listErr = errors.New("boom")
	v, err := c.GoToPage(ctx, 2)
	require.ErrorIs(t, err, collection.ErrFetchFailed)

	assert.False(t, v.Loading)
	assert.Error(t, v.Err)
	assert.Equal(t, before.Result, v.Result)
	assert.Equal(t, 2, v.Criteria.Page)

	msgs := q.Drain()
	require.Len(t, msgs, 1)
	assert.Equal(t, notify.KindError, msgs[0].Kind)
	assert.Equal(t, "failed to load notes", msgs[0].Text)

	store.listErr = nil
	v, err = c.Load(ctx)
	require.NoError(t, err)
	assert.NoError(t, v.Err)
	assert.Equal(t, 2, v.Result.Pagination.CurrentPage)
}

func TestDeleteRefetchesCurrentCriteria(t *testing.T) {
	store := newMemStore(12)
	q := notify.NewQueue(0)
	c := newController(store, q)
	ctx := context.Background()

	_, err := c.GoToPage(ctx, 2)
	require.NoError(t, err)

	v, err := c.Delete(ctx, "n11")
	require.NoError(t, err)

	assert.Equal(t, 11, v.Result.Pagination.TotalCount)
	assert.Equal(t, 2, v.Result.Pagination.CurrentPage)
	assert.Len(t, v.Result.Items, 1)
	for _, n := range v.Result.Items {
		assert.NotEqual(t, "n11", n.ID)
	}
	assert.Equal(t, []notify.Message{{Kind: notify.KindSuccess, Text: "note deleted successfully"}}, withoutTime(q.Drain()))
}

func TestConcurrentTransitionsKeepEachChange(t *testing.T) {
	ctx := context.Background()

	for i := range 200 {
		store := newMemStore(30)
		c := newController(store, notify.NewQueue(0))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Search(ctx, note.Filters{Search: "x"})
		}()
		go func() {
			defer wg.Done()
			c.GoToPage(ctx, 2)
		}()
		wg.Wait()

		got := c.Criteria()
		require.Equal(t, "x", got.Search, "iteration %d", i)
		assert.Equal(t, got, c.View().Criteria)
	}
}

func TestApplyRejectsInvalidCriteria(t *testing.T) {
	store := newMemStore(3)
	c := newController(store, notify.NewQueue(0))

	_, err := c.Apply(context.Background(), func(cur note.Criteria) (note.Criteria, error) {
		cur.PageSize = 7
		return cur, nil
	})
	assert.ErrorIs(t, err, note.ErrInvalidPageSize)
	assert.Empty(t, store.calls)
	assert.Equal(t, note.DefaultCriteria(), c.Criteria())
}

func TestDeleteFailureDoesNotRefetch(t *testing.T) {
	store := newMemStore(3)
	q := notify.NewQueue(0)
	c := newController(store, q)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)
	calls := len(store.calls)

	store.delErr = errors.New("nope")
	_, err = c.Delete(ctx, "n1")
	require.ErrorIs(t, err, collection.ErrDeleteFailed)
	assert.Len(t, store.calls, calls)
	assert.Equal(t, []notify.Message{{Kind: notify.KindError, Text: "failed to delete note"}}, withoutTime(q.Drain()))

	_, err = c.Delete(ctx, "")
	assert.ErrorIs(t, err, note.ErrEmptyNoteID)
}

func withoutTime(msgs []notify.Message) []notify.Message {
	out := make([]notify.Message, len(msgs))
	for i, m := range msgs {
		out[i] = notify.Message{Kind: m.Kind, Text: m.Text}
	}
	return out
}

// gatedStore blocks each ListNotes call until its page is released.
type gatedStore struct {
	entered chan int
	mu      sync.Mutex
	gates   map[int]chan error
}

func newGatedStore() *gatedStore {
	return &gatedStore{entered: make(chan int), gates: map[int]chan error{}}
}

func (s *gatedStore) gate(page int) chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gates[page]
	if !ok {
		g = make(chan error, 1)
		s.gates[page] = g
	}
	return g
}

func (s *gatedStore) ListNotes(_ context.Context, opt repository.ListNotesOptions) (model.PageResult, error) {
	g := s.gate(opt.Page)
	s.entered <- opt.Page
	if err := <-g; err != nil {
		return model.PageResult{}, err
	}
	return model.PageResult{
		Items:      []model.Note{{ID: fmt.Sprintf("p%d", opt.Page)}},
		Pagination: model.Pagination{CurrentPage: opt.Page, TotalPages: 5, TotalCount: 5, PageSize: 1},
	}, nil
}

func (s *gatedStore) DeleteNote(context.Context, string) error { return nil }

func TestLastIssuedFetchWins(t *testing.T) {
	store := newGatedStore()
	q := notify.NewQueue(0)
	c := newController(store, q)
	ctx := context.Background()

	type outcome struct {
		view collection.View
		err  error
	}
	results := map[int]chan outcome{1: make(chan outcome, 1), 2: make(chan outcome, 1), 3: make(chan outcome, 1)}

	// Issue A (page 1), B (page 2), C (page 3) in that order.
	for _, page := range []int{1, 2, 3} {
		go func(page int) {
			v, err := c.GoToPage(ctx, page)
			results[page] <- outcome{v, err}
		}(page)
		require.Equal(t, page, <-store.entered)
	}
	assert.True(t, c.View().Loading)

	// Responses arrive C, A, B.
	store.gate(3) <- nil
	rc := <-results[3]
	require.NoError(t, rc.err)
	assert.Equal(t, "p3", rc.view.Result.Items[0].ID)
	assert.False(t, rc.view.Loading)

	store.gate(1) <- nil
	ra := <-results[1]
	assert.ErrorIs(t, ra.err, collection.ErrSuperseded)

	store.gate(2) <- errors.New("late failure")
	rb := <-results[2]
	assert.ErrorIs(t, rb.err, collection.ErrSuperseded)

	v := c.View()
	assert.Equal(t, 3, v.Criteria.Page)
	assert.Equal(t, "p3", v.Result.Items[0].ID)
	assert.Equal(t, 3, v.Result.Pagination.CurrentPage)
	assert.False(t, v.Loading)
	assert.NoError(t, v.Err)
	assert.Empty(t, q.Drain(), "stale responses must not notify")
}

func TestStaleResponseKeepsLoading(t *testing.T) {
	store := newGatedStore()
	c := newController(store, notify.NewQueue(0))
	ctx := context.Background()

	done := make(chan error, 2)
	for _, page := range []int{1, 2} {
		go func(page int) {
			_, err := c.GoToPage(ctx, page)
			done <- err
		}(page)
		require.Equal(t, page, <-store.entered)
	}

	store.gate(1) <- nil
	assert.ErrorIs(t, <-done, collection.ErrSuperseded)
	assert.True(t, c.View().Loading, "loading clears only when the latest fetch resolves")
	assert.False(t, c.View().Loaded)

	store.gate(2) <- nil
	require.NoError(t, <-done)
	assert.False(t, c.View().Loading)
}

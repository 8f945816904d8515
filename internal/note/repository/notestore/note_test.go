package notestore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-notes/internal/model"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/note/repository/notestore"
	pkgLog "pr-notes/pkg/log"
)

func newRepo(t *testing.T, h http.HandlerFunc) repository.Repository {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return notestore.New(notestore.NewClient(notestore.Config{BaseURL: ts.URL}), pkgLog.NewNop())
}

func TestListNotesQuery(t *testing.T) {
	var got url.Values
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[],"pagination":{"current_page":2,"total_pages":3,"total":25,"per_page":10}}`))
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		res, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 2, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"page": {"2"}, "limit": {"10"}}, got)
		assert.Equal(t, model.Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 25, PageSize: 10}, res.Pagination)
		assert.Empty(t, res.Items)
	})

	t.Run("sends every set field", func(t *testing.T) {
		_, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{
			Search: "bug", PRNumber: 42, PRState: "open", Sort: "title_asc", Page: 1, Limit: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, "bug", got.Get("search"))
		assert.Equal(t, "42", got.Get("pr_number"))
		assert.Equal(t, "open", got.Get("pr_state"))
		assert.Equal(t, "title_asc", got.Get("sort"))
		assert.Equal(t, "5", got.Get("limit"))
	})
}

func TestListNotesNormalisation(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("pull_requests metadata", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			n := 42
			json.NewEncoder(w).Encode(map[string]any{
				"data": []notestore.NoteDTO{{
					ID: "n1", Title: "Fix bug", GithubPRNumber: &n, RepoOwner: "acme", RepoName: "widget",
					PullRequests: []notestore.PullRequestDTO{
						{Number: 7, State: "open"},
						{Number: 42, RepoOwner: "acme", RepoName: "widget", State: "merged", Title: "PR", Author: "dev", CreatedAt: created},
					},
				}},
				"pagination": notestore.PaginationDTO{CurrentPage: 1, TotalPages: 1, Total: 1, PerPage: 10},
			})
		})

		res, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		n := res.Items[0]
		require.NotNil(t, n.PRLink)
		assert.Equal(t, 42, n.PRLink.Number)
		require.NotNil(t, n.PR)
		assert.Equal(t, model.PRStateMerged, n.PR.State)
		assert.Equal(t, created, n.PR.CreatedAt)
	})

	t.Run("partial pr fields dropped", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":"n1","title":"t","github_pr_number":5,"repo_owner":"acme"}]}`))
		})
		res, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Nil(t, res.Items[0].PRLink)
		assert.Nil(t, res.Items[0].PR)
	})

	t.Run("flat pr fields and unknown state", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":"n1","github_pr_number":5,"repo_owner":"a","repo_name":"b","pr_state":"draft","pr_title":"T"}]}`))
		})
		res, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.NotNil(t, res.Items[0].PR)
		assert.Equal(t, model.PRStateUnknown, res.Items[0].PR.State)
		assert.Equal(t, "T", res.Items[0].PR.Title)
	})

	t.Run("legacy object shape", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"notes":[{"id":"a"},{"id":"b"}],"total":12,"page":2,"limit":5}}`))
		})
		res, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 2, Limit: 5})
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, model.Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 12, PageSize: 5}, res.Pagination)
	})

	t.Run("null data without pagination", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":null}`))
		})
		res, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, model.Pagination{CurrentPage: 1, TotalPages: 0, TotalCount: 0, PageSize: 10}, res.Pagination)
	})

	t.Run("garbage payload", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":"nope"}`))
		})
		_, err := repo.ListNotes(context.Background(), repository.ListNotesOptions{Page: 1, Limit: 10})
		assert.ErrorIs(t, err, repository.ErrFailedToList)
	})
}

func TestSaveAndProfile(t *testing.T) {
	var body map[string]any
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/user/profile":
			w.Write([]byte(`{"data":{"email":"dev@example.com","github_username":"dev","has_github_token":true}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/notes/n1":
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"data":{"id":"n1","title":"t","content":"c"}}`))
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusForbidden)
		}
	})
	ctx := context.Background()

	id, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	assert.True(t, id.GithubConfigured())

	n, err := repo.UpdateNote(ctx, "n1", repository.SaveNoteOptions{
		Title: "t", Content: "c", PRLink: &model.PRLink{Number: 42, RepoOwner: "acme", RepoName: "widget"},
	})
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, float64(42), body["github_pr_number"])

	_, err = repo.UpdateNote(ctx, "other", repository.SaveNoteOptions{Title: "t", Content: "c"})
	assert.Equal(t, http.StatusForbidden, notestore.StatusCode(err))
	assert.ErrorIs(t, err, repository.ErrFailedToUpdate)
}

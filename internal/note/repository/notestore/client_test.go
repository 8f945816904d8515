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

	"pr-notes/internal/note/repository/notestore"
)

func TestNoteStoreClient(t *testing.T) {
	var lastAuth string
	var lastBody notestore.SaveNoteRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("search") == "boom" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"data":       []notestore.NoteDTO{{ID: "n1", Title: "First"}},
				"pagination": notestore.PaginationDTO{CurrentPage: 1, TotalPages: 1, Total: 1, PerPage: 10},
			})
		case http.MethodPost:
			lastBody = notestore.SaveNoteRequest{}
			json.NewDecoder(r.Body).Decode(&lastBody)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"data": notestore.NoteDTO{ID: "n2", Title: lastBody.Title}})
		}
	})
	mux.HandleFunc("/api/notes/n1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"data": notestore.NoteDTO{ID: "n1", Title: "First"}})
		case http.MethodPut:
			lastBody = notestore.SaveNoteRequest{}
			json.NewDecoder(r.Body).Decode(&lastBody)
			json.NewEncoder(w).Encode(map[string]any{"data": notestore.NoteDTO{ID: "n1", Title: lastBody.Title}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("/api/notes/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Note not found"})
	})
	mux.HandleFunc("/api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": notestore.ProfileDTO{
			Email: "dev@example.com", GithubUsername: "dev", HasGithubToken: true,
		}})
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := notestore.NewClient(notestore.Config{
		BaseURL:         ts.URL + "/",
		AccessToken:     "test-token",
		Timeout:         time.Second,
		RateLimitPerSec: 1000,
		RateBurst:       10,
	})
	ctx := context.Background()

	t.Run("ListNotes", func(t *testing.T) {
		res, err := client.ListNotes(ctx, url.Values{"page": {"1"}})
		require.NoError(t, err)
		require.NotNil(t, res.Pagination)
		assert.Equal(t, 1, res.Pagination.Total)
		assert.Equal(t, "Bearer test-token", lastAuth)

		_, err = client.ListNotes(ctx, url.Values{"search": {"boom"}})
		assert.Equal(t, http.StatusInternalServerError, notestore.StatusCode(err))
	})

	t.Run("CreateNote", func(t *testing.T) {
		n := 42
		res, err := client.CreateNote(ctx, notestore.SaveNoteRequest{
			Title: "Fix bug", Content: "details", GithubPRNumber: &n, RepoOwner: "acme", RepoName: "widget",
		})
		require.NoError(t, err)
		assert.Equal(t, "n2", res.ID)
		require.NotNil(t, lastBody.GithubPRNumber)
		assert.Equal(t, 42, *lastBody.GithubPRNumber)
	})

	t.Run("GetNote", func(t *testing.T) {
		res, err := client.GetNote(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, "First", res.Title)
	})

	t.Run("GetNote not found", func(t *testing.T) {
		_, err := client.GetNote(ctx, "missing")
		require.Error(t, err)
		assert.True(t, notestore.IsNotFound(err))

		var apiErr *notestore.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Note not found", apiErr.Message)
	})

	t.Run("UpdateNote", func(t *testing.T) {
		res, err := client.UpdateNote(ctx, "n1", notestore.SaveNoteRequest{Title: "Renamed", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", res.Title)
		assert.Nil(t, lastBody.GithubPRNumber)
	})

	t.Run("DeleteNote", func(t *testing.T) {
		assert.NoError(t, client.DeleteNote(ctx, "n1"))
	})

	t.Run("GetProfile", func(t *testing.T) {
		res, err := client.GetProfile(ctx)
		require.NoError(t, err)
		assert.True(t, res.HasGithubToken)
		assert.Equal(t, "dev", res.GithubUsername)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, client.Ping(ctx))
	})

	t.Run("Server Down", func(t *testing.T) {
		bad := notestore.NewClient(notestore.Config{BaseURL: "http://localhost:59999", Timeout: time.Second})
		_, err := bad.GetNote(ctx, "n1")
		assert.Error(t, err)
		assert.Equal(t, 0, notestore.StatusCode(err))
		assert.Error(t, bad.Ping(ctx))
	})
}

func TestSaveRequestOmitsEmptyPRFields(t *testing.T) {
	raw, err := json.Marshal(notestore.SaveNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","content":"c"}`, string(raw))
}

func TestAPIErrorMessage(t *testing.T) {
	err := &notestore.APIError{StatusCode: 403}
	assert.Equal(t, "note store API error 403", err.Error())

	err.Message = "forbidden"
	assert.Equal(t, "note store API error 403: forbidden", err.Error())
}

package collection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-notes/internal/collection"
	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/notify"
	pkgLog "pr-notes/pkg/log"
)

func TestViewSummary(t *testing.T) {
	v := collection.View{
		Criteria: note.Criteria{Search: "deploy"},
		Result: model.PageResult{
			Items:      make([]model.Note, 3),
			Pagination: model.Pagination{TotalCount: 12},
		},
	}
	assert.Equal(t, `Showing 3 of 12 notes for "deploy"`, v.Summary())

	empty := collection.View{Loaded: true}
	assert.True(t, empty.Empty())
	assert.False(t, collection.View{}.Empty())
}

func TestLoadDashboard(t *testing.T) {
	store := newMemStore(8)
	store.notes[0].PRLink = &model.PRLink{Number: 1, RepoOwner: "o", RepoName: "r"}
	store.notes[2].PRLink = &model.PRLink{Number: 2, RepoOwner: "o", RepoName: "r"}
	store.notes[6].PRLink = &model.PRLink{Number: 3, RepoOwner: "o", RepoName: "r"}

	d, err := collection.LoadDashboard(context.Background(), store, notify.Nop, pkgLog.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 8, d.TotalNotes)
	assert.Len(t, d.Recent, collection.DashboardLimit)
	assert.Equal(t, 2, d.NotesWithPR)
	assert.Equal(t, collection.DashboardLimit, store.lastCall().Limit)

	store.listErr = errors.New("down")
	q := notify.NewQueue(0)
	_, err = collection.LoadDashboard(context.Background(), store, q, pkgLog.NewNop())
	assert.ErrorIs(t, err, collection.ErrFetchFailed)
	assert.Equal(t, "failed to load dashboard data", q.Drain()[0].Text)
}

package note_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-notes/internal/model"
	"pr-notes/internal/note"
)

func TestDefaultCriteria(t *testing.T) {
	c := note.DefaultCriteria()
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 10, c.PageSize)
	assert.Equal(t, note.SortCreatedDesc, c.Sort)
	assert.False(t, c.HasFilters())
	assert.NoError(t, c.Validate())
}

func TestWithFilters(t *testing.T) {
	base, err := note.DefaultCriteria().WithPage(4)
	require.NoError(t, err)

	t.Run("applies filters and resets page", func(t *testing.T) {
		c, err := base.WithFilters(note.Filters{Search: "  bug ", PRNumber: "42", PRState: "Merged"})
		require.NoError(t, err)
		assert.Equal(t, "bug", c.Search)
		assert.Equal(t, 42, c.PRNumber)
		assert.Equal(t, model.PRStateMerged, c.PRState)
		assert.Equal(t, 1, c.Page)
		assert.True(t, c.HasFilters())
		assert.Equal(t, 4, base.Page, "receiver must not change")
	})

	t.Run("empty fields clear filters", func(t *testing.T) {
		c, err := base.WithFilters(note.Filters{Search: "x", PRNumber: "3"})
		require.NoError(t, err)
		c, err = c.WithFilters(note.Filters{})
		require.NoError(t, err)
		assert.False(t, c.HasFilters())
	})

	t.Run("rejects bad pr number", func(t *testing.T) {
		for _, in := range []string{"abc", "0", "-2", "1.5"} {
			c, err := base.WithFilters(note.Filters{PRNumber: in})
			assert.ErrorIs(t, err, note.ErrInvalidPRNumberFilter, in)
			assert.Equal(t, base, c)
		}
	})

	t.Run("rejects bad pr state", func(t *testing.T) {
		_, err := base.WithFilters(note.Filters{PRState: "unknown"})
		assert.ErrorIs(t, err, note.ErrInvalidPRStateFilter)
	})
}

func TestWithSortPageAndSize(t *testing.T) {
	c, err := note.DefaultCriteria().WithPage(3)
	require.NoError(t, err)

	sorted, err := c.WithSort(note.SortTitleAsc)
	require.NoError(t, err)
	assert.Equal(t, note.SortTitleAsc, sorted.Sort)
	assert.Equal(t, 1, sorted.Page)

	_, err = c.WithSort("random")
	assert.ErrorIs(t, err, note.ErrInvalidSort)

	_, err = c.WithPage(0)
	assert.ErrorIs(t, err, note.ErrInvalidPage)

	far, err := c.WithPage(999)
	require.NoError(t, err)
	assert.Equal(t, 999, far.Page, "no client-side clamping")

	sized, err := c.WithPageSize(50)
	require.NoError(t, err)
	assert.Equal(t, 50, sized.PageSize)
	assert.Equal(t, 1, sized.Page)

	_, err = c.WithPageSize(7)
	assert.ErrorIs(t, err, note.ErrInvalidPageSize)
}

func TestReset(t *testing.T) {
	c, err := note.DefaultCriteria().WithPageSize(20)
	require.NoError(t, err)
	c, err = c.WithFilters(note.Filters{Search: "x", PRState: "open"})
	require.NoError(t, err)

	assert.Equal(t, note.DefaultCriteria(), c.Reset())
}

func TestCriteriaValidate(t *testing.T) {
	bad := []note.Criteria{
		{Sort: "x", Page: 1, PageSize: 10},
		{Sort: note.SortCreatedAsc, Page: 0, PageSize: 10},
		{Sort: note.SortCreatedAsc, Page: 1, PageSize: 11},
		{Sort: note.SortCreatedAsc, Page: 1, PageSize: 10, PRState: "unknown"},
	}
	for _, c := range bad {
		assert.Error(t, c.Validate(), "%+v", c)
	}
}

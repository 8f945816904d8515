package collection

import (
	"context"
	"fmt"
	"strings"

	"pr-notes/internal/model"
	"pr-notes/internal/note"
	"pr-notes/internal/note/repository"
	"pr-notes/internal/notify"
	pkgLog "pr-notes/pkg/log"
)

// Summary renders the results line, e.g. `Showing 3 of 12 notes for "deploy"`.
func (v View) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d notes", len(v.Result.Items), v.Result.Pagination.TotalCount)
	if v.Criteria.Search != "" {
		fmt.Fprintf(&b, " for %q", v.Criteria.Search)
	}
	return b.String()
}

// Empty reports whether a loaded page has no items.
func (v View) Empty() bool {
	return v.Loaded && len(v.Result.Items) == 0
}

// DashboardLimit is the number of recent notes shown on the dashboard.
const DashboardLimit = 5

const msgDashboardFailed = "failed to load dashboard data"

// Dashboard is the landing summary.
type Dashboard struct {
	TotalNotes  int
	NotesWithPR int // counted over Recent only
	Recent      []model.Note
}

// LoadDashboard fetches the newest notes and derives the dashboard counters.
func LoadDashboard(ctx context.Context, store Store, notifier notify.Notifier, l pkgLog.Logger) (Dashboard, error) {
	res, err := store.ListNotes(ctx, repository.ListNotesOptions{
		Page:  note.DefaultPage,
		Limit: DashboardLimit,
	})
	if err != nil {
		l.Errorf(ctx, "collection.LoadDashboard ListNotes: %v", err)
		if notifier != nil {
			notifier.Notify(ctx, notify.KindError, msgDashboardFailed)
		}
		return Dashboard{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	d := Dashboard{TotalNotes: res.Pagination.TotalCount, Recent: res.Items}
	for _, n := range res.Items {
		if n.HasPR() {
			d.NotesWithPR++
		}
	}
	return d, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"pr-notes/internal/model"
	"pr-notes/internal/note"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

type prView struct {
	Number int    `json:"number" yaml:"number"`
	Repo   string `json:"repo" yaml:"repo"`
	State  string `json:"state,omitempty" yaml:"state,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
}

type noteView struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content,omitempty" yaml:"content,omitempty"`
	PR        *prView   `json:"pr,omitempty" yaml:"pr,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

type listView struct {
	Summary    string     `json:"summary" yaml:"summary"`
	Page       int        `json:"page" yaml:"page"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
	Total      int        `json:"total" yaml:"total"`
	Notes      []noteView `json:"notes" yaml:"notes"`
}

type dashboardView struct {
	TotalNotes  int        `json:"total_notes" yaml:"total_notes"`
	NotesWithPR int        `json:"notes_with_pr" yaml:"notes_with_pr"`
	Recent      []noteView `json:"recent" yaml:"recent"`
}

func toNoteView(n model.Note, withContent bool) noteView {
	v := noteView{
		ID:        n.ID,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if withContent {
		v.Content = n.Content
	}
	if n.PRLink != nil {
		pr := &prView{Number: n.PRLink.Number, Repo: n.PRLink.Repo()}
		if n.PR != nil {
			pr.State = string(n.PR.State)
			pr.Title = n.PR.Title
			pr.Author = n.PR.Author
			pr.URL = n.PR.URL
		}
		v.PR = pr
	}
	return v
}

func toNoteViews(notes []model.Note) []noteView {
	out := make([]noteView, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteView(n, false))
	}
	return out
}

func toListView(o note.ListOutput) listView {
	return listView{
		Summary:    o.Summary,
		Page:       o.Result.Pagination.CurrentPage,
		TotalPages: o.Result.Pagination.TotalPages,
		Total:      o.Result.Pagination.TotalCount,
		Notes:      toNoteViews(o.Result.Items),
	}
}

func toDashboardView(o note.DashboardOutput) dashboardView {
	return dashboardView{
		TotalNotes:  o.TotalNotes,
		NotesWithPR: o.NotesWithPR,
		Recent:      toNoteViews(o.Recent),
	}
}

// render writes v as JSON or YAML, or calls table for the human format.
func render(w io.Writer, format string, v any, table func(w io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return table(w)
	}
}

func prColumn(v noteView) string {
	if v.PR == nil {
		return "-"
	}
	s := fmt.Sprintf("%s#%d", v.PR.Repo, v.PR.Number)
	if v.PR.State != "" {
		s += " (" + v.PR.State + ")"
	}
	return s
}

func writeNoteTable(w io.Writer, notes []noteView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPR\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Title, prColumn(n), n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func listTable(v listView) func(io.Writer) error {
	return func(w io.Writer) error {
		if len(v.Notes) == 0 {
			_, err := fmt.Fprintln(w, "No notes found.")
			return err
		}
		if err := writeNoteTable(w, v.Notes); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n%s (page %d of %d)\n", v.Summary, v.Page, v.TotalPages)
		return err
	}
}

func dashboardTable(v dashboardView) func(io.Writer) error {
	return func(w io.Writer) error {
		fmt.Fprintf(w, "Total notes:   %d\nNotes with PR: %d\n\nRecent notes\n", v.TotalNotes, v.NotesWithPR)
		if len(v.Recent) == 0 {
			_, err := fmt.Fprintln(w, "No notes yet.")
			return err
		}
		return writeNoteTable(w, v.Recent)
	}
}

func noteTable(v noteView) func(io.Writer) error {
	return func(w io.Writer) error {
		fmt.Fprintf(w, "%s\n%s\n", v.Title, strings.Repeat("=", len([]rune(v.Title))))
		fmt.Fprintf(w, "ID:      %s\n", v.ID)
		if v.PR != nil {
			fmt.Fprintf(w, "PR:      %s\n", prColumn(v))
			if v.PR.Title != "" {
				fmt.Fprintf(w, "PR title: %s\n", v.PR.Title)
			}
			if v.PR.URL != "" {
				fmt.Fprintf(w, "PR URL:  %s\n", v.PR.URL)
			}
		}
		fmt.Fprintf(w, "Created: %s\nUpdated: %s\n\n", v.CreatedAt.Format(time.RFC1123), v.UpdatedAt.Format(time.RFC1123))
		_, err := fmt.Fprintln(w, v.Content)
		return err
	}
}

func writeValidationErrors(w io.Writer, errs note.ValidationErrors) {
	for _, e := range errs {
		fmt.Fprintf(w, "  - %s: %s\n", e.Code, e.Message)
	}
}

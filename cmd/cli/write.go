package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pr-notes/internal/note"
)

var errValidationFailed = errors.New("validation failed")

var (
	writeTitle       string
	writeContent     string
	writeContentFile string
	writePRNumber    string
	writeRepoOwner   string
	writeRepoName    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note, optionally linked to a pull request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDraft(cmd, "")
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDraft(cmd, args[0])
	},
}

// runDraft drives one draft from start to submit. An empty noteID creates a note.
func runDraft(cmd *cobra.Command, noteID string) error {
	patch, err := draftPatch(cmd.Flags(), cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	c, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer c.close(ctx, cmd.ErrOrStderr())

	started, err := c.uc.StartDraft(ctx, note.StartDraftInput{SessionID: c.sid, NoteID: noteID})
	if err != nil {
		return err
	}
	ref := note.DraftRef{SessionID: c.sid, DraftID: started.ID}

	if _, err := c.uc.EditDraft(ctx, note.EditDraftInput{DraftRef: ref, Patch: patch}); err != nil {
		return err
	}

	out, err := c.uc.SubmitDraft(ctx, ref)
	var verrs note.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeValidationErrors(cmd.ErrOrStderr(), verrs)
		return errValidationFailed
	case errors.Is(err, note.ErrSubmitFailed):
		return fmt.Errorf("%w: %s", err, out.RemoteError)
	case err != nil:
		return err
	}

	if out.Note == nil {
		return nil
	}
	v := toNoteView(*out.Note, true)
	return render(cmd.OutOrStdout(), outputFmt, v, noteTable(v))
}

// draftPatch collects the flags that were set. Content may come from a file, or stdin with "-".
func draftPatch(flags *pflag.FlagSet, stdin io.Reader) (note.DraftPatch, error) {
	var p note.DraftPatch
	str := func(name string, value string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return &value
	}

	p.Title = str("title", writeTitle)
	p.Content = str("content", writeContent)
	p.PRNumber = str("pr-number", writePRNumber)
	p.RepoOwner = str("repo-owner", writeRepoOwner)
	p.RepoName = str("repo-name", writeRepoName)

	if flags.Changed("content-file") {
		if p.Content != nil {
			return p, errors.New("--content and --content-file are mutually exclusive")
		}
		var (
			data []byte
			err  error
		)
		if writeContentFile == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(writeContentFile)
		}
		if err != nil {
			return p, fmt.Errorf("read content: %w", err)
		}
		content := string(data)
		p.Content = &content
	}
	return p, nil
}

func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&writeTitle, "title", "t", "", "Note title")
	cmd.Flags().StringVarP(&writeContent, "content", "c", "", "Note content (markdown)")
	cmd.Flags().StringVarP(&writeContentFile, "content-file", "f", "", "Read content from a file, or stdin with -")
	cmd.Flags().StringVar(&writePRNumber, "pr-number", "", "Pull request number; empty clears the link")
	cmd.Flags().StringVar(&writeRepoOwner, "repo-owner", "", "Repository owner")
	cmd.Flags().StringVar(&writeRepoName, "repo-name", "", "Repository name")
}

func init() {
	addDraftFlags(createCmd)
	addDraftFlags(editCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
}

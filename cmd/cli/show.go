package main

import (
	"io"

	"github.com/spf13/cobra"

	"pr-notes/internal/note"
)

var showHTML bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note with its PR metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.close(ctx, cmd.ErrOrStderr())

		out, err := c.uc.Detail(ctx, note.NoteRef{SessionID: c.sid, NoteID: args[0]})
		if err != nil {
			return err
		}

		v := toNoteView(out.Note, true)
		table := noteTable(v)
		if showHTML {
			table = func(w io.Writer) error {
				_, err := io.WriteString(w, out.ContentHTML)
				return err
			}
		}
		return render(cmd.OutOrStdout(), outputFmt, v, table)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Print the rendered HTML content instead of the raw text")
	rootCmd.AddCommand(showCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"pr-notes/internal/note"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.close(ctx, cmd.ErrOrStderr())

		_, err = c.uc.DeleteFromDetail(ctx, note.NoteRef{SessionID: c.sid, NoteID: args[0]})
		return err
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"pr-notes/internal/note"
)

var (
	listSearch   string
	listPRNumber string
	listPRState  string
	listSort     string
	listPage     int
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered and sorted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.close(ctx, cmd.ErrOrStderr())

		in := note.ListInput{
			SessionID: c.sid,
			Sort:      note.Sort(listSort),
			Page:      listPage,
			PageSize:  listLimit,
		}
		flags := cmd.Flags()
		if flags.Changed("search") || flags.Changed("pr-number") || flags.Changed("pr-state") {
			in.Filters = &note.Filters{Search: listSearch, PRNumber: listPRNumber, PRState: listPRState}
		}

		out, err := c.uc.List(ctx, in)
		if err != nil {
			return err
		}

		v := toListView(out)
		return render(cmd.OutOrStdout(), outputFmt, v, listTable(v))
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search title and content")
	listCmd.Flags().StringVar(&listPRNumber, "pr-number", "", "Only notes linked to this PR number")
	listCmd.Flags().StringVar(&listPRState, "pr-state", "", "Only notes whose PR is open, closed or merged")
	listCmd.Flags().StringVar(&listSort, "sort", "", "created_desc, created_asc, title_asc or title_desc")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 0, "Page to show")
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "Notes per page: 5, 10, 20 or 50")
	rootCmd.AddCommand(listCmd)
}

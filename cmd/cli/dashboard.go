package main

import (
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show note totals and the most recent notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := openClient(ctx)
		if err != nil {
			return err
		}
		defer c.close(ctx, cmd.ErrOrStderr())

		out, err := c.uc.Dashboard(ctx, c.sid)
		if err != nil {
			return err
		}

		v := toDashboardView(out)
		return render(cmd.OutOrStdout(), outputFmt, v, dashboardTable(v))
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

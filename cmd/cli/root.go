package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	outputFmt string
	storeURL  string
	token     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pr-notes",
	Short: "Manage notes linked to GitHub pull requests",
	Long: `pr-notes talks to a Note Store server: list, search and page through notes,
read them rendered, and create or edit notes linked to a GitHub pull request.

The store URL and token come from config.yaml, NOTE_STORE_URL and
NOTE_STORE_ACCESS_TOKEN, or the --url and --token flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateOutput(outputFmt)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", formatTable, "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&storeURL, "url", "", "Note Store base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Note Store access token (overrides config)")
}

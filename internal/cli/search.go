package cli

import (
	"github.com/spf13/cobra"

	"househunt/internal/feed"
)

func newSearchCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search listings by keyword",
		Long:  "Search rental listings by free-text term, matching titles, categories and locations.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(cmd.Context(), feed.Query{SearchTerm: args[0]}, offline)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "show the last cached results instead of fetching")

	return cmd
}

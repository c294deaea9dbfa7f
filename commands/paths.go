package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List the career paths in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, cat, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tTITLE\tPHASES")
			for _, p := range cat.Paths() {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Key, p.Title, len(p.Phases))
			}
			return tw.Flush()
		},
	}
}

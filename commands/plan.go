package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"career-roadmap/controllers/roadmap"
	"career-roadmap/models/career"
)

func newPlanCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "plan <career_path> <months>",
		Short:   "Print the roadmap for a career path and duration",
		Example: "  roadmap plan data_scientist 14",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, cat, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			if !cat.Has(args[0]) {
				return fmt.Errorf("unknown career path %q (see `roadmap paths`)", args[0])
			}
			months, err := roadmap.ParseMonths(args[1])
			if err != nil {
				return err
			}

			rm, _, err := cat.Roadmap(args[0], months, cfg.Roadmap.MaxMonths)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rm)
			}
			return writeRoadmap(cmd.OutOrStdout(), rm)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the roadmap as JSON")
	return cmd
}

func writeRoadmap(w io.Writer, rm career.Roadmap) error {
	if _, err := fmt.Fprintf(w, "%s: %d months\n\n", rm.Title, rm.TotalMonths); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPHASE\tMONTHS\tDURATION")
	for i, p := range rm.Phases {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, p.Name, p.MonthRange(), p.Duration)
	}
	return tw.Flush()
}

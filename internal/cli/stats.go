package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard aggregates over active ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			stats, err := backend.Query.DashboardStats(ctx)
			if err != nil {
				return err
			}

			return opts.printer(cmd).emit(stats, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Total ideas:\t%d\n", stats.TotalIdeas)
				fmt.Fprintf(tw, "Under review:\t%d\n", stats.UnderReview)
				fmt.Fprintf(tw, "Approved:\t%d\n", stats.Approved)
				fmt.Fprintf(tw, "Implemented:\t%d\n", stats.Implemented)

				fmt.Fprintln(tw, "\nSTATUS\tCOUNT")
				for _, sc := range stats.StatusDistribution {
					fmt.Fprintf(tw, "%s\t%d\n", sc.Status, sc.Count)
				}
				fmt.Fprintln(tw, "\nDEPARTMENT\tCOUNT")
				for _, dc := range stats.DepartmentStats {
					fmt.Fprintf(tw, "%s\t%d\n", dc.Department, dc.Count)
				}
				fmt.Fprintln(tw, "\nMONTH\tCOUNT")
				for _, mc := range stats.MonthlyTrends {
					fmt.Fprintf(tw, "%04d-%02d\t%d\n", mc.Year, mc.Month, mc.Count)
				}
			})
		},
	}
}

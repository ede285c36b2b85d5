package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"careerpulse/internal/core"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show status and monthly application breakdowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, cleanup, err := openTracker(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			if year == 0 {
				year = time.Now().Year()
			}

			apps := tracker.ListApplications()
			histogram := core.StatusHistogram(apps)
			monthly := core.MonthlyHistogram(apps, year)

			if rootOpts.Format == "json" {
				out := struct {
					Total    int                `json:"total"`
					Year     int                `json:"year"`
					ByStatus []core.StatusCount `json:"by_status"`
					ByMonth  [12]int            `json:"by_month"`
				}{len(apps), year, histogram, monthly}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applications: %d\n\n", len(apps))
			for _, c := range histogram {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", c.Status, c.Count)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nBy month (%d):\n", year)
			max := 0
			for _, n := range monthly {
				if n > max {
					max = n
				}
			}
			for i, n := range monthly {
				bar := ""
				if max > 0 {
					bar = strings.Repeat("#", n*40/max)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %3d %s\n", time.Month(i+1).String()[:3], n, bar)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year for the monthly breakdown (default current)")

	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"careerpulse/internal/core"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked applications, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, cleanup, err := openTracker(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			apps := tracker.ListApplications()

			if status != "" {
				st, err := core.ParseStatus(status)
				if err != nil {
					return fmt.Errorf("unknown status %q (valid: %v)", status, core.Statuses)
				}
				filtered := apps[:0:0]
				for _, a := range apps {
					if a.Status == st {
						filtered = append(filtered, a)
					}
				}
				apps = filtered
			}

			if rootOpts.Format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(apps)
			}

			if len(apps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No applications tracked.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOMPANY\tTITLE\tSTATUS\tDATE")
			for _, a := range apps {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.Company, a.Title, a.Status, a.Date)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only show applications with this status")

	return cmd
}

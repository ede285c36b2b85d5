package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"careerpulse/internal/core"
	"careerpulse/internal/store"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		status string
		date   string
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "add <company> <title>",
		Short: "Record a new job application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, cleanup, err := openTracker(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			fields := store.Fields{
				Company: args[0],
				Title:   args[1],
				Notes:   notes,
			}

			st, err := core.ParseStatus(status)
			if err != nil {
				return fmt.Errorf("unknown status %q (valid: %v)", status, core.Statuses)
			}
			fields.Status = st

			if date != "" {
				d, err := core.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				fields.Date = d
			} else {
				fields.Date = core.Today()
			}

			app, err := tracker.AddApplication(cmd.Context(), fields)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(app)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d: %s at %s (%s, %s)\n",
				app.ID, app.Title, app.Company, app.Status, app.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", string(core.StatusPending), "application status")
	cmd.Flags().StringVar(&date, "date", "", "application date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

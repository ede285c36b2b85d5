package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careerpulse/internal/interchange"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full collection as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, cleanup, err := openTracker(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			data, err := tracker.ExportData()
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", interchange.ExportFilename, "output file, or - for stdout")

	return cmd
}

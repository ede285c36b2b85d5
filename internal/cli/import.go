package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"careerpulse/internal/interchange"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection with an exported JSON document",
		Long: `Replace the entire application collection with a previously
exported document. Pass - to read from stdin. The existing collection is
overwritten; export first if you need a backup.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tracker, cleanup, err := openTracker(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			count, err := tracker.ImportData(cmd.Context(), data)
			switch {
			case errors.Is(err, interchange.ErrParse):
				return fmt.Errorf("%s is not valid JSON", args[0])
			case errors.Is(err, interchange.ErrShape):
				return fmt.Errorf("%s is not an exported applications document", args[0])
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d applications\n", count)
			return nil
		},
	}

	return cmd
}

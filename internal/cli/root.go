// Package cli implements the careerpulse command-line interface for
// working with the tracker database without the web UI.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"careerpulse/internal/services"
	"careerpulse/internal/storage"
	"careerpulse/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	DBPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the careerpulse CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "careerpulse-cli",
		Short: "CareerPulse - job application tracker",
		Long:  "Command-line access to a CareerPulse tracker database: add, list, analyze, export, and import applications.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "./data/careerpulse.db", "path to the tracker database")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openTracker opens the database and builds a tracker service around it.
// The returned cleanup must be called before exit.
func openTracker(ctx context.Context, opts *RootOptions) (*services.TrackerService, func() error, error) {
	repo, err := storage.NewSQLiteRepository(opts.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database %s: %w", opts.DBPath, err)
	}

	records, err := store.NewRecords(ctx, repo)
	if err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("load applications: %w", err)
	}

	return services.NewTrackerService(records, nil), repo.Close, nil
}

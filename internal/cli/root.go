// Package cli provides the Cobra command structure for unipatch.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/unipatch/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root unipatch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "unipatch",
		Short: "A careful unified-diff patch applier",
		Long: `unipatch applies unified-diff patches to files, verifying every context
and removal line against the target before anything is written.

Application is all-or-nothing: a single mismatch aborts the run and the
target is left untouched. Before an overwrite the original content is
preserved in a backup, and the write itself is atomic.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newDiffCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// exactArgs wraps cobra.ExactArgs so that argument-count failures map to the
// usage exit code instead of a generic failure.
func exactArgs(n int) cobra.PositionalArgs {
	inner := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := inner(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

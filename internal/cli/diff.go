package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/unipatch/internal/ui/pretty"
	"github.com/yaklabco/unipatch/pkg/config"
	"github.com/yaklabco/unipatch/pkg/diff"
)

type diffFlags struct {
	stat bool
}

func newDiffCommand() *cobra.Command {
	var cfg config.Config
	flags := &diffFlags{}

	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Generate a unified diff between two files",
		Long: `Generate a unified diff between two files.

The output is a valid patch: applying it to OLD reproduces NEW exactly,
including a missing newline on the final line.

Exit status is 0 when the files are identical and 1 when they differ.

Examples:
  unipatch diff old.txt new.txt              # Print unified diff
  unipatch diff old.txt new.txt > fix.patch  # Save as a patch
  unipatch diff old.txt new.txt --stat       # One-line change summary`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().IntVar(&cfg.Context, "context", 0, "context lines around changes (0 = config default)")
	cmd.Flags().BoolVar(&flags.stat, "stat", false, "print a change summary instead of the diff")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string, cfg *config.Config, flags *diffFlags) error {
	finalCfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	oldContent, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	newContent, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[1], err)
	}

	d := diff.Generate(args[1], oldContent, newContent,
		diff.Options{ContextLines: finalCfg.ContextLines()})
	if !d.HasChanges() {
		return nil
	}

	styles := stylesFor(cmd)
	if flags.stat {
		fmt.Fprintln(cmd.OutOrStdout(), styles.FormatDiffStat(d))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), renderDiff(cmd, styles, d))
	}

	return ErrFilesDiffer
}

// renderDiff renders a diff for the command's stdout. With color enabled the
// styled form is used; otherwise the raw unified text, which preserves
// original terminators and stays a valid patch when redirected to a file.
func renderDiff(cmd *cobra.Command, styles *pretty.Styles, d *diff.Diff) string {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	if pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()) {
		return styles.FormatDiff(d)
	}
	return d.String()
}

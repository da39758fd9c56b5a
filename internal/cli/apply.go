package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/unipatch/internal/configloader"
	"github.com/yaklabco/unipatch/internal/logging"
	"github.com/yaklabco/unipatch/internal/ui/pretty"
	"github.com/yaklabco/unipatch/pkg/config"
	"github.com/yaklabco/unipatch/pkg/patch"
)

type applyFlags struct {
	backupMode string
}

func newApplyCommand() *cobra.Command {
	var cfg config.Config
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply TARGET PATCH",
		Short: "Apply a unified-diff patch to a file",
		Long:  applyLongDescription,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "verify and apply in memory without writing")
	cmd.Flags().BoolVar(&cfg.Preview, "preview", false, "print the effective diff before writing")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation")
	cmd.Flags().StringVar(&flags.backupMode, "backup-mode", "", "backup mode: timestamp, sidecar, none")
	cmd.Flags().IntVar(&cfg.Context, "context", 0, "context lines in previews (0 = config default)")

	return cmd
}

const applyLongDescription = `Apply a unified-diff patch to a target file.

Every context and removal line in the patch is verified against the target
before anything is written. On any mismatch the run aborts and the target
is left exactly as it was. The original content is backed up before the
overwrite unless backups are disabled, and the write itself is atomic.

Pass "-" as PATCH to read the patch from standard input.

Examples:
  unipatch apply config.txt fix.patch       # Verify and apply
  unipatch apply config.txt fix.patch --dry-run
  git diff | unipatch apply config.txt -    # Patch from stdin
  unipatch apply config.txt fix.patch --no-backups`

func runApply(cmd *cobra.Command, args []string, cfg *config.Config, flags *applyFlags) error {
	logger := logging.Default()

	if cmd.Flags().Changed("backup-mode") {
		cfg.Backups.Mode = flags.backupMode
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	targetPath := args[0]
	patchContent, err := readPatchInput(cmd, args[1])
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldBackupMode, finalCfg.Backups.Mode,
		logging.FieldContext, finalCfg.ContextLines(),
	)

	pipeline := patch.NewPipeline(patch.OptionsFromConfig(finalCfg))

	logger.Debug("applying patch",
		logging.FieldTarget, targetPath,
		logging.FieldDryRun, finalCfg.DryRun,
	)

	result, err := pipeline.ApplyFile(ctx, targetPath, patchContent)
	if err != nil {
		return err
	}

	styles := stylesFor(cmd)

	if result.Preview != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderDiff(cmd, styles, result.Preview))
	}

	if result.Skipped {
		return fmt.Errorf("write skipped: %s", result.SkipReason)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.FormatApplyResult(result))

	if result.Written {
		logger.Debug("target written",
			logging.FieldTarget, targetPath,
			logging.FieldBackup, result.BackupPath,
			logging.FieldHunks, result.Stats.Hunks,
			logging.FieldAdditions, result.Stats.Additions,
			logging.FieldDeletions, result.Stats.Deletions,
		)
	}

	return nil
}

// loadConfig resolves the effective configuration for a command invocation,
// layering discovered config files, environment, and CLI flags.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration from",
			logging.FieldConfigFile, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// readPatchInput reads the patch from a file, or from stdin when path is "-".
func readPatchInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read patch from stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patch %s: %w", path, err)
	}
	return content, nil
}

// stylesFor builds the style set for a command's stdout and color flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

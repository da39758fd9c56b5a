package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/unipatch/internal/logging"
	"github.com/yaklabco/unipatch/pkg/fsutil"
)

type restoreFlags struct {
	yes bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore TARGET",
		Short: "Restore a file from its most recent backup",
		Long: `Restore a file from the most recent backup unipatch created for it.

Timestamped backups (TARGET.bak.<timestamp>) are preferred, newest first,
falling back to a sidecar backup (TARGET.unipatch.bak). The restore itself
is an atomic write; the backup file is kept.

Examples:
  unipatch restore config.txt        # Prompt, then restore
  unipatch restore config.txt --yes  # Restore without prompting`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "restore without prompting for confirmation")

	return cmd
}

func runRestore(cmd *cobra.Command, path string, flags *restoreFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backupPath, err := fsutil.LatestBackup(path)
	if err != nil {
		return err
	}
	if backupPath == "" {
		return fmt.Errorf("no backup found for %s", path)
	}

	if !flags.yes {
		ok, err := confirmRestore(cmd, path, backupPath)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("restore cancelled", logging.FieldTarget, path)
			return nil
		}
	}

	restored, err := fsutil.RestoreBackup(ctx, path)
	if err != nil {
		return err
	}

	logger.Info("restored from backup",
		logging.FieldTarget, path,
		logging.FieldBackup, restored,
	)

	return nil
}

// confirmRestore prompts for confirmation on the terminal. A non-interactive
// stdin without --yes is an error rather than a silent overwrite.
func confirmRestore(cmd *cobra.Command, path, backupPath string) (bool, error) {
	stdin, isFile := cmd.InOrStdin().(*os.File)
	if isFile && !term.IsTerminal(int(stdin.Fd())) {
		return false, fmt.Errorf("%w: stdin is not a terminal; use --yes to restore without a prompt", ErrUsage)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Overwrite %s with %s? [y/N] ", path, backupPath)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

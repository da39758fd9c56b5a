package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BackupMode specifies how backups of the pre-patch content are stored.
type BackupMode string

const (
	// BackupModeTimestamp stores backups alongside the original file with a
	// .bak.<unix-timestamp> suffix. Every write gets a fresh backup.
	BackupModeTimestamp BackupMode = "timestamp"

	// BackupModeSidecar stores a single backup with a .unipatch.bak suffix.
	// An existing sidecar backup is never overwritten.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// SidecarSuffix is the suffix used for sidecar backup files.
const SidecarSuffix = ".unipatch.bak"

// timestampInfix separates the original name from the timestamp in
// timestamped backups.
const timestampInfix = ".bak."

// BackupConfig controls backup behavior.
type BackupConfig struct {
	// Enabled indicates whether backups should be created.
	Enabled bool

	// Mode specifies how backups are stored.
	Mode BackupMode
}

// DefaultBackupConfig returns the defaults: backups enabled, timestamp mode.
// Patching overwrites the target in place, so the original content must be
// preserved unless the user opts out.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		Enabled: true,
		Mode:    BackupModeTimestamp,
	}
}

// BackupPath returns the backup path that would be used for path under the
// given mode, or "" when backups are disabled by mode.
func BackupPath(path string, mode BackupMode) string {
	switch mode {
	case BackupModeTimestamp:
		return fmt.Sprintf("%s%s%d", path, timestampInfix, time.Now().Unix())
	case BackupModeSidecar:
		return path + SidecarSuffix
	case BackupModeNone:
		return ""
	default:
		return fmt.Sprintf("%s%s%d", path, timestampInfix, time.Now().Unix())
	}
}

// CreateBackup preserves the current content of path according to cfg and
// returns the backup path, or "" when no backup was created.
//
// Sidecar backups are idempotent: an existing sidecar is kept so that
// repeated runs never lose the oldest original. Timestamped backups are
// always fresh; a same-second collision gets a numeric suffix.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (string, error) {
	if !cfg.Enabled || cfg.Mode == BackupModeNone {
		return "", nil
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path, cfg.Mode)
	if backupPath == "" {
		return "", nil
	}

	if cfg.Mode == BackupModeSidecar {
		if _, err := os.Stat(backupPath); err == nil {
			return "", nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat backup path: %w", err)
		}
	} else {
		for i := 1; ; i++ {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			} else if err != nil {
				return "", fmt.Errorf("stat backup path: %w", err)
			}
			backupPath = fmt.Sprintf("%s%s%d.%d", path, timestampInfix, time.Now().Unix(), i)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing to preserve.
			return "", nil
		}
		return "", fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}

// LatestBackup returns the most recent backup for path, preferring the
// newest timestamped backup and falling back to a sidecar backup. Returns
// "" when no backup exists.
func LatestBackup(path string) (string, error) {
	matches, err := filepath.Glob(path + timestampInfix + "*")
	if err != nil {
		return "", fmt.Errorf("list backups: %w", err)
	}

	// Timestamped backups sort by their numeric suffix, newest last.
	stamped := matches[:0]
	for _, m := range matches {
		if _, ok := backupStamp(path, m); ok {
			stamped = append(stamped, m)
		}
	}
	if len(stamped) > 0 {
		sort.Slice(stamped, func(i, j int) bool {
			si, _ := backupStamp(path, stamped[i])
			sj, _ := backupStamp(path, stamped[j])
			return si < sj
		})
		return stamped[len(stamped)-1], nil
	}

	sidecar := path + SidecarSuffix
	if _, err := os.Stat(sidecar); err == nil {
		return sidecar, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat sidecar backup: %w", err)
	}

	return "", nil
}

// RestoreBackup restores path from its most recent backup and returns the
// backup path that was used. Returns "" when no backup exists.
func RestoreBackup(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath, err := LatestBackup(path)
	if err != nil {
		return "", err
	}
	if backupPath == "" {
		return "", nil
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		return "", fmt.Errorf("read backup: %w", err)
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return "", fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return "", fmt.Errorf("restore from backup: %w", err)
	}

	return backupPath, nil
}

// backupStamp extracts the numeric timestamp from a timestamped backup name.
// Suffixed collision backups ("....bak.<ts>.<n>") use their timestamp part.
func backupStamp(path, backup string) (int64, bool) {
	rest, ok := strings.CutPrefix(backup, path+timestampInfix)
	if !ok {
		return 0, false
	}
	ts, _, _ := strings.Cut(rest, ".")
	value, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

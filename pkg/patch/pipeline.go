package patch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/unipatch/pkg/config"
	"github.com/yaklabco/unipatch/pkg/diff"
	"github.com/yaklabco/unipatch/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the target or patch file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrBinaryContent indicates the target or patch looks like binary data.
	ErrBinaryContent = errors.New("binary content")

	// ErrApplyFailure indicates the patch could not be applied.
	ErrApplyFailure = errors.New("apply failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// Result contains the outcome of applying a patch to a single file.
type Result struct {
	// Path is the target file path.
	Path string

	// OriginalInfo is the target file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Applied is true if the patch produced content different from the
	// original. A patch whose insertions and deletions cancel out leaves
	// it false.
	Applied bool

	// PatchedContent is the content after application (nil if unchanged).
	PatchedContent []byte

	// Stats summarizes the hunks, additions, and deletions in the patch.
	Stats Stats

	// Preview is the effective diff for dry-run or preview mode
	// (nil otherwise).
	Preview *diff.Diff

	// Skipped is true if the write was skipped (e.g. the target changed on
	// disk while the patch was being verified).
	Skipped bool

	// SkipReason explains why the write was skipped.
	SkipReason string

	// BackupPath is the backup created before overwriting ("" if none).
	BackupPath string

	// Written is true if the target file was overwritten.
	Written bool
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if r.Skipped {
		return "skipped: " + r.SkipReason
	}
	if r.Written {
		if r.BackupPath != "" {
			return "patched (backup created)"
		}
		return "patched"
	}
	if r.Applied {
		return "changes pending"
	}
	return "already applied"
}

// Options controls pipeline behavior.
type Options struct {
	// DryRun verifies and applies in memory without writing the target.
	DryRun bool

	// Preview attaches the effective diff to the result even when writing.
	Preview bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// ContextLines is the diff context width for previews.
	ContextLines int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
		ContextLines:        diff.DefaultContextLines,
	}
}

// OptionsFromConfig creates pipeline Options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		DryRun:  cfg.DryRun,
		Preview: cfg.Preview,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.BackupsEnabled(),
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
		StrictRaceDetection: true,
		ContextLines:        cfg.ContextLines(),
	}
}

// Pipeline orchestrates the safe application of a patch to a single file.
type Pipeline struct {
	// Opts controls dry-run, previews, backups, and race detection.
	Opts Options
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{Opts: opts}
}

// ApplyFile runs the full pipeline for a single target file.
//
// The pipeline performs the following steps:
//  1. Read and hash the target file.
//  2. Reject binary target or patch content.
//  3. Apply the patch in memory, verifying every context and removal line.
//  4. Detect a no-op (patched content identical to the original).
//  5. Generate the effective diff (dry-run or preview mode).
//  6. Check for concurrent modifications.
//  7. Create a backup (if enabled).
//  8. Write the patched content atomically.
//
// Steps 6-8 are skipped in dry-run mode. The target is only ever replaced
// wholesale by a rename; no partial application is observable.
func (p *Pipeline) ApplyFile(ctx context.Context, path string, patchContent []byte) (*Result, error) {
	result := &Result{Path: path}

	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info

	if err := p.applyInMemory(result, path, originalContent, patchContent); err != nil {
		return nil, err
	}
	if !result.Applied {
		return result, nil
	}

	if p.Opts.DryRun {
		return result, nil
	}

	// Check for concurrent modifications before writing.
	changed, err := fsutil.CheckModified(ctx, info, p.Opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		result.Skipped = true
		result.SkipReason = "file modified while patch was being verified"
		return result, nil
	}

	backupPath, err := fsutil.CreateBackup(ctx, path, p.Opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupPath = backupPath

	if err := fsutil.WriteAtomic(ctx, path, result.PatchedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ApplyContent applies a patch to in-memory content without file I/O.
// Useful for testing or when content is already loaded. Write-side steps
// (race check, backup, atomic write) do not run.
func (p *Pipeline) ApplyContent(ctx context.Context, path string, originalContent, patchContent []byte) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("apply content: %w", ctx.Err())
	default:
	}

	result := &Result{Path: path}
	if err := p.applyInMemory(result, path, originalContent, patchContent); err != nil {
		return nil, err
	}
	return result, nil
}

// applyInMemory runs the in-memory half of the pipeline: binary rejection,
// verification and application, no-op detection, and preview generation.
func (p *Pipeline) applyInMemory(result *Result, path string, originalContent, patchContent []byte) error {
	if enry.IsBinary(originalContent) {
		return fmt.Errorf("%w: %s", ErrBinaryContent, path)
	}
	if enry.IsBinary(patchContent) {
		return fmt.Errorf("%w: patch input", ErrBinaryContent)
	}

	patchLines := SplitLines(string(patchContent))
	result.Stats = Summarize(patchLines)

	patched, err := Apply(SplitLines(string(originalContent)), patchLines)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyFailure, err)
	}
	patchedContent := []byte(JoinLines(patched))

	if string(patchedContent) == string(originalContent) {
		// Insertions and deletions cancelled out; nothing to write.
		return nil
	}

	result.Applied = true
	result.PatchedContent = patchedContent

	if p.Opts.DryRun || p.Opts.Preview {
		result.Preview = diff.Generate(path, originalContent, patchedContent,
			diff.Options{ContextLines: p.Opts.ContextLines})
	}
	return nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrBinaryContent) ||
		errors.Is(err, ErrApplyFailure) ||
		errors.Is(err, ErrWriteFailure)
}

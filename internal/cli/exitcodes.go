package cli

import (
	"errors"

	"github.com/yaklabco/unipatch/pkg/fsutil"
	"github.com/yaklabco/unipatch/pkg/patch"
)

// Exit codes for unipatch, following sysexits conventions where they apply.
const (
	// ExitSuccess indicates the patch applied (or nothing needed doing).
	ExitSuccess = 0

	// ExitPatchFailed indicates the patch could not be applied: a context or
	// removal mismatch, malformed hunk, or a skipped write. Also used by the
	// diff subcommand when the inputs differ.
	ExitPatchFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Signal errors used to select an exit code without extra logging.
var (
	// ErrUsage marks invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks a configuration loading or validation failure.
	ErrConfig = errors.New("configuration error")

	// ErrFilesDiffer signals that the diff subcommand found differences.
	// It carries no message for the user; the diff itself was the output.
	ErrFilesDiffer = errors.New("files differ")
)

// ExitCodeForError maps an error returned by command execution to a process
// exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, patch.ErrFileNotFound),
		errors.Is(err, patch.ErrPermissionDenied),
		errors.Is(err, patch.ErrWriteFailure),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitPatchFailed
	}
}

// IsSilentError reports whether err is a pure exit-code signal that should
// not be logged.
func IsSilentError(err error) bool {
	return errors.Is(err, ErrFilesDiffer)
}

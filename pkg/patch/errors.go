package patch

import (
	"errors"
	"fmt"
)

// Failure kinds for error categorization via errors.Is.
var (
	// ErrMalformedHeader indicates a hunk header whose range could not be parsed.
	ErrMalformedHeader = errors.New("malformed hunk header")

	// ErrContextMismatch indicates a context line that does not match the original.
	ErrContextMismatch = errors.New("context mismatch")

	// ErrRemovalMismatch indicates a deletion line that does not match the original.
	ErrRemovalMismatch = errors.New("removal mismatch")

	// ErrUnexpectedLine indicates a hunk body line that is not context, deletion, or insertion.
	ErrUnexpectedLine = errors.New("unexpected patch line")

	// ErrUnexpectedContent indicates non-hunk, non-preamble content at the top level.
	ErrUnexpectedContent = errors.New("unexpected patch content")

	// ErrHunkOrder indicates a hunk that starts before the position already
	// consumed by a previous hunk. Hunks must be non-overlapping and ordered
	// by ascending old-file position.
	ErrHunkOrder = errors.New("overlapping or out-of-order hunk")
)

// Error is a structured application failure. It wraps one of the kind
// sentinels above so callers can categorize with errors.Is, and carries the
// offending line text and positions for user-facing reporting.
type Error struct {
	// Kind is one of the package sentinel errors.
	Kind error

	// Text is the offending line, terminator stripped.
	Text string

	// PatchLine is the 1-based line number in the patch input (0 if unknown).
	PatchLine int

	// OrigLine is the 1-based line number in the original input (0 if not applicable).
	OrigLine int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Text != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.PatchLine > 0 {
		msg = fmt.Sprintf("%s (patch line %d)", msg, e.PatchLine)
	}
	if e.OrigLine > 0 {
		msg = fmt.Sprintf("%s (original line %d)", msg, e.OrigLine)
	}
	return msg
}

// Unwrap exposes the kind sentinel for errors.Is.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

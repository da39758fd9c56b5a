// Package patch applies unified-diff patches to text content.
//
// The core applier walks the original file and the patch stream in lockstep,
// verifying every context and removal line against the current original
// content before any output is produced. Application is all-or-nothing: a
// single mismatch aborts the attempt and the caller never observes a partial
// result. File I/O, backups, and atomic writes live in the Pipeline; Apply
// itself is a pure transformation over in-memory line sequences.
package patch

import "strings"

// A line, as handled by this package, is a string that carries its own
// terminator. Only the final line of a sequence may lack one. Lines are
// compared for exact byte equality, terminator included.

// SplitLines splits content into lines, keeping the terminator on each line
// (Python splitlines(keepends=True) semantics). Empty content yields nil.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for len(content) > 0 {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// trimEOL removes a single trailing line terminator, if present.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Stats summarizes the shape of a patch without applying it.
type Stats struct {
	// Hunks is the number of hunk headers in the patch.
	Hunks int

	// Additions is the number of insertion lines across all hunk bodies.
	Additions int

	// Deletions is the number of deletion lines across all hunk bodies.
	Deletions int
}

// Summarize counts hunks, additions, and deletions in a patch. It mirrors
// the applier's scanning rules: lines before the first hunk header are
// preamble, everything after a header up to the next header is hunk body.
func Summarize(patch []string) Stats {
	var stats Stats
	inHunk := false
	for _, line := range patch {
		if strings.HasPrefix(line, "@@") {
			stats.Hunks++
			inHunk = true
			continue
		}
		if !inHunk || line == "" {
			continue
		}
		switch line[0] {
		case '+':
			stats.Additions++
		case '-':
			stats.Deletions++
		}
	}
	return stats
}

package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/unipatch/pkg/patch"
)

// FormatApplyResult renders a one-line outcome for a pipeline result.
func (s *Styles) FormatApplyResult(r *patch.Result) string {
	if r == nil {
		return ""
	}

	var parts []string

	switch {
	case r.Skipped:
		parts = append(parts, s.Warning.Render("skipped"), s.Dim.Render("("+r.SkipReason+")"))
	case r.Written:
		parts = append(parts, s.Success.Render("patched"), s.FilePath.Render(r.Path), statPart(s, r.Stats))
		if r.BackupPath != "" {
			parts = append(parts, s.Dim.Render("backup: "+r.BackupPath))
		}
	case r.Applied:
		// Dry run: verified but not written.
		parts = append(parts, s.Success.Render("would patch"), s.FilePath.Render(r.Path), statPart(s, r.Stats))
	default:
		parts = append(parts, s.Dim.Render("already applied, nothing to do"))
	}

	return strings.Join(parts, " ")
}

func statPart(s *Styles, stats patch.Stats) string {
	hunkWord := "hunks"
	if stats.Hunks == 1 {
		hunkWord = "hunk"
	}
	return fmt.Sprintf("(%d %s, %s %s)",
		stats.Hunks, hunkWord,
		s.DiffAdd.Render(fmt.Sprintf("+%d", stats.Additions)),
		s.DiffRemove.Render(fmt.Sprintf("-%d", stats.Deletions)))
}

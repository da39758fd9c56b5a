package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/unipatch/pkg/diff"
)

// FormatDiff renders a unified diff with per-line styling. Returns "" for a
// nil or empty diff.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")

	for _, hunk := range d.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		builder.WriteString(s.DiffHunk.Render(header) + "\n")

		for _, line := range hunk.Lines {
			text := trimEOL(line.Content)
			switch line.Kind {
			case diff.LineAdd:
				builder.WriteString(s.DiffAdd.Render("+"+text) + "\n")
			case diff.LineRemove:
				builder.WriteString(s.DiffRemove.Render("-"+text) + "\n")
			default:
				builder.WriteString(s.DiffContext.Render(" "+text) + "\n")
			}
			if !strings.HasSuffix(line.Content, "\n") {
				builder.WriteString(s.DiffMarker.Render(`\ No newline at end of file`) + "\n")
			}
		}
	}

	return builder.String()
}

// FormatDiffStat renders a one-line change summary.
// Example: "docs/readme.txt: 2 hunks, +5 -3".
func (s *Styles) FormatDiffStat(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}
	hunkWord := "hunks"
	if len(d.Hunks) == 1 {
		hunkWord = "hunk"
	}
	return fmt.Sprintf("%s: %d %s, %s %s",
		s.FilePath.Render(d.Path),
		len(d.Hunks), hunkWord,
		s.DiffAdd.Render(fmt.Sprintf("+%d", d.Additions)),
		s.DiffRemove.Render(fmt.Sprintf("-%d", d.Deletions)))
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

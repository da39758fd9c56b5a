// Package diff generates unified diffs between two versions of a file.
//
// Lines carry their own terminators throughout, so a generated diff
// round-trips: applying it to the original content reproduces the modified
// content byte for byte, including a missing newline on the final line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContextLines is the number of unchanged lines shown around each
// change when no explicit value is configured.
const DefaultContextLines = 3

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// Hunk represents a single hunk in a unified diff.
type Hunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the
	// original. For a pure insertion it is the line the insertion precedes.
	OriginalStart int

	// OriginalCount is the number of original lines covered by the hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the
	// modified content.
	ModifiedStart int

	// ModifiedCount is the number of modified lines covered by the hunk.
	ModifiedCount int

	// Lines contains the hunk body.
	Lines []Line
}

// Line is a single line in a diff hunk.
type Line struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind LineKind

	// Content is the line text including its terminator, without the diff
	// prefix. The final line of a file may lack a terminator.
	Content string
}

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged line present in both versions.
	LineContext LineKind = iota

	// LineAdd is a line present only in the modified version.
	LineAdd

	// LineRemove is a line present only in the original version.
	LineRemove
)

// Options controls diff generation.
type Options struct {
	// ContextLines is the number of unchanged lines around each change.
	// Values of zero or below fall back to DefaultContextLines.
	ContextLines int
}

// Generate creates a unified diff between original and modified content.
// Returns nil if the two are identical.
func Generate(path string, original, modified []byte, opts Options) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	context := opts.ContextLines
	if context <= 0 {
		context = DefaultContextLines
	}

	ops := computeOps(string(original), string(modified))
	hunks := groupIntoHunks(ops, context)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified format (without the git header).
// Lines that lack a terminator are followed by the conventional
// "\ No newline at end of file" marker.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineContext:
				builder.WriteByte(' ')
			case LineAdd:
				builder.WriteByte('+')
			case LineRemove:
				builder.WriteByte('-')
			}
			builder.WriteString(line.Content)
			if !strings.HasSuffix(line.Content, "\n") {
				builder.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}

	return builder.String()
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// op is a single line-level diff operation.
type op struct {
	kind    LineKind
	content string
}

// computeOps produces the flat op sequence for two texts using a line-mode
// rune diff. Each rune in the intermediate encoding stands for one line, so
// the diff never splits a line in half.
func computeOps(original, modified string) []op {
	dmp := diffmatchpatch.New()

	origRunes, modRunes, lineArray := dmp.DiffLinesToRunes(original, modified)
	diffs := dmp.DiffMainRunes(origRunes, modRunes, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var ops []op
	for _, d := range diffs {
		var kind LineKind
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = LineContext
		case diffmatchpatch.DiffInsert:
			kind = LineAdd
		case diffmatchpatch.DiffDelete:
			kind = LineRemove
		}
		// Each rune indexes lineArray; decode back to the original lines.
		for _, r := range d.Text {
			ops = append(ops, op{kind: kind, content: lineArray[r]})
		}
	}
	return ops
}

// groupIntoHunks groups diff operations into hunks, keeping up to context
// unchanged lines around each run of changes and merging runs whose gap is
// small enough that their context would overlap.
func groupIntoHunks(ops []op, context int) []Hunk {
	type changeRange struct {
		start, end int
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for opIdx, o := range ops {
		isChange := o.kind != LineContext
		if isChange && !inChange {
			rangeStart = opIdx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, opIdx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	if len(ranges) == 0 {
		return nil
	}

	var hunks []Hunk
	for rangeIdx := 0; rangeIdx < len(ranges); {
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) {
			gap := ranges[mergeEnd].start - ranges[mergeEnd-1].end
			if gap > context*2 {
				break
			}
			mergeEnd++
		}

		hunk := buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end, context)
		if len(hunk.Lines) > 0 {
			hunks = append(hunks, hunk)
		}

		rangeIdx = mergeEnd
	}

	return hunks
}

// buildHunk builds a single hunk from a range of operations, expanded by
// context lines on both sides.
func buildHunk(ops []op, changeStart, changeEnd, context int) Hunk {
	start := changeStart - context
	if start < 0 {
		start = 0
	}
	end := changeEnd + context
	if end > len(ops) {
		end = len(ops)
	}

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for opIdx := 0; opIdx < start; opIdx++ {
		if ops[opIdx].kind != LineAdd {
			hunk.OriginalStart++
		}
		if ops[opIdx].kind != LineRemove {
			hunk.ModifiedStart++
		}
	}

	for i := start; i < end; i++ {
		o := ops[i]
		hunk.Lines = append(hunk.Lines, Line{Kind: o.kind, Content: o.content})

		switch o.kind {
		case LineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case LineRemove:
			hunk.OriginalCount++
		case LineAdd:
			hunk.ModifiedCount++
		}
	}

	return hunk
}

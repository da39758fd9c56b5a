package patch

import (
	"strconv"
	"strings"
)

// preamblePrefixes are file-header lines recognized (and skipped) at the top
// level of a patch.
//
//nolint:gochecknoglobals // Read-only lookup table.
var preamblePrefixes = []string{"---", "+++", "diff ", "index "}

// isPreamble reports whether line is a recognized non-hunk header line.
func isPreamble(line string) bool {
	for _, prefix := range preamblePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parseHunkHeader extracts the 0-based old start offset from a hunk header of
// the form "@@ -<old_start>[,<old_count>] +<new_start>[,<new_count>] @@".
// Only the old start is consumed; counts and the new-range token are not
// validated against the hunk body.
func parseHunkHeader(header string, patchLine int) (int, error) {
	malformed := func() (int, error) {
		return 0, &Error{Kind: ErrMalformedHeader, Text: trimEOL(header), PatchLine: patchLine}
	}

	// "@@ -1,3 +1,3 @@ section" splits into "", " -1,3 +1,3 ", " section".
	parts := strings.SplitN(header, "@@", 3)
	if len(parts) < 3 {
		return malformed()
	}

	ranges := strings.TrimSpace(parts[1])
	oldRange, _, found := strings.Cut(ranges, " ")
	if !found {
		return malformed()
	}

	oldStart, _, _ := strings.Cut(strings.TrimPrefix(oldRange, "-"), ",")
	value, err := strconv.Atoi(oldStart)
	if err != nil || value < 0 {
		return malformed()
	}

	// "-0,0" addresses an insertion before the first line of an empty or
	// zero-context region; everything else is 1-based.
	if value == 0 {
		return 0, nil
	}
	return value - 1, nil
}

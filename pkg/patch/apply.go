package patch

import "strings"

// Apply applies a unified-diff patch to the original line sequence and
// returns the patched sequence. Both inputs must be split with terminators
// preserved (see SplitLines). The original is never modified; on any
// failure the returned sequence is nil and the error wraps one of the
// package sentinel kinds.
func Apply(original, patch []string) ([]string, error) {
	result := make([]string, 0, len(original))
	origIdx := 0
	patchIdx := 0

	for patchIdx < len(patch) {
		line := patch[patchIdx]

		if isPreamble(line) {
			patchIdx++
			continue
		}

		if !strings.HasPrefix(line, "@@") {
			return nil, &Error{Kind: ErrUnexpectedContent, Text: trimEOL(line), PatchLine: patchIdx + 1}
		}

		oldStart, err := parseHunkHeader(line, patchIdx+1)
		if err != nil {
			return nil, err
		}

		// Hunks must be ordered by ascending old-file position and must not
		// overlap the range consumed by a previous hunk.
		if oldStart < origIdx {
			return nil, &Error{Kind: ErrHunkOrder, Text: trimEOL(line), PatchLine: patchIdx + 1, OrigLine: origIdx + 1}
		}

		// Carry forward unmodified original content up to the hunk start.
		// A start beyond EOF is caught below by the first body verification.
		for origIdx < oldStart && origIdx < len(original) {
			result = append(result, original[origIdx])
			origIdx++
		}
		patchIdx++

		sawBody := false
		for patchIdx < len(patch) {
			pline := patch[patchIdx]

			if strings.HasPrefix(pline, "@@") {
				break
			}

			// A "\ No newline at end of file" marker qualifies the line
			// before it; the qualification itself happens via lookahead when
			// that line is consumed.
			if strings.HasPrefix(pline, `\`) {
				if !sawBody {
					return nil, &Error{Kind: ErrUnexpectedLine, Text: trimEOL(pline), PatchLine: patchIdx + 1}
				}
				patchIdx++
				continue
			}

			if pline == "" {
				return nil, &Error{Kind: ErrUnexpectedLine, PatchLine: patchIdx + 1}
			}

			payload := pline[1:]
			if noNewlineMarkerFollows(patch, patchIdx) {
				payload = trimEOL(payload)
			}

			switch pline[0] {
			case ' ':
				if origIdx >= len(original) || original[origIdx] != payload {
					return nil, mismatch(ErrContextMismatch, pline, patchIdx, origIdx)
				}
				result = append(result, original[origIdx])
				origIdx++
			case '-':
				if origIdx >= len(original) || original[origIdx] != payload {
					return nil, mismatch(ErrRemovalMismatch, pline, patchIdx, origIdx)
				}
				origIdx++
			case '+':
				result = append(result, payload)
			default:
				return nil, &Error{Kind: ErrUnexpectedLine, Text: trimEOL(pline), PatchLine: patchIdx + 1}
			}

			sawBody = true
			patchIdx++
		}
	}

	// Original content after the final hunk is preserved unmodified.
	result = append(result, original[origIdx:]...)
	return result, nil
}

// ApplyContent is the byte-oriented convenience form of Apply.
func ApplyContent(original, patch []byte) ([]byte, error) {
	lines, err := Apply(SplitLines(string(original)), SplitLines(string(patch)))
	if err != nil {
		return nil, err
	}
	return []byte(JoinLines(lines)), nil
}

// noNewlineMarkerFollows reports whether the patch line after idx is a
// "\ No newline at end of file" marker.
func noNewlineMarkerFollows(patch []string, idx int) bool {
	return idx+1 < len(patch) && strings.HasPrefix(patch[idx+1], `\`)
}

func mismatch(kind error, pline string, patchIdx, origIdx int) *Error {
	return &Error{
		Kind:      kind,
		Text:      trimEOL(pline),
		PatchLine: patchIdx + 1,
		OrigLine:  origIdx + 1,
	}
}

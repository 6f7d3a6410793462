// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import "strings"

// Segment splits a document into raw slide sections on delimiter lines.
// Empty sections and the section holding the document's top-level heading
// are discarded.
func Segment(text string) []string {
	var (
		segments []string
		current  []string
	)
	flush := func() {
		seg := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]
		if seg == "" || isDocumentHeading(seg) {
			return
		}
		segments = append(segments, seg)
	}

	for _, line := range splitLines(text) {
		if isDelimiter(line) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return segments
}

// isDelimiter reports whether line is three or more hyphens, optionally
// surrounded by spaces or tabs.
func isDelimiter(line string) bool {
	s := strings.Trim(line, " \t")
	if len(s) < 3 {
		return false
	}
	return strings.Trim(s, "-") == ""
}

// isDocumentHeading reports whether a section is nothing but a level-1
// heading line. A level-1 heading followed by content stays; the section
// parser ignores the heading line itself.
func isDocumentHeading(seg string) bool {
	return !strings.Contains(seg, "\n") && strings.HasPrefix(seg, "# ")
}

// splitLines splits on \n and drops a trailing \r from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

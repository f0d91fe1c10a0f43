// Package diff parses composite unified-diff text into a flat,
// ordered sequence of per-line change records.
package diff

import (
	"bufio"
	"strings"
)

// Parse scans the composite text once, top to bottom, and emits one
// Record per change or context line. It never fails: the input is
// machine-generated (git output plus synthesized fragments), so
// malformed lines are dropped rather than rejected, and the worst case
// for bad input is fewer records, not an error.
func Parse(composite string) []Record {

	var records []Record

	st := state{source: Working}

	scanner := bufio.NewScanner(strings.NewReader(composite))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		// Section marker
		if src, ok := parseMarker(line); ok {
			st.source = src
			continue
		}

		// New file; records use the post-change path, so renames track
		// only the destination.
		if strings.HasPrefix(line, "diff --git") {
			st.file = fileName(line)
			st.inHunk = false
			st.oldLine, st.newLine = 0, 0
			continue
		}

		// Old/new file name lines
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}

		// Hunk start
		if oldStart, newStart, ok := parseHunkHeader(line); ok && st.file != "" {
			st.inHunk = true
			st.oldLine = oldStart - 1
			st.newLine = newStart - 1
			continue
		}

		// Content lines
		if r, ok := st.scanLine(line); ok {
			records = append(records, r)
		}
	}

	return records
}

func fileName(line string) string {
	if i := strings.LastIndex(line, " b/"); i >= 0 {
		return line[i+3:]
	}
	return ""
}

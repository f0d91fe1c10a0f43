package diff

import (
	"regexp"
	"strconv"
)

// A missing ,count means count = 1 per unified-diff convention; the
// parser only needs the start values, so counts are matched but not
// captured.
var hunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

func parseHunkHeader(line string) (oldStart, newStart int, ok bool) {

	m := hunkRe.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}

	oldStart, _ = strconv.Atoi(m[1])
	newStart, _ = strconv.Atoi(m[2])

	return oldStart, newStart, true
}

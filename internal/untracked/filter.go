package untracked

import (
	"bytes"
	"os"
	"unicode/utf8"
)

// Inclusion is best-effort: anything rejected here is skipped quietly,
// never reported as an error. The composite diff promises partial
// results over completeness.

func includable(info os.FileInfo, maxBytes int64) (reason string, ok bool) {

	if !info.Mode().IsRegular() {
		return "not_regular", false
	}
	if info.Size() == 0 {
		return "empty", false
	}
	if info.Size() > maxBytes {
		return "oversized", false
	}
	return "", true
}

func looksBinary(content []byte) bool {
	return bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)
}

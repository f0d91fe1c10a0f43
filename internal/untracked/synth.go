// Package untracked turns untracked files into synthetic
// "all-lines-added" unified-diff fragments, so the parser consumes
// them like any git-produced diff.
package untracked

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diff-search/internal/observability"
)

type Files struct {
	root     string
	maxBytes int64
	logger   *observability.Logger
}

func NewFiles(root string, maxBytes int64, logger *observability.Logger) *Files {
	return &Files{
		root:     root,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Synthesize reads each repository-relative path and concatenates one
// diff fragment per file that passes the include policy. Unreadable,
// oversized, empty, and binary files are skipped, never fatal.
func (f *Files) Synthesize(paths []string) string {

	var b strings.Builder

	for _, p := range paths {

		full := filepath.Join(f.root, filepath.FromSlash(p))

		info, err := os.Lstat(full)
		if err != nil {
			f.skip(p, "unreadable")
			continue
		}

		if reason, ok := includable(info, f.maxBytes); !ok {
			f.skip(p, reason)
			continue
		}

		content, err := os.ReadFile(full)
		if err != nil {
			f.skip(p, "unreadable")
			continue
		}

		if looksBinary(content) {
			f.skip(p, "binary")
			continue
		}

		b.WriteString(Fragment(p, string(content)))
	}

	return b.String()
}

func (f *Files) skip(path, reason string) {
	observability.UntrackedSkipped.WithLabelValues(reason).Inc()
	f.logger.Debug("untracked file skipped", "path", path, "reason", reason)
}

// Fragment builds the diff fragment for one brand-new file. The header
// shape mirrors real git output closely enough for the parser to
// consume it without special cases.
func Fragment(path, content string) string {

	lines := splitLines(content)

	var b strings.Builder

	fmt.Fprintf(&b, "diff --git a/dev/null b/%s\n", path)
	b.WriteString("new file mode 100644\n")
	fmt.Fprintf(&b, "index 0000000..%s 100644\n", Fingerprint(content))
	b.WriteString("--- /dev/null\n")
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	fmt.Fprintf(&b, "@@ -0,0 +1,%d @@\n", len(lines))

	for _, l := range lines {
		b.WriteByte('+')
		b.WriteString(l)
		b.WriteByte('\n')
	}

	return b.String()
}

func splitLines(content string) []string {
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

package diff

// Source identifies which change source a record came from. The three
// values are the only ones the aggregator ever produces; switches over
// Source should handle all of them.
type Source string

const (
	Working   Source = "working"
	Staged    Source = "staged"
	Untracked Source = "untracked"
)

// ParseSource maps the wire/query spelling of a source to its value.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case Working, Staged, Untracked:
		return Source(s), true
	}
	return "", false
}

type Kind string

const (
	Added   Kind = "added"
	Removed Kind = "removed"
	Context Kind = "context"
)

// Record is one line of the composite diff. Line is 1-based and refers
// to the new file for added and context lines and to the old file for
// removed lines; context lines deliberately report the new-file number
// so a jump lands on the modified side. Content carries no +/-/space
// marker and no trailing newline.
type Record struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Content string `json:"content"`
	Kind    Kind   `json:"kind"`
	Source  Source `json:"source"`
}

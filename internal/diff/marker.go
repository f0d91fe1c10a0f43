package diff

// Section markers are the wire format between the aggregator and the
// parser. A marker line can never collide with diff content: no
// unified-diff line begins with "===".

const (
	markerPrefix = "=== source: "
	markerSuffix = " ==="
)

// Marker returns the sentinel line written before a section of the
// composite text.
func Marker(s Source) string {
	return markerPrefix + string(s) + markerSuffix
}

func parseMarker(line string) (Source, bool) {
	switch line {
	case Marker(Working):
		return Working, true
	case Marker(Staged):
		return Staged, true
	case Marker(Untracked):
		return Untracked, true
	}
	return "", false
}

package diff

// state carries the parser's position between lines: the file named by
// the last "diff --git" header, the source named by the last section
// marker, and the old/new cursors pointing at the last line number
// already accounted for.
type state struct {
	file    string
	source  Source
	inHunk  bool
	oldLine int
	newLine int
}

// scanLine applies one content line to the running state. It returns a
// record only for change and context lines that can be attributed to a
// file and a hunk; everything else (mode lines, index lines, "no
// newline" markers, stray text) is consumed silently.
func (st *state) scanLine(raw string) (Record, bool) {

	if st.file == "" || !st.inHunk || len(raw) == 0 {
		return Record{}, false
	}

	switch raw[0] {

	case '+':
		st.newLine++
		return Record{
			File:    st.file,
			Line:    st.newLine,
			Content: raw[1:],
			Kind:    Added,
			Source:  st.source,
		}, true

	case '-':
		st.oldLine++
		return Record{
			File:    st.file,
			Line:    st.oldLine,
			Content: raw[1:],
			Kind:    Removed,
			Source:  st.source,
		}, true

	case ' ':
		st.oldLine++
		st.newLine++
		return Record{
			File:    st.file,
			Line:    st.newLine,
			Content: raw[1:],
			Kind:    Context,
			Source:  st.source,
		}, true
	}

	return Record{}, false
}

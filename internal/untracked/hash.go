package untracked

import "strconv"

// Fingerprint stands in for an object id in synthesized diff headers:
// a 32-bit rolling hash (hash = hash*31 + char, wrapped) rendered as
// at most seven lowercase hex digits of its absolute value.
//
// It is cosmetic only. Do not use it for content addressing or
// equality, and do not strengthen it: it collides freely by design,
// downstream never compares it, and test fixtures encode its exact
// output.
func Fingerprint(content string) string {

	var h int32
	for _, r := range content {
		h = h*31 + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}

	s := strconv.FormatInt(v, 16)
	if len(s) > 7 {
		s = s[:7]
	}
	return s
}

// Package search filters parsed diff records against a query.
package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"diff-search/internal/diff"
)

// ErrInvalidPattern reports a query that does not compile as a regular
// expression. Callers must surface it distinctly from zero matches.
var ErrInvalidPattern = errors.New("invalid pattern")

// Scope restricts candidates to one (file, source) pair before
// matching. File comparison is case-insensitive; source is exact.
type Scope struct {
	File   string
	Source diff.Source
}

type Options struct {
	Query         string
	CaseSensitive bool
	WholeWord     bool
	Regex         bool
	Scope         *Scope
}

// Run returns the subsequence of records whose content matches the
// query, in input order. An empty query yields an empty result, not
// "match all". Context records are never searchable: only added and
// removed lines represent a change worth hitting.
func Run(records []diff.Record, opts Options) ([]diff.Record, error) {

	if opts.Query == "" {
		return nil, nil
	}

	re, err := compile(opts)
	if err != nil {
		return nil, err
	}

	var out []diff.Record

	for _, r := range records {

		if r.Kind == diff.Context {
			continue
		}

		if opts.Scope != nil {
			if !strings.EqualFold(r.File, opts.Scope.File) || r.Source != opts.Scope.Source {
				continue
			}
		}

		if re.MatchString(r.Content) {
			out = append(out, r)
		}
	}

	return out, nil
}

func compile(opts Options) (*regexp.Regexp, error) {

	pattern := opts.Query
	if !opts.Regex {
		pattern = regexp.QuoteMeta(pattern)
	}

	if opts.WholeWord {
		pattern = `\b(?:` + pattern + `)\b`
	}

	if !opts.CaseSensitive {
		pattern = `(?i)` + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return re, nil
}

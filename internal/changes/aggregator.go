// Package changes assembles the composite diff text from the three
// change sources and feeds it through the parser.
package changes

import (
	"context"
	"strings"

	"diff-search/internal/diff"
	"diff-search/internal/git"
	"diff-search/internal/observability"
	"diff-search/internal/untracked"
)

type Aggregator struct {
	provider git.Provider
	files    *untracked.Files
	logger   *observability.Logger
}

func New(provider git.Provider, files *untracked.Files, logger *observability.Logger) *Aggregator {
	return &Aggregator{
		provider: provider,
		files:    files,
		logger:   logger,
	}
}

// Composite fetches working, staged, and untracked changes, in that
// fixed order, each behind its section marker. A source with nothing
// to report contributes no section at all. Per-source trouble was
// already degraded to empty output inside the provider; the only error
// that escapes is git being unavailable.
func (a *Aggregator) Composite(ctx context.Context) (string, error) {

	var b strings.Builder

	working, err := a.provider.DiffWorking(ctx)
	if err != nil {
		return "", err
	}
	appendSection(&b, diff.Working, working)

	staged, err := a.provider.DiffStaged(ctx)
	if err != nil {
		return "", err
	}
	appendSection(&b, diff.Staged, staged)

	paths, err := a.provider.Untracked(ctx)
	if err != nil {
		return "", err
	}
	appendSection(&b, diff.Untracked, a.files.Synthesize(paths))

	return b.String(), nil
}

// Records is Composite followed by a full parse. Every call starts
// from scratch; nothing is cached between queries.
func (a *Aggregator) Records(ctx context.Context) ([]diff.Record, error) {

	text, err := a.Composite(ctx)
	if err != nil {
		return nil, err
	}

	records := diff.Parse(text)

	observability.RecordsParsed.Add(float64(len(records)))
	a.logger.Debug("changes parsed", "records", len(records))

	return records, nil
}

func appendSection(b *strings.Builder, src diff.Source, text string) {

	if text == "" {
		return
	}

	b.WriteString(diff.Marker(src))
	b.WriteByte('\n')
	b.WriteString(text)

	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
}

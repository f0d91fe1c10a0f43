package git

import "context"

// Provider is the boundary to the external diff-producing tool. All
// methods return empty output when a source has nothing to report;
// they fail only when the tool itself cannot be invoked.
//
//go:generate mockery --name Provider --output ../mocks --with-expecter
type Provider interface {
	// DiffWorking diffs the working tree against the index.
	DiffWorking(ctx context.Context) (string, error)

	// DiffStaged diffs the index against the last commit.
	DiffStaged(ctx context.Context) (string, error)

	// Untracked lists repository-relative paths of untracked files.
	Untracked(ctx context.Context) ([]string, error)
}

// Package git shells out to the git binary for the three change
// sources. It never computes a diff itself.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"diff-search/internal/config"
	"diff-search/internal/observability"
	"diff-search/internal/retry"
)

// ErrToolUnavailable means the git binary could not be invoked at all.
// This is the only fatal condition: a non-zero exit (nothing to diff,
// not a repository) is treated as "no changes" instead.
var ErrToolUnavailable = errors.New("git unavailable")

// errIndexLocked marks transient index.lock contention, which is worth
// retrying because another git process usually releases it quickly.
var errIndexLocked = errors.New("git index locked")

type client struct {
	cfg    *config.Config
	logger *observability.Logger
}

func NewClient(cfg *config.Config, logger *observability.Logger) Provider {
	return &client{
		cfg:    cfg,
		logger: logger,
	}
}

func (c *client) DiffWorking(ctx context.Context) (string, error) {
	return c.run(ctx, "diff_working", "diff", "--unified="+strconv.Itoa(c.cfg.DiffContext))
}

func (c *client) DiffStaged(ctx context.Context) (string, error) {
	return c.run(ctx, "diff_staged", "diff", "--cached", "--unified="+strconv.Itoa(c.cfg.DiffContext))
}

func (c *client) Untracked(ctx context.Context) ([]string, error) {

	out, err := c.run(ctx, "untracked", "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, p := range strings.Split(out, "\n") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

func (c *client) run(ctx context.Context, op string, args ...string) (string, error) {

	full := append([]string{"-C", c.cfg.RepoRoot}, args...)

	var out string

	err := retry.Do(ctx, 3, 100*time.Millisecond, func() error {

		start := time.Now()

		cmd := exec.CommandContext(ctx, c.cfg.GitBin, full...)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		runErr := cmd.Run()

		observability.GitCalls.WithLabelValues(op).Inc()
		observability.GitLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())

		if runErr == nil {
			out = stdout.String()
			return nil
		}

		return c.classify(op, runErr, stderr.String())
	})

	if errors.Is(err, errIndexLocked) {
		// Still locked after the retries: degrade to "no changes" so
		// the other sources keep working.
		c.logger.Error("git index stayed locked", "op", op)
		return "", nil
	}

	return out, err
}

// classify sorts a failed invocation into the three outcomes the
// aggregation policy cares about: retryable lock contention, a fatal
// unlaunchable tool, or plain "nothing to report".
func (c *client) classify(op string, runErr error, stderr string) error {

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {

		if strings.Contains(stderr, "index.lock") {
			return errIndexLocked
		}

		c.logger.Debug("git exited non-zero",
			"op", op,
			"code", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(stderr),
		)
		return nil
	}

	observability.GitErrors.WithLabelValues(op).Inc()

	return fmt.Errorf("%w: %v", ErrToolUnavailable, runErr)
}

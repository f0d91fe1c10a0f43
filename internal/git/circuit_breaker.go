package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider in a circuit breaker so a missing
// or broken git binary fails fast instead of forking on every query.
type BreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

func NewBreaker(p Provider) *BreakerProvider {

	settings := gobreaker.Settings{
		Name:        "git",
		MaxRequests: 3,
		Interval:    0,
		Timeout:     30 * time.Second,
	}

	return &BreakerProvider{
		provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerProvider) DiffWorking(ctx context.Context) (string, error) {
	return b.text(func() (string, error) {
		return b.provider.DiffWorking(ctx)
	})
}

func (b *BreakerProvider) DiffStaged(ctx context.Context) (string, error) {
	return b.text(func() (string, error) {
		return b.provider.DiffStaged(ctx)
	})
}

func (b *BreakerProvider) Untracked(ctx context.Context) ([]string, error) {

	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.Untracked(ctx)
	})

	if err != nil {
		return nil, b.mapErr(err)
	}

	paths, ok := out.([]string)
	if !ok && out != nil {
		return nil, fmt.Errorf("unexpected circuit breaker response type")
	}

	return paths, nil
}

func (b *BreakerProvider) text(fn func() (string, error)) (string, error) {

	out, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})

	if err != nil {
		return "", b.mapErr(err)
	}

	s, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("unexpected circuit breaker response type")
	}

	return s, nil
}

// An open breaker means git has been failing; callers see that as the
// tool being unavailable, same as the underlying condition.
func (b *BreakerProvider) mapErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return err
}

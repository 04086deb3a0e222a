// Package poll implements the convergence polling pattern callers use to
// observe an eventually consistent read: fetch on a fixed interval, stop on
// the first matching observation, and report exhaustion explicitly when the
// attempt bound runs out.
//
// Usage:
//
//	res, err := poll.Until(ctx, poll.DefaultPolicy(),
//		func(ctx context.Context) (*option.Option, error) {
//			return client.GetOption(ctx, "mon_allow_pool_delete")
//		},
//		poll.HasValue("mon", "true"),
//	)
//	if errors.Is(err, poll.ErrExhausted) {
//		// value never converged within the bound
//	}
package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
)

const (
	// DefaultMaxAttempts bounds the number of fetches.
	DefaultMaxAttempts = 30

	// DefaultInterval is the fixed pause between fetches.
	DefaultInterval = time.Second
)

// ErrExhausted is returned when every attempt completed without a match.
var ErrExhausted = errors.New("poll: attempts exhausted without convergence")

// Outcome is how a poll ended.
type Outcome int

const (
	// Converged means an observation matched.
	Converged Outcome = iota + 1
	// Exhausted means the attempt bound ran out first.
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Policy bounds a poll. The interval is fixed; it never grows.
type Policy struct {
	MaxAttempts int
	Interval    time.Duration
	// Logger receives one debug record per attempt. Optional.
	Logger *slog.Logger
}

// DefaultPolicy returns 30 attempts one second apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Interval: DefaultInterval}
}

// Result reports the last observed value and how the poll ended.
type Result[T any] struct {
	Value    T
	Attempts int
	Outcome  Outcome
}

// Until calls fetch until match accepts its value or the policy's attempt
// bound is reached, sleeping Interval between attempts.
//
// Fetch errors wrapping domain.ErrUnavailable count as "not yet" and are
// retried. Any other fetch error ends the poll and is returned as is; the
// catalog is static, so domain.ErrNotFound means the value can never match.
// Context cancellation ends the poll with the context error.
// On exhaustion the returned error wraps ErrExhausted and, if the last
// attempt failed, that failure too.
func Until[T any](ctx context.Context, p Policy, fetch func(context.Context) (T, error), match func(T) bool) (Result[T], error) {
	p = p.withDefaults()

	var (
		res     Result[T]
		lastErr error
	)

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		res.Attempts = attempt

		v, err := fetch(ctx)
		switch {
		case err == nil:
			res.Value = v
			lastErr = nil
			if match(v) {
				res.Outcome = Converged
				p.log(ctx, attempt, "matched", nil)
				return res, nil
			}
			p.log(ctx, attempt, "no match", nil)
		case ctx.Err() != nil:
			return res, ctx.Err()
		case retryable(err):
			lastErr = err
			p.log(ctx, attempt, "not yet", err)
		default:
			return res, err
		}

		if attempt == p.MaxAttempts {
			break
		}
		if err := sleep(ctx, p.Interval); err != nil {
			return res, err
		}
	}

	res.Outcome = Exhausted
	if lastErr != nil {
		return res, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, res.Attempts, lastErr)
	}
	return res, fmt.Errorf("%w after %d attempts", ErrExhausted, res.Attempts)
}

// HasValue matches an option whose override for section equals value.
func HasValue(section, value string) func(*option.Option) bool {
	return func(o *option.Option) bool {
		return o != nil && slices.Contains(o.Values, option.Value{Section: section, Value: value})
	}
}

// HasExactly matches an option whose override list equals want, in order.
func HasExactly(want []option.Value) func(*option.Option) bool {
	return func(o *option.Option) bool {
		return o != nil && slices.Equal(o.Values, want)
	}
}

// Unset matches an option with no override for section.
func Unset(section string) func(*option.Option) bool {
	return func(o *option.Option) bool {
		if o == nil {
			return false
		}
		return !slices.ContainsFunc(o.Values, func(v option.Value) bool {
			return v.Section == section
		})
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Interval < 0 {
		p.Interval = 0
	}
	return p
}

func (p Policy) log(ctx context.Context, attempt int, msg string, err error) {
	if p.Logger == nil {
		return
	}
	attrs := []slog.Attr{
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", p.MaxAttempts),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	p.Logger.LogAttrs(ctx, slog.LevelDebug, "poll "+msg, attrs...)
}

func retryable(err error) bool {
	return errors.Is(err, domain.ErrUnavailable)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

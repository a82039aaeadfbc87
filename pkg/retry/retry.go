// Package retry runs operations with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrInvalidPolicy is returned when a policy allows no attempts.
var ErrInvalidPolicy = errors.New("retry: policy must allow at least one attempt")

// Policy describes how often and how patiently an operation is retried.
type Policy struct {
	// Attempts is the total number of calls, the first one included.
	Attempts int
	// BaseDelay is the wait after the first failure.
	BaseDelay time.Duration
	// MaxDelay caps the wait between two calls.
	MaxDelay time.Duration
	// Factor multiplies the wait after every failure.
	Factor float64
	// Retryable decides whether a failure deserves another call.
	// Nil retries every error that is not Permanent.
	Retryable func(error) bool
	// OnRetry is called before each wait.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// SnapshotSave is the policy for persisting a committed snapshot: a few quick
// attempts, so a transient disk or network hiccup does not lose a save.
func SnapshotSave() Policy {
	return Policy{
		Attempts:  3,
		BaseDelay: 50 * time.Millisecond,
		MaxDelay:  500 * time.Millisecond,
		Factor:    2,
	}
}

// Connect is the policy for dialing a database at startup.
func Connect() Policy {
	return Policy{
		Attempts:  5,
		BaseDelay: time.Second,
		MaxDelay:  30 * time.Second,
		Factor:    2,
		Retryable: MatchAny(ConnectErrors()...),
	}
}

// ConnectErrors lists the messages of failures that usually go away while a
// database is still starting.
func ConnectErrors() []string {
	return []string{
		"connection refused",
		"connection reset",
		"connection timed out",
		"i/o timeout",
		"dial tcp",
		"network is unreachable",
		"no connection could be made",
		"server closed the connection",
		"too many connections",
		"database system is starting up",
	}
}

// MatchAny returns a Retryable func that accepts errors whose message contains
// one of patterns, case-insensitively.
func MatchAny(patterns ...string) func(error) bool {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}
	return func(err error) bool {
		msg := strings.ToLower(err.Error())
		for _, p := range lowered {
			if strings.Contains(msg, p) {
				return true
			}
		}
		return false
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err so that Do gives up immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Do calls fn until it succeeds, the policy is exhausted or ctx is done.
// The last error of fn is returned.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	_, err := Value(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if p.Attempts <= 0 {
		return zero, ErrInvalidPolicy
	}

	var err error
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if err != nil {
				return zero, errors.Join(err, ctxErr)
			}
			return zero, ctxErr
		}

		var v T
		v, err = fn(ctx)
		if err == nil {
			return v, nil
		}
		if attempt >= p.Attempts || !p.retryable(err) {
			return zero, err
		}

		wait := jitter(p.backoff(attempt))
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
}

func (p Policy) retryable(err error) bool {
	if IsPermanent(err) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

// backoff returns the wait after the given failed attempt, counted from 1.
func (p Policy) backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	factor := p.Factor
	if factor < 1 {
		factor = 1
	}
	d := float64(p.BaseDelay) * math.Pow(factor, float64(attempt-1))
	if p.MaxDelay > 0 && d > float64(p.MaxDelay) {
		d = float64(p.MaxDelay)
	}
	return time.Duration(d)
}

// jitter spreads d by up to 10% either way.
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	//nolint:gosec // jitter needs no cryptographic randomness
	spread := float64(d) * 0.1 * (rand.Float64()*2 - 1)
	return d + time.Duration(spread)
}

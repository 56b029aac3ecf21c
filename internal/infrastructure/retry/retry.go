// Package retry provides a generic retry loop with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"
)

// Policy holds the retry configuration options.
type Policy struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// RetryIf decides whether an error is worth another attempt.
	// If nil, every non-permanent error is retried.
	RetryIf func(error) bool

	// OnRetry is invoked before sleeping, with the 1-based attempt that
	// just failed and the delay before the next one.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultPolicy mirrors the upstream call budget: two retries, 300ms base,
// doubling up to 2s, no jitter.
var DefaultPolicy = Policy{
	MaxRetries: 2,
	BaseDelay:  300 * time.Millisecond,
	MaxDelay:   2 * time.Second,
	Multiplier: 2.0,
}

// Attempts returns the total number of attempts the policy allows.
func (p Policy) Attempts() int {
	if p.MaxRetries < 0 {
		return 1
	}
	return p.MaxRetries + 1
}

// Backoff returns the delay before retry n (1-based).
func (p Policy) Backoff(n int) time.Duration {
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	delay := float64(p.BaseDelay)
	for i := 1; i < n; i++ {
		delay *= mult
		if p.MaxDelay > 0 && delay >= float64(p.MaxDelay) {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && time.Duration(delay) > p.MaxDelay {
		return p.MaxDelay
	}
	return time.Duration(delay)
}

// Do runs fn until it succeeds, returns a non-retryable error, or the policy
// is exhausted. The last result and error are returned.
func Do[T any](ctx context.Context, p Policy, fn func(attempt int) (T, error)) (T, error) {
	var (
		result  T
		lastErr error
	)

	attempts := p.Attempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return result, lastErr
			}
			return result, err
		}

		result, lastErr = fn(attempt)
		if lastErr == nil {
			return result, nil
		}

		if !p.shouldRetry(lastErr) || attempt == attempts {
			return result, lastErr
		}

		wait := p.Backoff(attempt)
		if p.OnRetry != nil {
			p.OnRetry(attempt, lastErr, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, lastErr
		case <-timer.C:
		}
	}

	return result, lastErr
}

func (p Policy) shouldRetry(err error) bool {
	if IsPermanent(err) {
		return false
	}
	if p.RetryIf != nil {
		return p.RetryIf(err)
	}
	return true
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent (non-retryable).
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// WithRetryIf returns a copy of the policy with the given predicate.
func (p Policy) WithRetryIf(fn func(error) bool) Policy {
	p.RetryIf = fn
	return p
}

// WithOnRetry returns a copy of the policy with the given retry hook.
func (p Policy) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Policy {
	p.OnRetry = fn
	return p
}

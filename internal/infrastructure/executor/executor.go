// Package executor runs upstream calls with a per-call timeout, bounded
// retries and a bounded worker pool.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/tripcompass/trip-info-service/internal/domain"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/logger"
	"github.com/tripcompass/trip-info-service/internal/infrastructure/retry"
)

// Default values for the executor.
const (
	DefaultCallTimeout = 10 * time.Second
	DefaultWorkers     = 6
)

// Config contains configuration options for the executor.
type Config struct {
	CallTimeout time.Duration
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Workers     int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CallTimeout: DefaultCallTimeout,
		MaxRetries:  retry.DefaultPolicy.MaxRetries,
		BaseDelay:   retry.DefaultPolicy.BaseDelay,
		MaxDelay:    retry.DefaultPolicy.MaxDelay,
		Workers:     DefaultWorkers,
	}
}

// Executor is safe for concurrent use. Each attempt holds one worker slot
// while its action runs.
type Executor struct {
	slots   *semaphore.Weighted
	policy  retry.Policy
	timeout time.Duration
	log     *logger.Logger
}

// New creates an Executor. Zero or negative fields of cfg fall back to
// defaults, except MaxRetries where zero means a single attempt.
func New(cfg Config, log *logger.Logger) *Executor {
	def := DefaultConfig()
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = def.CallTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Executor{
		slots: semaphore.NewWeighted(int64(cfg.Workers)),
		policy: retry.Policy{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  cfg.BaseDelay,
			MaxDelay:   cfg.MaxDelay,
			Multiplier: 2.0,
			RetryIf:    domain.IsRetryable,
		},
		timeout: cfg.CallTimeout,
		log:     log,
	}
}

// Policy returns the retry policy in use.
func (ex *Executor) Policy() retry.Policy {
	return ex.policy
}

// CallTimeout returns the per-attempt budget.
func (ex *Executor) CallTimeout() time.Duration {
	return ex.timeout
}

// Action performs one upstream round-trip. It must honor ctx.
type Action[T any] func(ctx context.Context) (T, error)

type outcome[T any] struct {
	value T
	err   error
}

// Execute runs action under the executor's timeout and retry policy.
// Timeouts and upstream errors are retried; anything else is returned
// immediately. After the last attempt the error is either an
// *domain.UpstreamError or wraps domain.ErrTimeout.
func Execute[T any](ctx context.Context, ex *Executor, operation string, action Action[T]) (T, error) {
	log := logger.FromContext(ctx, ex.log).WithOperation(operation)

	attempts := 0
	policy := ex.policy.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("upstream call failed, retrying")
	})

	start := time.Now()
	result, err := retry.Do(ctx, policy, func(attempt int) (T, error) {
		attempts = attempt
		return runAttempt(ctx, ex, operation, action)
	})
	if err == nil {
		log.Debug().
			Int("attempt", attempts).
			Dur("elapsed", time.Since(start)).
			Msg("upstream call succeeded")
		return result, nil
	}

	switch {
	case ctx.Err() != nil:
		log.Debug().Err(err).Int("attempt", attempts).Msg("upstream call abandoned")
	case domain.IsRetryable(err):
		log.Error().Err(err).Int("attempt", attempts).Msg("upstream call failed after retries")
	default:
		log.Warn().Err(err).Int("attempt", attempts).Msg("upstream call failed, not retryable")
	}
	return result, err
}

// runAttempt races one invocation of action against the per-call timeout.
func runAttempt[T any](ctx context.Context, ex *Executor, operation string, action Action[T]) (T, error) {
	var zero T

	if err := ex.slots.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	attemptCtx, cancel := context.WithTimeout(ctx, ex.timeout)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		defer ex.slots.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: retry.NewPermanent(fmt.Errorf("%s: panic: %v", operation, r))}
			}
		}()

		v, err := action(attemptCtx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return zero, timeoutError(operation, ex.timeout)
		}
		return out.value, out.err
	case <-attemptCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, timeoutError(operation, ex.timeout)
	}
}

func timeoutError(operation string, after time.Duration) error {
	return fmt.Errorf("%s: %w after %s", operation, domain.ErrTimeout, after)
}

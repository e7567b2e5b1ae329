// Package retry provides exponential backoff retry for transient failures,
// such as symbol-server fetches timing out or a debug target being briefly
// unreadable.
//
// The backoff duration follows InitialBackoff * 2^(attempt-1), optionally
// capped by MaxBackoff and spread with jitter. All waits respect context
// cancellation.
package retry

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Config defines the retry behavior for exponential backoff operations.
// The zero value is not usable; MaxRetries and InitialBackoff must be set.
type Config struct {
	// MaxRetries is the maximum number of attempts. Must be greater than 0.
	MaxRetries int

	// InitialBackoff is the base backoff duration. Each retry multiplies
	// this by 2^(attempt-1). Must be greater than 0.
	InitialBackoff time.Duration

	// MaxBackoff caps the backoff duration. Zero means no cap.
	MaxBackoff time.Duration

	// Jitter adds randomness to backoff (0.0 to 1.0). The jitter amount
	// grows linearly with the attempt number. Zero means no jitter.
	Jitter float64
}

// ShouldRetryFunc reports whether an error should trigger another attempt.
// A nil ShouldRetryFunc retries every error.
type ShouldRetryFunc func(error) bool

// Do executes fn up to cfg.MaxRetries times with exponential backoff.
//
// If fn returns nil, Do returns nil immediately. If shouldRetry returns
// false for an error, Do returns that error without further attempts. When
// all attempts are exhausted, Do returns an error wrapping the last failure.
// If the context is canceled during a backoff wait, Do returns the context
// error immediately.
func Do(ctx context.Context, cfg Config, fn func() error, shouldRetry ShouldRetryFunc) error {
	var lastErr error

	for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoffFor(cfg, attempt)):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}

		if shouldRetry != nil && !shouldRetry(err) {
			return err
		}

		lastErr = err
	}

	return fmt.Errorf("failed after %d retries: %w", cfg.MaxRetries, lastErr)
}

// backoffFor computes the backoff duration for a given attempt:
// exponential growth, then the MaxBackoff cap, then jitter.
func backoffFor(cfg Config, attempt int) time.Duration {
	multiplier := math.Pow(2, float64(attempt-1))
	backoff := time.Duration(multiplier * float64(cfg.InitialBackoff))

	if cfg.MaxBackoff > 0 && backoff > cfg.MaxBackoff {
		backoff = cfg.MaxBackoff
	}

	if cfg.Jitter > 0 {
		jitterAmount := float64(backoff) * cfg.Jitter * float64(attempt) / float64(cfg.MaxRetries)
		backoff += time.Duration(jitterAmount)
	}

	return backoff
}

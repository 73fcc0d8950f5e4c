// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"math/rand"
	"time"
)

// RetryConfig holds retry behavior.
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	Jitter          bool
	OnRetry         func(attempt int, err error)
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		Jitter:          true,
	}
}

// VerifierRetryConfig returns the retry policy used for verification backend
// calls. Retries are short because the caller degrades to a conservative
// fallback rather than blocking the pipeline.
func VerifierRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      2,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
		Jitter:          true,
	}
}

// RetryableOperation is an operation eligible for retry.
type RetryableOperation func(ctx context.Context) error

// RetryWithBackoff executes the operation with exponential backoff. The delay
// before attempt n is InitialInterval * Multiplier^(n-1), capped at
// MaxInterval, with up to 25% jitter when enabled. Non-retryable errors stop
// immediately.
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation RetryableOperation) error {
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := float64(config.InitialInterval)
			for i := 1; i < attempt; i++ {
				delay *= config.Multiplier
			}
			if config.Jitter {
				delay += delay * 0.25 * rand.Float64()
			}
			wait := time.Duration(delay)
			if config.MaxInterval > 0 && wait > config.MaxInterval {
				wait = config.MaxInterval
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			if config.OnRetry != nil {
				config.OnRetry(attempt, lastErr)
			}
		}

		err := operation(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !ClassifyError(err).IsRetryable() {
			return err
		}
	}
	return lastErr
}

// RetryWithResult retries a function that returns a value.
func RetryWithResult[T any](ctx context.Context, config RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := RetryWithBackoff(ctx, config, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}

// RetryWithCircuitBreaker combines retry with circuit breaker protection.
func RetryWithCircuitBreaker(ctx context.Context, config RetryConfig, cb *CircuitBreaker, operation RetryableOperation) error {
	return RetryWithBackoff(ctx, config, func(ctx context.Context) error {
		return cb.Execute(ctx, operation)
	})
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"testing"
	"time"
)

func fastRetry(max int) RetryConfig {
	return RetryConfig{
		MaxRetries:      max,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func TestRetryWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), fastRetry(3), func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoff_RetriesTransient(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), fastRetry(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return NewTransientError("temporary failure", nil)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_StopsOnPermanent(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), fastRetry(5), func(ctx context.Context) error {
		calls++
		return NewPermanentError("bad api key", nil)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoff_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, fastRetry(3), func(ctx context.Context) error {
		return NewTransientError("always fails", nil)
	})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRetryWithResult(t *testing.T) {
	calls := 0
	got, err := RetryWithResult(context.Background(), fastRetry(3), func(ctx context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", NewTransientError("flaky", nil)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("result = %q", got)
	}
}

func TestRetryWithCircuitBreaker_RetriesThroughBreaker(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("test")
	cfg.FailureThreshold = 10
	cb := NewCircuitBreaker(cfg)

	calls := 0
	err := RetryWithCircuitBreaker(context.Background(), fastRetry(3), cb, func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return NewTransientError("flaky", nil)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	if cb.State() != StateClosed {
		t.Errorf("state = %v, want CLOSED", cb.State())
	}
}

func TestRetryWithCircuitBreaker_OpenBreakerShortCircuits(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("test")
	cfg.FailureThreshold = 1
	cfg.Timeout = time.Hour
	cb := NewCircuitBreaker(cfg)

	_ = cb.Execute(context.Background(), func(ctx context.Context) error {
		return NewTransientError("down", nil)
	})
	if cb.State() != StateOpen {
		t.Fatalf("state = %v, want OPEN", cb.State())
	}

	calls := 0
	err := RetryWithCircuitBreaker(context.Background(), fastRetry(2), cb, func(ctx context.Context) error {
		calls++
		return nil
	})
	if err == nil {
		t.Fatal("expected circuit breaker error")
	}
	if calls != 0 {
		t.Errorf("operation ran %d times behind an open breaker", calls)
	}
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantType  ErrorType
		retryable bool
	}{
		{"rate limit", errString("HTTP 429 too many requests"), ErrorTypeRateLimit, true},
		{"service down", errString("HTTP 503 service unavailable"), ErrorTypeServiceUnavailable, true},
		{"auth", errString("401 unauthorized"), ErrorTypePermanent, false},
		{"timeout", errString("context deadline exceeded"), ErrorTypeTimeout, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ClassifyError(tc.err)
			if c.Type != tc.wantType {
				t.Errorf("type = %v, want %v", c.Type, tc.wantType)
			}
			if c.Retryable != tc.retryable {
				t.Errorf("retryable = %v, want %v", c.Retryable, tc.retryable)
			}
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("test")
	cfg.FailureThreshold = 2
	cb := NewCircuitBreaker(cfg)

	fail := func(ctx context.Context) error { return NewTransientError("down", nil) }

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)

	if cb.State() != StateOpen {
		t.Fatalf("state = %v, want OPEN", cb.State())
	}

	err := cb.Execute(context.Background(), func(ctx context.Context) error { return nil })
	var cbErr *CircuitBreakerError
	if !asCircuitBreakerError(err, &cbErr) {
		t.Errorf("expected CircuitBreakerError, got %v", err)
	}
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("test")
	cfg.FailureThreshold = 1
	cfg.SuccessThreshold = 1
	cfg.Timeout = time.Millisecond
	cb := NewCircuitBreaker(cfg)

	_ = cb.Execute(context.Background(), func(ctx context.Context) error {
		return NewTransientError("down", nil)
	})
	if cb.State() != StateOpen {
		t.Fatalf("state = %v, want OPEN", cb.State())
	}

	time.Sleep(5 * time.Millisecond)

	if err := cb.Execute(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("probe call failed: %v", err)
	}
	if cb.State() != StateClosed {
		t.Errorf("state = %v, want CLOSED", cb.State())
	}
}

func asCircuitBreakerError(err error, target **CircuitBreakerError) bool {
	if err == nil {
		return false
	}
	cbErr, ok := err.(*CircuitBreakerError)
	if ok {
		*target = cbErr
	}
	return ok
}

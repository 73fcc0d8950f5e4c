// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// CircuitBreakerState is the breaker's current mode.
type CircuitBreakerState int

const (
	StateClosed   CircuitBreakerState = iota // normal operation
	StateOpen                                // failing fast
	StateHalfOpen                            // probing for recovery
)

func (s CircuitBreakerState) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// CircuitBreakerError is returned when the breaker rejects a call.
type CircuitBreakerError struct {
	Name    string
	State   CircuitBreakerState
	Message string
}

func (e *CircuitBreakerError) Error() string {
	return e.Message
}

// CircuitBreakerConfig holds breaker tuning.
type CircuitBreakerConfig struct {
	Name             string
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
	MaxRequests      int
	IsFailure        func(error) bool
	OnStateChange    func(name string, from, to CircuitBreakerState)
}

// DefaultCircuitBreakerConfig returns sensible defaults. Only retryable
// errors count as failures; an auth error should not trip the breaker.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		MaxRequests:      3,
		IsFailure: func(err error) bool {
			if err == nil {
				return false
			}
			return ClassifyError(err).Retryable
		},
	}
}

// CircuitBreaker fails fast when a backend keeps failing, then probes for
// recovery after a cool-down.
type CircuitBreaker struct {
	config CircuitBreakerConfig

	mu              sync.Mutex
	state           CircuitBreakerState
	failureCount    int
	successCount    int
	requestCount    int
	lastFailureTime time.Time
}

// NewCircuitBreaker creates a breaker in the closed state.
func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{config: config, state: StateClosed}
}

// State returns the current state.
func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Execute runs fn with breaker protection.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.afterRequest(err)
	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return nil
	case StateOpen:
		if time.Since(cb.lastFailureTime) >= cb.config.Timeout {
			cb.setState(StateHalfOpen)
			cb.requestCount = 1
			return nil
		}
		return &CircuitBreakerError{
			Name:    cb.config.Name,
			State:   StateOpen,
			Message: fmt.Sprintf("circuit breaker %q is open after %d failures", cb.config.Name, cb.failureCount),
		}
	case StateHalfOpen:
		if cb.requestCount >= cb.config.MaxRequests {
			return &CircuitBreakerError{
				Name:    cb.config.Name,
				State:   StateHalfOpen,
				Message: fmt.Sprintf("circuit breaker %q is half-open at max probes (%d)", cb.config.Name, cb.config.MaxRequests),
			}
		}
		cb.requestCount++
		return nil
	}
	return fmt.Errorf("unknown circuit breaker state: %v", cb.state)
}

func (cb *CircuitBreaker) afterRequest(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	isFailure := cb.config.IsFailure
	if isFailure == nil {
		isFailure = func(e error) bool { return e != nil }
	}

	if isFailure(err) {
		cb.failureCount++
		cb.successCount = 0
		cb.lastFailureTime = time.Now()

		switch cb.state {
		case StateClosed:
			if cb.failureCount >= cb.config.FailureThreshold {
				cb.setState(StateOpen)
			}
		case StateHalfOpen:
			cb.setState(StateOpen)
		}
		return
	}

	switch cb.state {
	case StateClosed:
		cb.failureCount = 0
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.setState(StateClosed)
			cb.failureCount = 0
			cb.successCount = 0
		}
	}
}

func (cb *CircuitBreaker) setState(to CircuitBreakerState) {
	from := cb.state
	if from == to {
		return
	}
	cb.state = to
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

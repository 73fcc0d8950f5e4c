// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resilience provides error classification, retry with backoff, and
// a circuit breaker for calls to external verification backends.
package resilience

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// ErrorType drives the handling strategy for a failed backend call.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeTransient
	ErrorTypePermanent
	ErrorTypeTimeout
	ErrorTypeRateLimit
	ErrorTypeServiceUnavailable
	ErrorTypeInvalidInput
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeUnknown:
		return "Unknown"
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypePermanent:
		return "Permanent"
	case ErrorTypeTimeout:
		return "Timeout"
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeServiceUnavailable:
		return "ServiceUnavailable"
	case ErrorTypeInvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// ClassifiedError wraps an error with its type and retry eligibility.
type ClassifiedError struct {
	Original  error
	Type      ErrorType
	Message   string
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

// IsRetryable reports whether the operation should be retried.
func (e *ClassifiedError) IsRetryable() bool {
	return e.Retryable
}

// ClassifyError categorizes an error from a verification backend call.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	if isTimeoutError(err) {
		return &ClassifiedError{Original: err, Type: ErrorTypeTimeout, Message: fmt.Sprintf("timeout: %v", err), Retryable: true}
	}
	if isNetworkError(err) {
		return &ClassifiedError{Original: err, Type: ErrorTypeTransient, Message: fmt.Sprintf("network error: %v", err), Retryable: true}
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "429") || strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "too many requests"):
		return &ClassifiedError{Original: err, Type: ErrorTypeRateLimit, Message: fmt.Sprintf("rate limited: %v", err), Retryable: true}
	case strings.Contains(errStr, "503") || strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "500") || strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "502") || strings.Contains(errStr, "bad gateway"):
		return &ClassifiedError{Original: err, Type: ErrorTypeServiceUnavailable, Message: fmt.Sprintf("service unavailable: %v", err), Retryable: true}
	case strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "unauthorized") || strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "invalid api key"):
		return &ClassifiedError{Original: err, Type: ErrorTypePermanent, Message: fmt.Sprintf("authentication error: %v", err), Retryable: false}
	case strings.Contains(errStr, "400") || strings.Contains(errStr, "invalid") || strings.Contains(errStr, "malformed"):
		return &ClassifiedError{Original: err, Type: ErrorTypeInvalidInput, Message: fmt.Sprintf("invalid input: %v", err), Retryable: false}
	}

	return &ClassifiedError{Original: err, Type: ErrorTypeUnknown, Message: fmt.Sprintf("unknown error: %v", err), Retryable: false}
}

func isNetworkError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// NewTransientError creates a retryable error.
func NewTransientError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypeTransient, Message: message, Retryable: true}
}

// NewPermanentError creates a non-retryable error.
func NewPermanentError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypePermanent, Message: message, Retryable: false}
}

// IsRetryable reports whether an error should be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).IsRetryable()
}

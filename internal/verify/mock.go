// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"context"
	"encoding/json"
	"sync"
)

// MockBackend returns a canned judgement without any network call. Useful
// for tests and for running the pipeline with verification wired but no
// model available.
type MockBackend struct {
	DefaultIsSensitive bool
	DefaultConfidence  float64

	mu      sync.Mutex
	calls   int
	prompts []string
}

// NewMockBackend returns a mock that judges everything sensitive at 0.8.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		DefaultIsSensitive: true,
		DefaultConfidence:  0.8,
	}
}

func (b *MockBackend) Name() string { return "mock" }

// Call records the prompt and returns the canned JSON judgement.
func (b *MockBackend) Call(ctx context.Context, prompt string) (string, error) {
	b.mu.Lock()
	b.calls++
	b.prompts = append(b.prompts, prompt)
	b.mu.Unlock()

	payload, err := json.Marshal(map[string]any{
		"is_sensitive": b.DefaultIsSensitive,
		"confidence":   b.DefaultConfidence,
		"reason":       "模拟判断结果",
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// Calls returns how many times the backend was invoked.
func (b *MockBackend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// Prompts returns a copy of the prompts seen so far.
func (b *MockBackend) Prompts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.prompts))
	copy(out, b.prompts)
	return out
}

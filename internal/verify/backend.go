// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"context"
	"fmt"
)

// systemPrompt pins the model to JSON-only output.
const systemPrompt = "你是一个敏感信息识别专家，只输出JSON格式的判断结果。"

// Backend sends a verification prompt to a model and returns the raw
// response text.
type Backend interface {
	Name() string
	Call(ctx context.Context, prompt string) (string, error)
}

// BackendConfig selects and configures a verification backend.
type BackendConfig struct {
	Mode    string `yaml:"mode" json:"mode"`
	APIKey  string `yaml:"api_key" json:"api_key"`
	BaseURL string `yaml:"base_url" json:"base_url"`
	Model   string `yaml:"model" json:"model"`

	// Mock behavior, applied when the mock backend is selected. Nil keeps
	// the mock's defaults; each field overrides independently.
	MockIsSensitive *bool    `yaml:"mock_is_sensitive" json:"mock_is_sensitive"`
	MockConfidence  *float64 `yaml:"mock_confidence" json:"mock_confidence"`
}

// NewBackend builds the backend named by cfg.Mode. The mode is fixed at
// construction; there is no per-call fallback between backends.
func NewBackend(cfg BackendConfig) (Backend, error) {
	switch cfg.Mode {
	case "api":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("api backend requires an api key")
		}
		return NewAPIBackend(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case "local":
		return NewLocalBackend(cfg.BaseURL, cfg.Model), nil
	case "mock", "":
		mock := NewMockBackend()
		if cfg.MockIsSensitive != nil {
			mock.DefaultIsSensitive = *cfg.MockIsSensitive
		}
		if cfg.MockConfidence != nil {
			mock.DefaultConfidence = *cfg.MockConfidence
		}
		return mock, nil
	default:
		return nil, fmt.Errorf("unknown verification backend mode: %q", cfg.Mode)
	}
}

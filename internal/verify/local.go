// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultLocalBaseURL = "http://localhost:11434"
	defaultLocalModel   = "qwen2.5:7b"
)

// LocalBackend calls an Ollama-style local generate endpoint.
type LocalBackend struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewLocalBackend builds a local backend. Empty baseURL and model fall back
// to the defaults.
func NewLocalBackend(baseURL, model string) *LocalBackend {
	if baseURL == "" {
		baseURL = defaultLocalBaseURL
	}
	if model == "" {
		model = defaultLocalModel
	}
	return &LocalBackend{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Model:   model,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (b *LocalBackend) Name() string { return "local" }

type generateRequest struct {
	Model   string         `json:"model"`
	System  string         `json:"system"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Call sends the prompt to the local model and returns its response text.
func (b *LocalBackend) Call(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Model:   b.Model,
		System:  systemPrompt,
		Prompt:  prompt,
		Stream:  false,
		Options: map[string]any{"temperature": 0.1},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling local model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading local model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local model returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decoding local model response: %w", err)
	}
	return parsed.Response, nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides timing and operation logging for the
// analysis pipeline.
package observability

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// ObservabilityLevel controls how much the observer emits.
type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// StandardObserver implements observability for all pipeline components.
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
}

// NewStandardObserver creates an observer writing to the given writer.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// FromEnv creates an observer on stderr, with the level taken from the
// MINGJING_DEBUG environment variable (empty is off, "metrics" is metrics,
// anything else is debug).
func FromEnv() *StandardObserver {
	switch os.Getenv("MINGJING_DEBUG") {
	case "":
		return NewStandardObserver(ObservabilityOff, io.Discard)
	case "metrics":
		return NewStandardObserver(ObservabilityMetrics, os.Stderr)
	default:
		return NewStandardObserver(ObservabilityDebug, os.Stderr)
	}
}

// Level returns the configured level.
func (o *StandardObserver) Level() ObservabilityLevel {
	return o.level
}

// StartTiming returns a function to complete timing for one operation.
// Source identifies the input being processed, such as a file path.
func (o *StandardObserver) StartTiming(component, operation, source string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			Source:     source,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes one operation record. Records are emitted as JSON
// lines in debug mode only.
func (o *StandardObserver) LogOperation(data OperationData) {
	if o.level == ObservabilityOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData is one observed operation.
type OperationData struct {
	Component     string                 `json:"component"`
	Operation     string                 `json:"operation"`
	RequestID     string                 `json:"request_id"`
	Source        string                 `json:"source,omitempty"`
	DurationMs    int64                  `json:"duration_ms,omitempty"`
	Success       bool                   `json:"success"`
	Error         string                 `json:"error,omitempty"`
	ContentLength int                    `json:"content_length,omitempty"`
	MatchCount    int                    `json:"match_count,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

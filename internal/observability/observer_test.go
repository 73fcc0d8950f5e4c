// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStartTiming_DebugEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	obs := NewStandardObserver(ObservabilityDebug, &buf)

	done := obs.StartTiming("recognizer", "analyze", "inline")
	done(true, map[string]interface{}{"matches": 3})

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a JSON record")
	}

	var data OperationData
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("invalid JSON record: %v", err)
	}
	if data.Component != "recognizer" || data.Operation != "analyze" {
		t.Errorf("record = %+v", data)
	}
	if !data.Success {
		t.Error("success flag lost")
	}
	if !strings.HasPrefix(data.RequestID, "req-") {
		t.Errorf("request id = %q", data.RequestID)
	}
}

func TestStartTiming_OffEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	obs := NewStandardObserver(ObservabilityOff, &buf)

	done := obs.StartTiming("verify", "call", "")
	done(false, nil)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestStartTiming_MetricsEmitsNoJSON(t *testing.T) {
	var buf bytes.Buffer
	obs := NewStandardObserver(ObservabilityMetrics, &buf)

	obs.StartTiming("curator", "resolve", "")(true, nil)

	if buf.Len() != 0 {
		t.Errorf("metrics level should not write JSON, got %q", buf.String())
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"mingjing-scan/internal/formatters"
	"mingjing-scan/internal/report"
	"mingjing-scan/internal/validators"
)

func TestFormat_Findings(t *testing.T) {
	r := report.New([]report.Finding{
		{EntityType: validators.EntityPhone, Text: "13812345678", MaskedText: "138****5678", Start: 6, End: 17, Score: 1.0},
	}, report.Statistics{})

	f := NewFormatter()
	out, err := f.Format(r, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(out, "13812345678") {
		t.Errorf("raw text missing: %s", out)
	}
	if !strings.Contains(out, validators.EntityPhone) {
		t.Errorf("entity type missing: %s", out)
	}
	if !strings.Contains(out, "风险评分") {
		t.Errorf("risk line missing: %s", out)
	}
}

func TestFormat_MaskedOutput(t *testing.T) {
	r := report.New([]report.Finding{
		{EntityType: validators.EntityPhone, Text: "13812345678", MaskedText: "138****5678", Score: 1.0},
	}, report.Statistics{})

	f := NewFormatter()
	out, err := f.Format(r, formatters.FormatterOptions{NoColor: true, ShowMasked: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(out, "138****5678") {
		t.Errorf("masked text missing: %s", out)
	}
	if strings.Contains(out, "13812345678") {
		t.Errorf("raw value leaked in masked output: %s", out)
	}
}

func TestFormat_Empty(t *testing.T) {
	r := report.New(nil, report.Statistics{})

	f := NewFormatter()
	out, err := f.Format(r, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "未检出敏感信息") {
		t.Errorf("empty message missing: %s", out)
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"math"
	"testing"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/nlpscore"
	"mingjing-scan/internal/recognizers"
	"mingjing-scan/internal/validators"
	"mingjing-scan/internal/verify"
)

func newTestRegistry(t *testing.T) *recognizers.Registry {
	t.Helper()
	reg, err := recognizers.NewRegistry("")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestAnalyzeText_EndToEnd(t *testing.T) {
	a := NewAnalyzer(Options{Registry: newTestRegistry(t), Threshold: 0})

	text := "用户张三，身份证号110101199003074514，手机13812345678。"
	results, err := a.AnalyzeText(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	if results[0].EntityType != validators.EntityIDCard || results[0].Score != 1.0 {
		t.Errorf("first result = %s score %v, want CN_ID_CARD 1.0", results[0].EntityType, results[0].Score)
	}
	if results[0].Text != "110101199003074514" {
		t.Errorf("first text = %q", results[0].Text)
	}
	if results[1].EntityType != validators.EntityPhone || results[1].Score != 1.0 {
		t.Errorf("second result = %s score %v, want CN_PHONE 1.0", results[1].EntityType, results[1].Score)
	}
	if results[1].Text != "13812345678" {
		t.Errorf("second text = %q", results[1].Text)
	}
}

func TestAnalyzeText_SameSpanKeepsHighestScore(t *testing.T) {
	a := NewAnalyzer(Options{Registry: newTestRegistry(t), Threshold: 0.5})

	// The altered check digit keeps the verdict uncertain, so all three ID
	// card patterns match the same span at their base scores plus the
	// context bonus: 0.6, 0.5 and 0.35.
	text := "身份证号110101199003074515"
	results, err := a.AnalyzeText(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(results), results)
	}
	r := results[0]
	if r.EntityType != validators.EntityIDCard {
		t.Fatalf("entity type = %s, want CN_ID_CARD", r.EntityType)
	}
	if math.Abs(r.Score-0.6) > 1e-9 {
		t.Errorf("score = %v, want 0.6 from the strictest pattern", r.Score)
	}
	if r.Pattern != "CN ID Card Standard" {
		t.Errorf("pattern = %q, want the standard pattern to win the span", r.Pattern)
	}
}

func TestAnalyzeText_ChecksFilter(t *testing.T) {
	a := NewAnalyzer(Options{
		Registry: newTestRegistry(t),
		Checks:   []string{validators.EntityPhone},
	})

	text := "身份证号110101199003074514，手机13812345678。"
	results, err := a.AnalyzeText(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	for _, r := range results {
		if r.EntityType != validators.EntityPhone {
			t.Errorf("unexpected entity type %s with checks filter", r.EntityType)
		}
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

func TestAnalyzeText_NERSpans(t *testing.T) {
	a := NewAnalyzer(Options{Registry: newTestRegistry(t), Threshold: 0})

	text := "联系人张伟民先生"
	spans := []nlpscore.Span{
		{Label: "PER", Start: 9, End: 18, Score: 0},
	}
	results, err := a.AnalyzeText(context.Background(), text, spans)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(results), results)
	}
	if results[0].EntityType != validators.EntityPerson || results[0].Text != "张伟民" {
		t.Errorf("result = %+v", results[0])
	}
}

func TestAnalyzeText_VerifierDropsNonSensitive(t *testing.T) {
	mock := verify.NewMockBackend()
	mock.DefaultIsSensitive = false
	v := verify.NewVerifier(mock)

	a := NewAnalyzer(Options{
		Registry: newTestRegistry(t),
		Verifier: v,
	})

	// Without a nearby context word the postal pattern scores 0.4, below
	// the escalation threshold.
	text := "编号100010，电话13812345678"
	results, err := a.AnalyzeText(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	for _, r := range results {
		if r.EntityType == validators.EntityPostalCode {
			t.Errorf("non-sensitive verdict should drop the postal match: %+v", r)
		}
	}
	if len(results) != 1 || results[0].EntityType != validators.EntityPhone {
		t.Errorf("results = %+v, want only the phone", results)
	}
	if mock.Calls() == 0 {
		t.Error("verifier was never consulted")
	}
}

func TestAnalyzeText_VerifierAnnotatesKeptMatch(t *testing.T) {
	mock := verify.NewMockBackend()
	v := verify.NewVerifier(mock)

	a := NewAnalyzer(Options{
		Registry: newTestRegistry(t),
		Verifier: v,
	})

	text := "编号100010"
	results, err := a.AnalyzeText(context.Background(), text, nil)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(results), results)
	}
	r := results[0]
	if !r.Verified {
		t.Error("escalated match not flagged as verified")
	}
	if r.Score != 0.8 {
		t.Errorf("score = %v, want verifier confidence 0.8", r.Score)
	}
	if r.Reason == "" {
		t.Error("verification reason missing")
	}
}

func TestAnalyzeChunks_TagsSource(t *testing.T) {
	a := NewAnalyzer(Options{Registry: newTestRegistry(t), Threshold: 0})

	chunks := []detector.Chunk{
		{Text: "手机13812345678", Source: "a.txt"},
		{Text: "无敏感内容", Source: "b.txt"},
	}
	results, err := a.AnalyzeChunks(context.Background(), chunks)
	if err != nil {
		t.Fatalf("AnalyzeChunks: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Source != "a.txt" {
		t.Errorf("source = %q, want a.txt", results[0].Source)
	}
}

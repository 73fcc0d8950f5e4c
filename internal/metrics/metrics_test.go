// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestObserveAnalyze(t *testing.T) {
	m := New("mingjing")
	m.ObserveAnalyze(10*time.Millisecond, []string{"CN_PHONE", "CN_PHONE", "CN_ID_CARD"})

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]bool{}
	for _, fam := range families {
		found[fam.GetName()] = true
		if fam.GetName() == "mingjing_entities_found_total" {
			total := 0.0
			for _, metric := range fam.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
			if total != 3 {
				t.Errorf("entities_found_total = %v, want 3", total)
			}
		}
	}
	for _, name := range []string{"mingjing_texts_analyzed_total", "mingjing_entities_found_total", "mingjing_analyze_duration_seconds"} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestObserveVerify_Outcomes(t *testing.T) {
	m := New("mingjing")
	m.ObserveVerify("mock", time.Second, nil)
	m.ObserveVerify("mock", time.Second, errors.New("boom"))

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != "mingjing_verify_calls_total" {
			continue
		}
		if len(fam.GetMetric()) != 2 {
			t.Errorf("got %d label sets, want 2", len(fam.GetMetric()))
		}
		return
	}
	t.Fatal("verify_calls_total not found")
}

func TestIsolatedRegistries(t *testing.T) {
	a := New("mingjing")
	b := New("mingjing")
	a.TextsAnalyzed.Inc()

	families, err := b.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != "mingjing_texts_analyzed_total" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			if metric.GetCounter().GetValue() != 0 {
				t.Error("registries are not isolated")
			}
		}
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires recognizers, NLP scoring, verification, and curation
// into the analysis pipeline.
package core

import (
	"context"
	"strings"
	"time"

	"mingjing-scan/internal/curator"
	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/metrics"
	"mingjing-scan/internal/nlpscore"
	"mingjing-scan/internal/observability"
	"mingjing-scan/internal/recognizers"
	"mingjing-scan/internal/verify"
)

// Analyzer runs text through the detection pipeline: pattern recognizers
// and NLP span scoring, optional verification of low-confidence matches,
// then curation.
type Analyzer struct {
	registry *recognizers.Registry
	scorer   *nlpscore.Scorer
	curator  *curator.Curator
	verifier *verify.Verifier
	observer *observability.StandardObserver
	metrics  *metrics.Metrics
	checks   map[string]struct{}
}

// Options configures an analyzer. Registry is required; everything else is
// optional.
type Options struct {
	Registry *recognizers.Registry
	Scorer   *nlpscore.Scorer
	// Threshold is the minimum final score a match needs to be reported.
	Threshold float64
	// Verifier escalates low-confidence matches when set.
	Verifier *verify.Verifier
	Observer *observability.StandardObserver
	Metrics  *metrics.Metrics
	// Checks restricts output to the named entity types. "all", empty, or
	// nil means every type.
	Checks []string
}

// NewAnalyzer builds the pipeline from options.
func NewAnalyzer(opts Options) *Analyzer {
	a := &Analyzer{
		registry: opts.Registry,
		scorer:   opts.Scorer,
		curator:  curator.New(opts.Threshold),
		verifier: opts.Verifier,
		observer: opts.Observer,
		metrics:  opts.Metrics,
	}
	if a.scorer == nil {
		a.scorer = nlpscore.NewScorer()
	}

	for _, check := range opts.Checks {
		check = strings.TrimSpace(check)
		if check == "" {
			continue
		}
		if strings.EqualFold(check, "all") {
			a.checks = nil
			break
		}
		if a.checks == nil {
			a.checks = make(map[string]struct{})
		}
		a.checks[strings.ToUpper(check)] = struct{}{}
	}
	return a
}

// AnalyzeText runs the full pipeline over one text. nerSpans carries spans
// from an external NER model; pass nil when none is wired. The returned
// results are curated and sorted by start offset.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string, nerSpans []nlpscore.Span) ([]detector.ResolvedResult, error) {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("analyzer", "analyze_text", "")
	}

	var raw []detector.Match
	for _, rec := range a.registry.Enabled() {
		if !a.wantType(rec.EntityType) {
			continue
		}
		raw = append(raw, rec.Analyze(text)...)
	}
	for _, m := range a.scorer.Score(text, nerSpans) {
		if a.wantType(m.EntityType) {
			raw = append(raw, m)
		}
	}
	raw = dedupeMatches(raw)

	results := make([]detector.ResolvedResult, 0, len(raw))
	if a.verifier != nil {
		for _, v := range a.verifier.VerifyResults(ctx, text, raw) {
			r := detector.ResolvedResult{Match: v.Match}
			if v.Verification != nil {
				r.Verified = true
				r.Reason = v.Verification.Reason
				r.Score = v.Verification.FinalScore
				if !v.Verification.IsSensitive {
					continue
				}
			}
			results = append(results, r)
		}
	} else {
		for _, m := range raw {
			results = append(results, detector.ResolvedResult{Match: m})
		}
	}

	curated := a.curate(results)

	if a.metrics != nil {
		types := make([]string, 0, len(curated))
		for _, r := range curated {
			types = append(types, r.EntityType)
		}
		a.metrics.ObserveAnalyze(time.Since(start), types)
	}
	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"content_length": len(text),
			"match_count":    len(curated),
		})
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return curated, nil
}

// AnalyzeChunks analyzes each chunk and tags results with the chunk source.
func (a *Analyzer) AnalyzeChunks(ctx context.Context, chunks []detector.Chunk) ([]detector.ResolvedResult, error) {
	var out []detector.ResolvedResult
	for _, chunk := range chunks {
		results, err := a.AnalyzeText(ctx, chunk.Text, nil)
		if err != nil {
			return nil, err
		}
		for i := range results {
			results[i].Source = chunk.Source
		}
		out = append(out, results...)
	}
	return out, nil
}

// curate applies threshold, false-positive, and overlap filtering while
// keeping the verification annotations attached.
func (a *Analyzer) curate(results []detector.ResolvedResult) []detector.ResolvedResult {
	matches := make([]detector.Match, len(results))
	byKey := make(map[matchKey]detector.ResolvedResult, len(results))
	for i, r := range results {
		matches[i] = r.Match
		byKey[matchKey{r.Start, r.End, r.EntityType}] = r
	}

	kept := a.curator.Curate(matches)
	out := make([]detector.ResolvedResult, 0, len(kept))
	for _, m := range kept {
		out = append(out, byKey[matchKey{m.Start, m.End, m.EntityType}])
	}
	return out
}

type matchKey struct {
	start, end int
	entityType string
}

// dedupeMatches collapses matches covering the same span with the same entity
// type. A recognizer's overlapping patterns produce these at different base
// scores; the highest one wins so the threshold filter and the verifier see
// each span exactly once.
func dedupeMatches(matches []detector.Match) []detector.Match {
	index := make(map[matchKey]int, len(matches))
	out := make([]detector.Match, 0, len(matches))
	for _, m := range matches {
		k := matchKey{m.Start, m.End, m.EntityType}
		if i, ok := index[k]; ok {
			if m.Score > out[i].Score {
				out[i] = m
			}
			continue
		}
		index[k] = len(out)
		out = append(out, m)
	}
	return out
}

func (a *Analyzer) wantType(entityType string) bool {
	if a.checks == nil {
		return true
	}
	_, ok := a.checks[entityType]
	return ok
}

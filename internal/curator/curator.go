// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package curator filters and deduplicates raw detection results before
// reporting.
package curator

import (
	"sort"
	"strings"
	"unicode/utf8"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators"
)

// personDenySet lists PERSON spans that are product names, token prefixes,
// or bare surnames rather than real names. Checked lowercase.
var personDenySet = map[string]struct{}{
	"github": {}, "slack": {}, "docker": {}, "redis": {}, "mysql": {},
	"nginx": {}, "apache": {}, "linux": {}, "windows": {}, "macos": {},
	"python": {}, "java": {}, "golang": {}, "rust": {}, "kubernetes": {},
	"jenkins": {}, "gitlab": {}, "bitbucket": {}, "aws": {}, "azure": {},
	"gcp": {}, "ghp": {}, "gho": {}, "ghs": {}, "ghu": {}, "xoxb": {}, "xoxp": {},
	"赵": {}, "钱": {}, "孙": {}, "李": {}, "周": {}, "吴": {}, "郑": {},
	"王": {}, "冯": {}, "陈": {},
}

// Curator drops low-scoring, false-positive, and overlapping matches.
type Curator struct {
	// Threshold is the minimum score a match needs to survive.
	Threshold float64
}

// New creates a curator with the given score threshold.
func New(threshold float64) *Curator {
	return &Curator{Threshold: threshold}
}

// Curate returns the curated match list: below-threshold matches dropped,
// known false positives removed, and overlapping spans resolved in favor of
// the earliest start. Input order does not matter; output is sorted by
// start offset.
func (c *Curator) Curate(matches []detector.Match) []detector.Match {
	kept := make([]detector.Match, 0, len(matches))
	for _, m := range matches {
		if m.Score < c.Threshold {
			continue
		}
		if isFalsePositive(m) {
			continue
		}
		kept = append(kept, m)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Start < kept[j].Start
	})

	out := kept[:0]
	lastEnd := -1
	for _, m := range kept {
		if m.Start < lastEnd {
			continue
		}
		out = append(out, m)
		lastEnd = m.End
	}
	return out
}

// isFalsePositive reports whether a match is a known false positive.
// DATE_TIME spans are never sensitive on their own; PERSON spans are
// checked against the deny set and shape heuristics.
func isFalsePositive(m detector.Match) bool {
	switch m.EntityType {
	case validators.EntityDateTime:
		return true
	case validators.EntityPerson:
		text := strings.TrimSpace(m.Text)
		if utf8.RuneCountInString(text) <= 1 {
			return true
		}
		if _, denied := personDenySet[strings.ToLower(text)]; denied {
			return true
		}
		if isASCIILower(text) && len(text) < 5 {
			return true
		}
	}
	return false
}

// isASCIILower reports whether s is non-empty ASCII with at least one
// letter and no uppercase letters.
func isASCIILower(s string) bool {
	if s == "" {
		return false
	}
	hasLetter := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch > 127 {
			return false
		}
		if ch >= 'A' && ch <= 'Z' {
			return false
		}
		if ch >= 'a' && ch <= 'z' {
			hasLetter = true
		}
	}
	return hasLetter
}

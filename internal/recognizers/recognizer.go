// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognizers turns rule definitions into compiled pattern matchers
// and manages the builtin and custom rule set.
package recognizers

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators"
)

// Boundary classes. Go's regexp has no lookaround, so the character classes
// the patterns must not touch are enforced on the bytes adjacent to a match.
const (
	BoundaryNone   = "none"
	BoundaryDigit  = "digit"
	BoundaryAlnum  = "alnum"
	BoundaryToken  = "token"  // [A-Za-z0-9_-]
	BoundaryEmail  = "email"  // [A-Za-z0-9._%+-]
	BoundaryBase64 = "base64" // [A-Za-z0-9/+=]
)

// PatternConfig is one regex with its base score.
type PatternConfig struct {
	Name     string  `yaml:"name" json:"name"`
	Regex    string  `yaml:"regex" json:"regex"`
	Score    float64 `yaml:"score" json:"score"`
	Boundary string  `yaml:"boundary,omitempty" json:"boundary,omitempty"`
}

// Rule is a serializable recognizer definition. Builtin rules may be edited
// but not deleted; custom rules may be added, edited and deleted.
type Rule struct {
	Name        string          `yaml:"name" json:"name"`
	EntityType  string          `yaml:"entity_type" json:"entity_type"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Category    string          `yaml:"category,omitempty" json:"category,omitempty"`
	Source      string          `yaml:"source" json:"source"`
	Patterns    []PatternConfig `yaml:"patterns" json:"patterns"`
	Context     []string        `yaml:"context,omitempty" json:"context,omitempty"`
	Enabled     bool            `yaml:"enabled" json:"enabled"`
	Validator   string          `yaml:"validator,omitempty" json:"validator,omitempty"`
}

// IsBuiltin reports whether the rule ships with the module.
func (r *Rule) IsBuiltin() bool {
	return r.Source == "builtin"
}

// Validate checks the rule definition, including that every pattern compiles.
func (r *Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if r.EntityType == "" {
		return fmt.Errorf("rule %q: entity type is required", r.Name)
	}
	if len(r.Patterns) == 0 {
		return fmt.Errorf("rule %q: at least one pattern is required", r.Name)
	}
	for i, p := range r.Patterns {
		if _, err := regexp.Compile(p.Regex); err != nil {
			return fmt.Errorf("rule %q: pattern %d (%s): %w", r.Name, i+1, p.Name, err)
		}
	}
	return nil
}

type compiledPattern struct {
	name     string
	score    float64
	boundary string
	re       *regexp.Regexp
}

// Recognizer is a rule compiled for matching.
type Recognizer struct {
	Rule
	compiled  []compiledPattern
	validator detector.ChecksumValidator
}

// Compile builds a Recognizer from a rule. A regex that fails to compile
// fails the whole rule; callers record the error and skip the rule rather
// than aborting the load.
func Compile(rule Rule) (*Recognizer, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	rec := &Recognizer{Rule: rule}
	for _, p := range rule.Patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("rule %q: pattern %s: %w", rule.Name, p.Name, err)
		}
		rec.compiled = append(rec.compiled, compiledPattern{
			name:     p.Name,
			score:    p.Score,
			boundary: p.Boundary,
			re:       re,
		})
	}

	switch rule.Validator {
	case "none":
	case "":
		rec.validator = validators.Lookup(rule.EntityType)
	default:
		rec.validator = validators.Lookup(rule.Validator)
	}
	return rec, nil
}

// Analyze runs every pattern over the text and returns candidate matches.
// A validator verdict of Confirmed pins the score to 1.0, Rejected drops the
// match, Uncertain keeps the pattern score. Context words near the match add
// a small bonus to unconfirmed scores.
func (r *Recognizer) Analyze(text string) []detector.Match {
	var out []detector.Match

	for _, cp := range r.compiled {
		for _, loc := range cp.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			matched := text[start:end]

			if !boundaryOK(text, start, end, cp.boundary) {
				continue
			}
			if isDegenerate(matched) {
				continue
			}

			score := cp.score
			if r.validator != nil {
				switch r.validator.Validate(matched) {
				case detector.VerdictConfirmed:
					score = 1.0
				case detector.VerdictRejected:
					continue
				}
			}
			if score < 1.0 && r.contextNearby(text, start, end) {
				score = math.Min(1.0, score+0.1)
			}

			out = append(out, detector.Match{
				EntityType: r.EntityType,
				Text:       matched,
				Start:      start,
				End:        end,
				Score:      score,
				Recognizer: r.Name,
				Pattern:    cp.name,
			})
		}
	}
	return out
}

// contextNearby reports whether any of the rule's context words appears
// within 20 runes of the match.
func (r *Recognizer) contextNearby(text string, start, end int) bool {
	if len(r.Context) == 0 {
		return false
	}
	window := runeWindow(text, start, end, 20)
	lower := strings.ToLower(window)
	for _, word := range r.Context {
		if word == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// runeWindow expands [start,end) by n runes on each side.
func runeWindow(text string, start, end, n int) string {
	ws := start
	for i := 0; i < n && ws > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:ws])
		ws -= size
	}
	we := end
	for i := 0; i < n && we < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[we:])
		we += size
	}
	return text[ws:we]
}

func boundaryOK(text string, start, end int, boundary string) bool {
	if boundary == "" || boundary == BoundaryNone {
		return true
	}
	if start > 0 && inBoundaryClass(text[start-1], boundary) {
		return false
	}
	if end < len(text) && inBoundaryClass(text[end], boundary) {
		return false
	}
	return true
}

func inBoundaryClass(c byte, boundary string) bool {
	digit := c >= '0' && c <= '9'
	alpha := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')

	switch boundary {
	case BoundaryDigit:
		return digit
	case BoundaryAlnum:
		return digit || alpha
	case BoundaryToken:
		return digit || alpha || c == '_' || c == '-'
	case BoundaryEmail:
		return digit || alpha || c == '.' || c == '_' || c == '%' || c == '+' || c == '-'
	case BoundaryBase64:
		return digit || alpha || c == '/' || c == '+' || c == '='
	}
	return false
}

// isDegenerate drops placeholder-shaped matches: a single repeated character,
// or a long run of consecutive ascending/descending digits.
func isDegenerate(s string) bool {
	if len(s) > 3 && allSameByte(s) {
		return true
	}

	if len(s) >= 6 {
		asc, desc := true, true
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
			if i > 0 {
				if s[i] != s[i-1]+1 {
					asc = false
				}
				if s[i] != s[i-1]-1 {
					desc = false
				}
			}
		}
		return asc || desc
	}
	return false
}

func allSameByte(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

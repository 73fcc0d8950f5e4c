// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Verdict is the tri-state outcome of a checksum or allow-list validation.
type Verdict int

const (
	// VerdictUncertain keeps the pattern score and marks the match as a
	// candidate for LLM verification.
	VerdictUncertain Verdict = iota
	// VerdictConfirmed raises the score to 1.0.
	VerdictConfirmed
	// VerdictRejected drops the match entirely.
	VerdictRejected
)

func (v Verdict) String() string {
	switch v {
	case VerdictConfirmed:
		return "confirmed"
	case VerdictRejected:
		return "rejected"
	default:
		return "uncertain"
	}
}

// ChecksumValidator validates a matched substring. Implementations must be
// pure given the matched text, aside from static lookup tables (province
// codes, BIN prefixes, carrier segments).
type ChecksumValidator interface {
	Validate(matched string) Verdict
}

// Pattern is a single regex rule inside a recognizer. Score is the
// provisional confidence in [0,1] assigned to matches of this pattern.
type Pattern struct {
	Name  string  `yaml:"name" json:"name"`
	Regex string  `yaml:"regex" json:"regex"`
	Score float64 `yaml:"score" json:"score"`
}

// Match is a candidate span produced by a recognizer or the NLP scorer.
// Start and End are byte offsets into the source text,
// 0 <= Start < End <= len(text).
type Match struct {
	EntityType string  `json:"entity_type"`
	Text       string  `json:"text"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
	Recognizer string  `json:"recognizer,omitempty"`
	Pattern    string  `json:"pattern,omitempty"`
}

// ResolvedResult is a match that survived curation, carrying its final score
// and, when the escalator was consulted, the verifier's rationale.
type ResolvedResult struct {
	Match
	Verified bool   `json:"verified"`
	Reason   string `json:"reason,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Chunk is one unit of text handed to the analyzer, typically produced by an
// external extraction layer. Source labels where the text came from
// (filename, archive entry, sheet name).
type Chunk struct {
	Text   string
	Source string
}

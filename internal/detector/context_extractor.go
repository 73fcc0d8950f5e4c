// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "unicode/utf8"

// ContextExtractor builds a bounded context string around a match. The
// matched entity is delimited with 【】 so a verifier can locate it, and
// truncated edges are marked with ellipses.
type ContextExtractor struct {
	// Number of bytes before and after the match to include. Window edges
	// are snapped to rune boundaries so multi-byte characters stay intact.
	ContextChars int
}

// NewContextExtractor creates a context extractor with default settings.
func NewContextExtractor() *ContextExtractor {
	return &ContextExtractor{ContextChars: 30}
}

// WithContextChars sets the context window size.
func (ce *ContextExtractor) WithContextChars(chars int) *ContextExtractor {
	ce.ContextChars = chars
	return ce
}

// Extract returns the delimited context window for text[start:end].
// Out-of-range offsets are clamped rather than rejected.
func (ce *ContextExtractor) Extract(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	ctxStart := snapRuneStart(text, start-ce.ContextChars)
	ctxEnd := snapRuneEnd(text, end+ce.ContextChars)

	prefix := ""
	if ctxStart > 0 {
		prefix = "..."
	}
	suffix := ""
	if ctxEnd < len(text) {
		suffix = "..."
	}

	return prefix + text[ctxStart:start] + "【" + text[start:end] + "】" + text[end:ctxEnd] + suffix
}

// snapRuneStart moves pos backward to the nearest rune start.
func snapRuneStart(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s) {
		return len(s)
	}
	for pos > 0 && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return pos
}

// snapRuneEnd moves pos forward to the nearest rune boundary.
func snapRuneEnd(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	if pos <= 0 {
		return 0
	}
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	return pos
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtract_DelimitsEntity(t *testing.T) {
	ce := NewContextExtractor()
	text := "联系电话13812345678请保密"

	got := ce.Extract(text, 12, 23)
	if !strings.Contains(got, "【13812345678】") {
		t.Errorf("Extract = %q, missing delimited entity", got)
	}
	if strings.Contains(got, "...") {
		t.Errorf("short text should not be truncated: %q", got)
	}
}

func TestExtract_TruncatesLongContext(t *testing.T) {
	ce := NewContextExtractor()
	pad := strings.Repeat("a", 100)
	text := pad + "SECRET" + pad

	got := ce.Extract(text, 100, 106)
	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Errorf("Extract = %q, want ellipses on both ends", got)
	}
	if !strings.Contains(got, "【SECRET】") {
		t.Errorf("Extract = %q, missing entity", got)
	}
}

func TestExtract_SnapsRuneBoundaries(t *testing.T) {
	ce := NewContextExtractor().WithContextChars(4)
	text := strings.Repeat("中", 20) + "42" + strings.Repeat("文", 20)

	start := 60
	got := ce.Extract(text, start, start+2)
	if !utf8.ValidString(got) {
		t.Errorf("Extract produced invalid UTF-8: %q", got)
	}
	if !strings.Contains(got, "【42】") {
		t.Errorf("Extract = %q, missing entity", got)
	}
}

func TestExtract_ClampsOffsets(t *testing.T) {
	ce := NewContextExtractor()
	got := ce.Extract("abc", -5, 99)
	if got != "【abc】" {
		t.Errorf("Extract = %q, want whole text delimited", got)
	}
}

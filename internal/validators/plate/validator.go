// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package plate

import (
	"strings"
	"unicode/utf8"

	"mingjing-scan/internal/detector"
)

// provinceGlyphs are the single-character province abbreviations used as the
// first glyph of civilian plates (GA 36-2018).
const provinceGlyphs = "京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼"

// militaryGlyphs lead military and armed-forces plates.
const militaryGlyphs = "军空海北沈兰济南广成"

// Validator validates vehicle license plate matches.
type Validator struct{}

// NewValidator returns a vehicle plate validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
//
// Confirmed: a province or military glyph followed by 6–7 plate characters
// (regular or new-energy length). Rejected: anything else.
func (v *Validator) Validate(matched string) detector.Verdict {
	p := strings.NewReplacer("·", "", "-", "", " ", "").Replace(strings.TrimSpace(matched))
	first, size := utf8.DecodeRuneInString(p)
	if first == utf8.RuneError {
		return detector.VerdictRejected
	}

	isProvince := strings.ContainsRune(provinceGlyphs, first)
	isMilitary := strings.ContainsRune(militaryGlyphs, first)
	isEmbassy := first == '使'
	if !isProvince && !isMilitary && !isEmbassy {
		return detector.VerdictRejected
	}

	rest := p[size:]
	n := utf8.RuneCountInString(rest)
	if isEmbassy {
		if n == 5 {
			return detector.VerdictConfirmed
		}
		return detector.VerdictRejected
	}
	if n < 6 || n > 7 {
		return detector.VerdictRejected
	}
	return detector.VerdictConfirmed
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package socialcredit

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// alphabet is the 31-symbol set of GB 32100-2015: digits plus uppercase
// letters excluding I, O, S, V and Z. A symbol's value is its index.
const alphabet = "0123456789ABCDEFGHJKLMNPQRTUWXY"

// weights over the first 17 symbols; check = alphabet[(31 - sum%31) % 31].
var weights = [17]int{1, 3, 9, 27, 19, 26, 16, 17, 20, 29, 25, 13, 8, 24, 10, 30, 28}

// Validator validates 18-character unified social credit codes.
type Validator struct{}

// NewValidator returns a social credit code validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
//
// Confirmed: check character matches. Rejected: wrong length, a character
// outside the GB 32100 alphabet, or a check character mismatch.
func (v *Validator) Validate(matched string) detector.Verdict {
	code := Normalize(matched)

	if len(code) != 18 {
		return detector.VerdictRejected
	}

	total := 0
	for i := 0; i < 17; i++ {
		val := strings.IndexByte(alphabet, code[i])
		if val < 0 {
			return detector.VerdictRejected
		}
		total += val * weights[i]
	}
	if strings.IndexByte(alphabet, code[17]) < 0 {
		return detector.VerdictRejected
	}

	expected := alphabet[(31-total%31)%31]
	if code[17] == expected {
		return detector.VerdictConfirmed
	}
	return detector.VerdictRejected
}

// Normalize strips separators and upper-cases the code.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}

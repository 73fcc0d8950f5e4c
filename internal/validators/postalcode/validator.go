// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package postalcode

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// Validator validates 6-digit postal codes. Six-digit numbers are far too
// common for format alone to confirm anything, so a well-formed code always
// resolves Uncertain and relies on escalation.
type Validator struct{}

// NewValidator returns a postal code validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
func (v *Validator) Validate(matched string) detector.Verdict {
	code := strings.NewReplacer("-", "", " ", "").Replace(matched)

	if len(code) != 6 {
		return detector.VerdictRejected
	}
	for i := 0; i < 6; i++ {
		if code[i] < '0' || code[i] > '9' {
			return detector.VerdictRejected
		}
	}
	// 00 and 99 are unassigned region prefixes.
	if strings.HasPrefix(code, "00") || strings.HasPrefix(code, "99") {
		return detector.VerdictRejected
	}
	prefix := (int(code[0]-'0') * 10) + int(code[1]-'0')
	if prefix < 1 || prefix > 82 {
		return detector.VerdictRejected
	}

	return detector.VerdictUncertain
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package driverlicense

import (
	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators/idcard"
)

// Validator validates driver license numbers. The 18-digit format shares the
// GB 11643-1999 checksum with resident IDs; 15-digit legacy numbers and
// 12-digit archive numbers carry no checksum and depend on context.
type Validator struct{}

// NewValidator returns a driver license validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
func (v *Validator) Validate(matched string) detector.Verdict {
	num := idcard.Normalize(matched)

	switch len(num) {
	case 18:
		ok, err := idcard.ChecksumValid(num)
		if err != nil {
			return detector.VerdictRejected
		}
		if ok {
			return detector.VerdictConfirmed
		}
		return detector.VerdictUncertain
	case 15, 12:
		if !allDigits(num) {
			return detector.VerdictRejected
		}
		return detector.VerdictUncertain
	default:
		return detector.VerdictRejected
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

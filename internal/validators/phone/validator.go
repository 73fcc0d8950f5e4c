// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// validMobilePrefixes holds the three-digit carrier segments assigned to
// China Mobile, Unicom, Telecom, Broadnet and the MVNOs (as of 2024).
var validMobilePrefixes = map[string]bool{
	// China Mobile
	"134": true, "135": true, "136": true, "137": true, "138": true, "139": true,
	"147": true, "148": true,
	"150": true, "151": true, "152": true, "157": true, "158": true, "159": true,
	"172": true, "178": true,
	"182": true, "183": true, "184": true, "187": true, "188": true,
	"195": true, "197": true, "198": true,
	// China Unicom
	"130": true, "131": true, "132": true,
	"145": true, "146": true,
	"155": true, "156": true,
	"166": true, "167": true,
	"171": true, "175": true, "176": true,
	"185": true, "186": true,
	"196": true,
	// China Telecom
	"133": true, "149": true,
	"153": true,
	"173": true, "174": true, "177": true,
	"180": true, "181": true, "189": true,
	"190": true, "191": true, "193": true, "199": true,
	// China Broadnet
	"192": true,
	// MVNOs
	"162": true, "165": true, "170": true,
}

// Validator validates Chinese mobile, landline and service numbers.
type Validator struct{}

// NewValidator returns a phone number validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
//
// Confirmed: a mobile number with a known carrier segment, a landline with a
// plausible area code, or a 400/800 service number. Uncertain: an unknown
// segment that may be newly assigned. Rejected: emergency/service short-code
// shapes padded to 11 digits.
func (v *Validator) Validate(matched string) detector.Verdict {
	p := Normalize(matched)

	// Mobile: 11 digits starting with 1.
	if len(p) == 11 && p[0] == '1' {
		switch {
		case strings.HasPrefix(p, "100"), strings.HasPrefix(p, "110"), strings.HasPrefix(p, "120"):
			// Hotline prefixes padded out to 11 digits are not personal numbers.
			return detector.VerdictRejected
		case validMobilePrefixes[p[:3]]:
			return detector.VerdictConfirmed
		default:
			return detector.VerdictUncertain
		}
	}

	// Landline: area code + local number.
	if strings.HasPrefix(p, "0") {
		if len(p) == 11 && (strings.HasPrefix(p, "010") || p[1] == '2') {
			return detector.VerdictConfirmed
		}
		if (len(p) == 11 || len(p) == 12) && p[1] != '0' {
			return detector.VerdictConfirmed
		}
		return detector.VerdictUncertain
	}

	// 400/800 service numbers.
	if (strings.HasPrefix(p, "400") || strings.HasPrefix(p, "800")) && len(p) == 10 {
		return detector.VerdictConfirmed
	}

	return detector.VerdictUncertain
}

// Normalize strips separators, parentheses and the +86/0086 country code.
func Normalize(s string) string {
	r := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", "+86", "", "0086", "")
	return r.Replace(s)
}

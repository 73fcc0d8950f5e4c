// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package passport

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// Single-letter type prefixes: E ordinary, D diplomatic, S service, P public
// affairs, G legacy, C/W HK-Macau permits, L/T Taiwan permits.
var singlePrefixes = []string{"E", "D", "S", "P", "G", "C", "W", "L", "T"}

// Two-character prefixes used by newer ordinary/service series and the old
// numeric format.
var doublePrefixes = []string{"EA", "EB", "EC", "ED", "EE", "SE", "14", "15"}

// Validator validates Chinese passport and travel-permit numbers by type
// prefix. There is no checksum in the format.
type Validator struct{}

// NewValidator returns a passport number validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
func (v *Validator) Validate(matched string) detector.Verdict {
	p := strings.ToUpper(strings.NewReplacer("-", "", " ", "").Replace(matched))

	if len(p) < 8 || len(p) > 9 {
		return detector.VerdictRejected
	}

	for _, prefix := range doublePrefixes {
		if strings.HasPrefix(p, prefix) {
			return detector.VerdictConfirmed
		}
	}
	for _, prefix := range singlePrefixes {
		if strings.HasPrefix(p, prefix) {
			return detector.VerdictConfirmed
		}
	}
	return detector.VerdictUncertain
}

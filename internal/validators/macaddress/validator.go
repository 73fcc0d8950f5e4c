// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package macaddress

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// Validator validates MAC address matches: 12 hex digits once separators are
// stripped.
type Validator struct{}

// NewValidator returns a MAC address validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
func (v *Validator) Validate(matched string) detector.Verdict {
	mac := strings.NewReplacer(":", "", "-", "", ".", "").Replace(strings.TrimSpace(matched))

	if len(mac) != 12 {
		return detector.VerdictRejected
	}
	for i := 0; i < 12; i++ {
		c := mac[i]
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return detector.VerdictRejected
		}
	}
	return detector.VerdictConfirmed
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ipaddress

import (
	"net"
	"strings"

	"mingjing-scan/internal/detector"
)

// Validator validates IP address matches. Private and loopback addresses are
// almost never false positives in document text; public addresses can be
// version strings or decimal noise, so they stay Uncertain.
type Validator struct{}

// NewValidator returns an IP address validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
func (v *Validator) Validate(matched string) detector.Verdict {
	s := strings.TrimSpace(matched)

	// Strip a :port suffix from IPv4 matches.
	if strings.Count(s, ":") == 1 && strings.Contains(s, ".") {
		s = s[:strings.Index(s, ":")]
	}

	ip := net.ParseIP(s)
	if ip == nil {
		return detector.VerdictRejected
	}
	if ip.IsLoopback() || ip.IsPrivate() {
		return detector.VerdictConfirmed
	}
	return detector.VerdictUncertain
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// accessKeyPrefixes are fixed access-key-ID prefixes issued by major cloud
// providers: Alibaba Cloud (LTAI), Tencent Cloud (AKID), and AWS key classes
// (AKIA, ASIA, ABIA, ACCA).
var accessKeyPrefixes = []string{"LTAI", "AKID", "AKIA", "ASIA", "ABIA", "ACCA"}

// CloudKeyValidator validates cloud access key ID matches.
type CloudKeyValidator struct{}

// NewCloudKeyValidator returns a cloud key validator.
func NewCloudKeyValidator() *CloudKeyValidator {
	return &CloudKeyValidator{}
}

// Validate implements detector.ChecksumValidator.
func (v *CloudKeyValidator) Validate(matched string) detector.Verdict {
	key := strings.TrimSpace(matched)

	for _, prefix := range accessKeyPrefixes {
		if strings.HasPrefix(key, prefix) && len(key) >= 16 {
			return detector.VerdictConfirmed
		}
	}
	if len(key) >= 16 && hasMixedAlphanumeric(key) {
		return detector.VerdictUncertain
	}
	return detector.VerdictRejected
}

func hasMixedAlphanumeric(s string) bool {
	var hasUpper, hasLower, hasDigit bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	if hasDigit && (hasUpper || hasLower) {
		return true
	}
	return hasUpper && hasLower
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// credentialMarkers appear in assignments and PEM blocks that always denote
// real secret material.
var credentialMarkers = []string{
	"private key", "begin rsa", "begin openssh", "begin ec",
	"secret_key", "secretkey", "access_token", "accesstoken",
	"api_key", "apikey", "app_secret", "appsecret",
	"password", "passwd",
}

// CredentialValidator validates generic credential-assignment matches, e.g.
// "api_key = ..." lines or PEM key headers.
type CredentialValidator struct{}

// NewCredentialValidator returns a credential field validator.
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// Validate implements detector.ChecksumValidator.
func (v *CredentialValidator) Validate(matched string) detector.Verdict {
	field := strings.ToLower(matched)

	for _, marker := range credentialMarkers {
		if strings.Contains(field, marker) {
			return detector.VerdictConfirmed
		}
	}
	return detector.VerdictUncertain
}

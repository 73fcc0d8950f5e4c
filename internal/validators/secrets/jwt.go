// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"mingjing-scan/internal/detector"
)

// JWTValidator validates JSON Web Token matches by decoding the header
// segment and probing for the alg/typ fields.
type JWTValidator struct{}

// NewJWTValidator returns a JWT validator.
func NewJWTValidator() *JWTValidator {
	return &JWTValidator{}
}

// Validate implements detector.ChecksumValidator.
func (v *JWTValidator) Validate(matched string) detector.Verdict {
	token := strings.TrimSpace(matched)
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return detector.VerdictRejected
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err == nil {
		var header struct {
			Alg string `json:"alg"`
			Typ string `json:"typ"`
		}
		if json.Unmarshal(raw, &header) == nil && (header.Alg != "" || header.Typ != "") {
			return detector.VerdictConfirmed
		}
	}

	// {"alg": and {"typ": headers always start with eyJ once encoded.
	if strings.HasPrefix(parts[0], "eyJ") {
		return detector.VerdictConfirmed
	}
	return detector.VerdictRejected
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// WeChatValidator validates WeChat open-platform identifiers: user openids
// (o + 28 chars), enterprise corp IDs (ww + 18), and app IDs (wx + 16 hex).
type WeChatValidator struct{}

// NewWeChatValidator returns a WeChat ID validator.
func NewWeChatValidator() *WeChatValidator {
	return &WeChatValidator{}
}

// Validate implements detector.ChecksumValidator.
func (v *WeChatValidator) Validate(matched string) detector.Verdict {
	id := strings.TrimSpace(matched)

	switch {
	case strings.HasPrefix(id, "o") && len(id) == 28:
		return detector.VerdictConfirmed
	case strings.HasPrefix(id, "ww") && len(id) == 18:
		return detector.VerdictConfirmed
	case strings.HasPrefix(id, "wx") && len(id) == 18:
		return detector.VerdictConfirmed
	}
	if len(id) == 32 && hasMixedAlphanumeric(id) {
		return detector.VerdictUncertain
	}
	return detector.VerdictRejected
}

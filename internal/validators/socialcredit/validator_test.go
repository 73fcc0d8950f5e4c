// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package socialcredit

import (
	"testing"

	"mingjing-scan/internal/detector"
)

func TestValidate(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name  string
		input string
		want  detector.Verdict
	}{
		{"valid code", "91350100M000100Y43", detector.VerdictConfirmed},
		{"wrong check char", "91350100M000100Y40", detector.VerdictRejected},
		{"too short", "91350100M000100Y4", detector.VerdictRejected},
		{"excluded letter I", "91350100I000100Y43", detector.VerdictRejected},
		{"excluded letter O", "91350100O000100Y43", detector.VerdictRejected},
		{"lowercase normalized", "91350100m000100y43", detector.VerdictConfirmed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Validate(tc.input); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

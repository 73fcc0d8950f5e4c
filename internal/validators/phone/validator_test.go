// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

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
		{"china mobile prefix", "13812345678", detector.VerdictConfirmed},
		{"china unicom prefix", "18612345678", detector.VerdictConfirmed},
		{"unknown mobile prefix", "12345678901", detector.VerdictUncertain},
		{"emergency padded", "11012345678", detector.VerdictRejected},
		{"with country code", "+8613812345678", detector.VerdictConfirmed},
		{"with separators", "138-1234-5678", detector.VerdictConfirmed},
		{"landline beijing", "01012345678", detector.VerdictConfirmed},
		{"service hotline", "4001234567", detector.VerdictConfirmed},
		{"short local number", "1381234", detector.VerdictUncertain},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Validate(tc.input); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

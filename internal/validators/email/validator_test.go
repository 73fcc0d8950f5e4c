// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

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
		{"known provider", "zhangsan@163.com", detector.VerdictConfirmed},
		{"provider subdomain", "user@mail.qq.com", detector.VerdictConfirmed},
		{"uppercase provider", "User@QQ.COM", detector.VerdictConfirmed},
		{"unknown domain", "dev@example.com", detector.VerdictUncertain},
		{"no at sign", "not-an-address", detector.VerdictRejected},
		{"empty local part", "@qq.com", detector.VerdictRejected},
		{"domain without dot", "user@localhost", detector.VerdictRejected},
		{"domain trailing dot", "user@example.", detector.VerdictRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Validate(tc.input); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// knownProviders are mainstream Chinese mail services. A match on one of
// these domains is a real mailbox with near certainty.
var knownProviders = []string{
	"qq.com", "163.com", "126.com", "sina.com", "sina.cn",
	"aliyun.com", "alibaba.com", "taobao.com", "tencent.com",
	"sohu.com", "foxmail.com", "139.com", "189.cn",
}

// Validator validates email address matches structurally and against the
// known-provider list.
type Validator struct{}

// NewValidator returns an email validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
func (v *Validator) Validate(matched string) detector.Verdict {
	addr := strings.ToLower(strings.TrimSpace(matched))

	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return detector.VerdictRejected
	}
	domain := addr[at+1:]
	if !strings.Contains(domain, ".") {
		return detector.VerdictRejected
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return detector.VerdictRejected
	}

	for _, provider := range knownProviders {
		if domain == provider || strings.HasSuffix(domain, "."+provider) {
			return detector.VerdictConfirmed
		}
	}
	return detector.VerdictUncertain
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package masking

import (
	"testing"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators"
)

func TestMaskValue(t *testing.T) {
	cases := []struct {
		name       string
		entityType string
		value      string
		want       string
	}{
		{"phone 11 digits", validators.EntityPhone, "13812345678", "138****5678"},
		{"phone short", validators.EntityPhone, "12345", "123****"},
		{"id card 18", validators.EntityIDCard, "110101199003074514", "1101**********4514"},
		{"id card 15", validators.EntityIDCard, "110101900307451", "1101*******7451"},
		{"bank card 16", validators.EntityBankCard, "6222020200112233", "6222 **** **** 2233"},
		{"bank card short", validators.EntityBankCard, "622202020011223", "6222****1223"},
		{"email short local", validators.EntityEmail, "ab@qq.com", "a***@qq.com"},
		{"email long local", validators.EntityEmail, "zhangsan@163.com", "zha***@163.com"},
		{"person two chars", validators.EntityPerson, "张三", "张*"},
		{"person three chars", validators.EntityPerson, "王小明", "王**"},
		{"person four chars", validators.EntityPerson, "欧阳小明", "欧阳**"},
		{"passport", validators.EntityPassport, "E12345678", "E1*****78"},
		{"passport short", validators.EntityPassport, "E123", "***"},
		{"plate", validators.EntityPlate, "京A12345", "京A****5"},
		{"location long", validators.EntityLocation, "北京市朝阳区建国路88号", "北京市朝阳区***"},
		{"location short", validators.EntityLocation, "朝阳区", "朝阳区***"},
		{"unknown type full redact", "CUSTOM", "secret", "●●●●●●"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MaskValue(tc.entityType, tc.value)
			if got != tc.want {
				t.Errorf("MaskValue(%s, %q) = %q, want %q", tc.entityType, tc.value, got, tc.want)
			}
		})
	}
}

func TestApplyMasks(t *testing.T) {
	text := "电话13812345678，邮箱zhangsan@163.com。"
	matches := []detector.Match{
		{EntityType: validators.EntityPhone, Start: 6, End: 17, Score: 1.0},
		{EntityType: validators.EntityEmail, Start: 26, End: 42, Score: 1.0},
	}

	got := ApplyMasks(text, matches)
	want := "电话138****5678，邮箱zha***@163.com。"
	if got != want {
		t.Errorf("ApplyMasks = %q, want %q", got, want)
	}
}

func TestApplyMasks_OverlapSkipped(t *testing.T) {
	text := "0123456789abcdef"
	matches := []detector.Match{
		{EntityType: "CUSTOM", Start: 0, End: 10},
		{EntityType: "CUSTOM", Start: 5, End: 15},
	}

	got := ApplyMasks(text, matches)
	want := "●●●●●●●●●●abcdef"
	if got != want {
		t.Errorf("ApplyMasks = %q, want %q", got, want)
	}
}

func TestApplyMasks_NoMatches(t *testing.T) {
	text := "无敏感信息"
	if got := ApplyMasks(text, nil); got != text {
		t.Errorf("ApplyMasks = %q, want unchanged", got)
	}
}

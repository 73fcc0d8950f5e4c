// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package masking redacts detected entities in place, preserving enough
// shape for a human to recognize what was there.
package masking

import (
	"sort"
	"strings"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators"
)

// MaskValue returns the masked form of one entity value. Offsets are in
// runes so multi-byte characters mask cleanly.
func MaskValue(entityType, value string) string {
	runes := []rune(value)
	n := len(runes)

	switch entityType {
	case validators.EntityPhone:
		if n == 11 {
			return string(runes[:3]) + "****" + string(runes[7:])
		}
		return string(runes[:min(3, n)]) + "****"

	case validators.EntityIDCard:
		switch n {
		case 18:
			return string(runes[:4]) + strings.Repeat("*", 10) + string(runes[14:])
		case 15:
			return string(runes[:4]) + strings.Repeat("*", 7) + string(runes[11:])
		}

	case validators.EntityBankCard:
		if n >= 16 {
			return string(runes[:4]) + " **** **** " + string(runes[n-4:])
		}
		if n >= 4 {
			return string(runes[:4]) + "****" + string(runes[max(4, n-4):])
		}

	case validators.EntityEmail:
		at := strings.Index(value, "@")
		if at > 0 {
			local := []rune(value[:at])
			domain := value[at:]
			if len(local) <= 3 {
				return string(local[0]) + "***" + domain
			}
			return string(local[:3]) + "***" + domain
		}

	case validators.EntityPerson:
		switch {
		case n == 2:
			return string(runes[:1]) + "*"
		case n == 3:
			return string(runes[:1]) + "**"
		case n >= 4:
			return string(runes[:2]) + strings.Repeat("*", n-2)
		}

	case validators.EntityPassport, validators.EntityDriverLicense, validators.EntityMilitary:
		if n > 4 {
			return string(runes[:2]) + strings.Repeat("*", n-4) + string(runes[n-2:])
		}
		return "***"

	case validators.EntityPlate:
		if n >= 7 {
			return string(runes[:2]) + "****" + string(runes[n-1:])
		}
		if n >= 2 {
			return string(runes[:2]) + "****"
		}

	case validators.EntityLocation:
		if n > 10 {
			return string(runes[:6]) + "***"
		}
		return string(runes[:min(4, n)]) + "***"
	}

	return strings.Repeat("●", n)
}

// ApplyMasks replaces every matched span in text with its masked form.
// Matches are applied in start order; spans overlapping an already masked
// region are skipped.
func ApplyMasks(text string, matches []detector.Match) string {
	if len(matches) == 0 {
		return text
	}

	sorted := make([]detector.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var b strings.Builder
	b.Grow(len(text))
	cursor := 0
	for _, m := range sorted {
		if m.Start < cursor || m.Start < 0 || m.End > len(text) || m.Start >= m.End {
			continue
		}
		b.WriteString(text[cursor:m.Start])
		b.WriteString(MaskValue(m.EntityType, text[m.Start:m.End]))
		cursor = m.End
	}
	b.WriteString(text[cursor:])
	return b.String()
}

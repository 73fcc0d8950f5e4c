// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bankcard

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// Validator validates payment card numbers with the Luhn algorithm
// (ISO/IEC 7812) plus a BIN allow-list of major Chinese issuers.
type Validator struct {
	bins map[string]bool
}

// NewValidator returns a bank card validator with the builtin BIN table.
func NewValidator() *Validator {
	return &Validator{bins: initBankBINs()}
}

// initBankBINs lists common 6-digit BIN prefixes of major Chinese banks.
func initBankBINs() map[string]bool {
	bins := []string{
		// ICBC
		"622202", "622203", "621226", "621227", "621281", "621282",
		"621283", "621284", "621285", "621286", "621287", "621288",
		// CCB
		"621700", "622280", "622700", "436742", "436745", "622966",
		"621467", "621598", "621621", "621670",
		// ABC
		"622848", "622849", "621336", "621619",
		"622836", "622837", "622838", "622839", "622840",
		// BOC
		"621660", "621661", "622760", "622761", "622762", "622763",
		"621256", "621212", "621485", "621486",
		// CMB
		"621836", "622580", "622588", "621488", "621588",
		"622575", "622576", "622577", "622578", "622579",
		// BOCOM
		"621069", "622260", "622261", "621436", "621335", "621326",
		"622258", "622259", "622252", "622253",
		// PSBC
		"621096", "622188", "621098", "621095", "621798",
		"622199", "621799", "621899",
		// CITIC
		"622690", "622691", "622692", "622696", "621768", "621767",
		// CMBC
		"622622", "622623", "621691", "621692", "621693", "622600",
		// SPDB
		"622520", "622521", "622522", "621289", "621290", "621291",
		// CIB
		"622909", "622908", "621395", "621396", "621397", "621398",
		// CEB
		"622660", "622661", "622662", "622663", "621489", "621490",
		// PAB
		"622155", "622156", "622157", "622158", "621626", "621627",
		// HXB
		"622630", "622631", "622632", "622633", "621222", "621223",
		// CGB
		"622555", "622556", "622557", "622558", "621462", "621463",
	}
	m := make(map[string]bool, len(bins))
	for _, b := range bins {
		m[b] = true
	}
	return m
}

// Validate implements detector.ChecksumValidator.
//
// Confirmed: Luhn check passes. Uncertain: well-formed digits that fail Luhn
// (often pre-masked card numbers). Rejected: wrong length or non-digits.
func (v *Validator) Validate(matched string) detector.Verdict {
	card := Normalize(matched)

	if len(card) < 15 || len(card) > 19 {
		return detector.VerdictRejected
	}
	for i := 0; i < len(card); i++ {
		if card[i] < '0' || card[i] > '9' {
			return detector.VerdictRejected
		}
	}

	if LuhnValid(card) {
		return detector.VerdictConfirmed
	}
	return detector.VerdictUncertain
}

// KnownBIN reports whether the card's first six digits belong to a known
// Chinese issuer.
func (v *Validator) KnownBIN(card string) bool {
	card = Normalize(card)
	if len(card) < 6 {
		return false
	}
	return v.bins[card[:6]]
}

// Normalize strips spaces and dashes.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// LuhnValid runs the mod-10 check: double every second digit from the right,
// subtract 9 from doubled values above 9, and require sum % 10 == 0.
func LuhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

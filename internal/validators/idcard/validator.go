// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package idcard

import (
	"strconv"
	"strings"

	"mingjing-scan/internal/detector"
)

// Weights and checksum alphabet from GB 11643-1999. The check digit is
// checksumMap[weightedSum(first 17 digits) % 11].
var (
	weights     = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	checksumMap = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

// validProvinceCodes holds the two-digit administrative region prefixes
// assigned by GB/T 2260. Codes outside this set may still be newly assigned
// regions, so they resolve Uncertain rather than Rejected.
var validProvinceCodes = map[string]bool{
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"21": true, "22": true, "23": true,
	"31": true, "32": true, "33": true, "34": true, "35": true, "36": true, "37": true,
	"41": true, "42": true, "43": true, "44": true, "45": true, "46": true,
	"50": true, "51": true, "52": true, "53": true, "54": true,
	"61": true, "62": true, "63": true, "64": true, "65": true,
	"71": true,
	"81": true, "82": true,
}

// Validator validates 18-character resident ID numbers.
type Validator struct{}

// NewValidator returns a resident ID validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate implements detector.ChecksumValidator.
//
// Confirmed: check digit matches. Uncertain: well-formed but the check digit
// does not match (commonly pre-masked data) or the province code is unknown.
// Rejected: wrong length or an impossible birth date.
func (v *Validator) Validate(matched string) detector.Verdict {
	id := Normalize(matched)

	if len(id) != 18 {
		return detector.VerdictRejected
	}
	if !validBirthDate(id) {
		return detector.VerdictRejected
	}
	if !validProvinceCodes[id[:2]] {
		return detector.VerdictUncertain
	}

	ok, err := ChecksumValid(id)
	if err != nil {
		return detector.VerdictUncertain
	}
	if ok {
		return detector.VerdictConfirmed
	}
	return detector.VerdictUncertain
}

// Normalize strips separators and upper-cases the trailing X.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}

// ChecksumValid reports whether the GB 11643-1999 check digit of a normalized
// 18-character ID is correct. Shared with the driver-license validator, whose
// 18-digit format uses the same algorithm.
func ChecksumValid(id string) (bool, error) {
	if len(id) != 18 {
		return false, strconv.ErrSyntax
	}
	total := 0
	for i := 0; i < 17; i++ {
		d := id[i]
		if d < '0' || d > '9' {
			return false, strconv.ErrSyntax
		}
		total += int(d-'0') * weights[i]
	}
	return id[17] == checksumMap[total%11], nil
}

// validBirthDate checks the YYYYMMDD segment at positions 6..13.
func validBirthDate(id string) bool {
	year, err := strconv.Atoi(id[6:10])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(id[10:12])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(id[12:14])
	if err != nil {
		return false
	}

	if year < 1900 || year > 2100 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	daysInMonth := [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if day < 1 || day > daysInMonth[month] {
		return false
	}
	return true
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validators wires every entity-specific checksum validator into a
// static table keyed by entity type. Recognizers look validators up here
// instead of dispatching at runtime.
package validators

import (
	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators/bankcard"
	"mingjing-scan/internal/validators/driverlicense"
	"mingjing-scan/internal/validators/email"
	"mingjing-scan/internal/validators/idcard"
	"mingjing-scan/internal/validators/ipaddress"
	"mingjing-scan/internal/validators/macaddress"
	"mingjing-scan/internal/validators/passport"
	"mingjing-scan/internal/validators/phone"
	"mingjing-scan/internal/validators/plate"
	"mingjing-scan/internal/validators/postalcode"
	"mingjing-scan/internal/validators/secrets"
	"mingjing-scan/internal/validators/socialcredit"
)

// Entity type names shared across the pipeline.
const (
	EntityIDCard        = "CN_ID_CARD"
	EntityPhone         = "CN_PHONE"
	EntityBankCard      = "CN_BANK_CARD"
	EntitySocialCredit  = "CN_SOCIAL_CREDIT_CODE"
	EntityPassport      = "CN_PASSPORT"
	EntityDriverLicense = "CN_DRIVER_LICENSE"
	EntityMedical       = "CN_MEDICAL_LICENSE"
	EntityMilitary      = "CN_MILITARY_ID"
	EntityPlate         = "CN_VEHICLE_PLATE"
	EntityEmail         = "CN_EMAIL"
	EntityPostalCode    = "CN_POSTAL_CODE"
	EntityIPAddress     = "CN_IP_ADDRESS"
	EntityMACAddress    = "CN_MAC_ADDRESS"
	EntityJWT           = "CN_JWT"
	EntityCloudKey      = "CN_CLOUD_KEY"
	EntityJDBC          = "CN_JDBC_CONNECTION"
	EntityWeChatID      = "CN_WECHAT_ID"
	EntityCredential    = "CN_SENSITIVE_FIELD"
	EntityPerson        = "PERSON"
	EntityLocation      = "LOCATION"
	EntityOrganization  = "ORGANIZATION"
	EntityDateTime      = "DATE_TIME"
)

var table = map[string]detector.ChecksumValidator{
	EntityIDCard:        idcard.NewValidator(),
	EntityPhone:         phone.NewValidator(),
	EntityBankCard:      bankcard.NewValidator(),
	EntitySocialCredit:  socialcredit.NewValidator(),
	EntityPassport:      passport.NewValidator(),
	EntityDriverLicense: driverlicense.NewValidator(),
	EntityMedical:       digitRangeValidator{min: 10, max: 18},
	EntityMilitary:      digitRangeValidator{min: 6, max: 18},
	EntityPlate:         plate.NewValidator(),
	EntityEmail:         email.NewValidator(),
	EntityPostalCode:    postalcode.NewValidator(),
	EntityIPAddress:     ipaddress.NewValidator(),
	EntityMACAddress:    macaddress.NewValidator(),
	EntityJWT:           secrets.NewJWTValidator(),
	EntityCloudKey:      secrets.NewCloudKeyValidator(),
	EntityJDBC:          secrets.NewDBConnValidator(),
	EntityWeChatID:      secrets.NewWeChatValidator(),
	EntityCredential:    secrets.NewCredentialValidator(),
}

// Lookup returns the validator for the entity type, or nil when the type has
// no checksum or structural validation (NER entities, custom rules).
func Lookup(entityType string) detector.ChecksumValidator {
	return table[entityType]
}

// digitRangeValidator accepts matches whose digit count falls inside a range.
// License and service numbers without a published checksum use it.
type digitRangeValidator struct {
	min, max int
}

func (v digitRangeValidator) Validate(matched string) detector.Verdict {
	var digits []byte
	for i := 0; i < len(matched); i++ {
		if matched[i] >= '0' && matched[i] <= '9' {
			digits = append(digits, matched[i])
		}
	}
	if len(digits) > 3 && allSame(digits) {
		return detector.VerdictRejected
	}
	if len(digits) < v.min || len(digits) > v.max {
		return detector.VerdictRejected
	}
	return detector.VerdictConfirmed
}

func allSame(b []byte) bool {
	for i := 1; i < len(b); i++ {
		if b[i] != b[0] {
			return false
		}
	}
	return len(b) > 0
}

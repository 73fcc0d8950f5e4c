// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"strings"

	"mingjing-scan/internal/detector"
)

// connectionSchemes identify database connection strings by their URI scheme
// or JDBC prefix.
var connectionSchemes = []string{
	"jdbc:", "mongodb://", "mongodb+srv://", "redis://", "rediss://",
	"mysql://", "postgresql://", "postgres://", "oracle://", "sqlserver://",
	"amqp://", "amqps://",
}

// DBConnValidator validates database connection string matches. A connection
// string is only sensitive when it names a recognized scheme or embeds a
// password field.
type DBConnValidator struct{}

// NewDBConnValidator returns a connection string validator.
func NewDBConnValidator() *DBConnValidator {
	return &DBConnValidator{}
}

// Validate implements detector.ChecksumValidator.
func (v *DBConnValidator) Validate(matched string) detector.Verdict {
	conn := strings.ToLower(strings.TrimSpace(matched))

	for _, scheme := range connectionSchemes {
		if strings.HasPrefix(conn, scheme) {
			return detector.VerdictConfirmed
		}
	}
	if strings.Contains(conn, "password=") || strings.Contains(conn, "pwd=") {
		return detector.VerdictConfirmed
	}
	return detector.VerdictRejected
}

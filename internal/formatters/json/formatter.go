// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"mingjing-scan/internal/formatters"
	"mingjing-scan/internal/report"
)

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON report"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(r *report.AnalysisReport, options formatters.FormatterOptions) (string, error) {
	out, err := r.ToJSON()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

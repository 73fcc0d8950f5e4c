// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"mingjing-scan/internal/formatters"
	"mingjing-scan/internal/report"
)

// Formatter implements YAML output formatting.
type Formatter struct{}

// NewFormatter creates a new YAML formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "Machine-readable YAML report"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(r *report.AnalysisReport, options formatters.FormatterOptions) (string, error) {
	out, err := r.ToYAML()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

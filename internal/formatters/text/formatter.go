// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"mingjing-scan/internal/formatters"
	"mingjing-scan/internal/report"
)

// Formatter implements text-based output formatting.
type Formatter struct {
	levelColors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		levelColors: map[string]*color.Color{
			"critical": color.New(color.FgRed, color.Bold),
			"high":     color.New(color.FgRed),
			"medium":   color.New(color.FgYellow),
			"low":      color.New(color.FgGreen),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(r *report.AnalysisReport, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	levelColor := f.colorFor(r.RiskLevel)
	fmt.Fprintf(&b, "风险评分: %d/100 (%s)\n", r.RiskScore, levelColor.Sprint(strings.ToUpper(r.RiskLevel)))
	fmt.Fprintf(&b, "检出实体: %d\n", len(r.Findings))

	if len(r.Findings) == 0 {
		b.WriteString("\n未检出敏感信息。\n")
		return b.String(), nil
	}

	b.WriteString("\n")
	for _, finding := range r.Findings {
		text := finding.Text
		if options.ShowMasked && finding.MaskedText != "" {
			text = finding.MaskedText
		}
		fmt.Fprintf(&b, "  [%s] %s (score %.2f, offset %d-%d)",
			f.colorFor(typeSeverity(r, finding.EntityType)).Sprint(finding.EntityType),
			text, finding.Score, finding.Start, finding.End)
		if options.Verbose {
			if finding.Source != "" {
				fmt.Fprintf(&b, " source=%s", finding.Source)
			}
			if finding.Recognizer != "" {
				fmt.Fprintf(&b, " recognizer=%s", finding.Recognizer)
			}
			if finding.Reason != "" {
				fmt.Fprintf(&b, " reason=%s", finding.Reason)
			}
		}
		b.WriteString("\n")
	}

	if len(r.Summary) > 0 {
		b.WriteString("\n按类型汇总:\n")
		for _, s := range r.Summary {
			fmt.Fprintf(&b, "  %-24s %3d  %s\n", s.EntityType, s.Count, f.colorFor(s.Level).Sprint(s.Level))
		}
	}
	return b.String(), nil
}

func (f *Formatter) colorFor(level string) *color.Color {
	if c, ok := f.levelColors[level]; ok {
		return c
	}
	return color.New(color.FgWhite)
}

// typeSeverity looks up the summary level for an entity type.
func typeSeverity(r *report.AnalysisReport, entityType string) string {
	for _, s := range r.Summary {
		if s.EntityType == entityType {
			return s.Level
		}
	}
	return "low"
}

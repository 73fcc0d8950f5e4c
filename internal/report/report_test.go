// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingjing-scan/internal/validators"
)

func TestRiskScore(t *testing.T) {
	cases := []struct {
		name     string
		findings []Finding
		want     int
	}{
		{
			name:     "single confirmed id card",
			findings: []Finding{{EntityType: validators.EntityIDCard, Score: 1.0}},
			want:     10,
		},
		{
			name: "fractional scores truncate",
			findings: []Finding{
				{EntityType: validators.EntityPhone, Score: 0.7},
				{EntityType: validators.EntityEmail, Score: 0.5},
			},
			want: 4, // int(5*0.7) + int(3*0.5)
		},
		{
			name:     "unknown type uses default weight",
			findings: []Finding{{EntityType: "CUSTOM_TOKEN", Score: 1.0}},
			want:     2,
		},
		{
			name: "capped at 100",
			findings: func() []Finding {
				var fs []Finding
				for i := 0; i < 20; i++ {
					fs = append(fs, Finding{EntityType: validators.EntityBankCard, Score: 1.0})
				}
				return fs
			}(),
			want: 100,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RiskScore(tc.findings))
		})
	}
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "critical", RiskLevel(80))
	assert.Equal(t, "high", RiskLevel(60))
	assert.Equal(t, "medium", RiskLevel(40))
	assert.Equal(t, "low", RiskLevel(39))
	assert.Equal(t, "low", RiskLevel(0))
}

func TestSummarize_OrderAndLevels(t *testing.T) {
	findings := []Finding{
		{EntityType: validators.EntityPhone, Score: 1.0},
		{EntityType: validators.EntityPhone, Score: 1.0},
		{EntityType: validators.EntityIDCard, Score: 1.0},
		{EntityType: validators.EntityPostalCode, Score: 0.4},
	}

	summary := Summarize(findings)
	require.Len(t, summary, 3)

	assert.Equal(t, validators.EntityIDCard, summary[0].EntityType)
	assert.Equal(t, "high", summary[0].Level)
	assert.Equal(t, 10.0, summary[0].Score)

	assert.Equal(t, validators.EntityPhone, summary[1].EntityType)
	assert.Equal(t, "medium", summary[1].Level)
	assert.Equal(t, 2, summary[1].Count)
	assert.Equal(t, 10.0, summary[1].Score)

	assert.Equal(t, validators.EntityPostalCode, summary[2].EntityType)
	assert.Equal(t, "low", summary[2].Level)
}

func TestNew_PopulatesReport(t *testing.T) {
	findings := []Finding{
		{EntityType: validators.EntityIDCard, Text: "110101199003074514", Score: 1.0},
	}
	r := New(findings, Statistics{TotalFiles: 1, ProcessedFiles: 1})

	require.NotEmpty(t, r.ID)
	assert.Equal(t, 10, r.RiskScore)
	assert.Equal(t, "low", r.RiskLevel)
	assert.Equal(t, 1, r.Statistics.EntityTypeCounts[validators.EntityIDCard])
	require.Len(t, r.Summary, 1)
}

func TestReportSerialization(t *testing.T) {
	r := New([]Finding{{EntityType: validators.EntityEmail, Text: "a@qq.com", Score: 1.0}}, Statistics{})

	jsonBytes, err := r.ToJSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Contains(t, decoded, "risk_score")
	assert.Contains(t, decoded, "findings")

	yamlBytes, err := r.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(yamlBytes), "risk_level: low")
}

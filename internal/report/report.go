// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report aggregates curated findings into a risk-scored analysis
// report.
package report

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators"
)

// entityWeights scores each entity type's contribution to overall risk.
var entityWeights = map[string]float64{
	validators.EntityIDCard:        10,
	validators.EntityBankCard:      10,
	validators.EntityPassport:      8,
	validators.EntityPhone:         5,
	validators.EntityEmail:         3,
	validators.EntityPerson:        4,
	validators.EntityDriverLicense: 6,
	validators.EntityMilitary:      8,
	validators.EntitySocialCredit:  5,
	validators.EntityJWT:           7,
	validators.EntityCloudKey:      9,
	validators.EntityCredential:    10,
	validators.EntityJDBC:          8,
}

const defaultWeight = 2

// highRiskTypes and mediumRiskTypes bucket entity types for the summary.
var highRiskTypes = map[string]struct{}{
	validators.EntityIDCard:     {},
	validators.EntityBankCard:   {},
	validators.EntityPassport:   {},
	validators.EntityCredential: {},
	validators.EntityCloudKey:   {},
}

var mediumRiskTypes = map[string]struct{}{
	validators.EntityPhone:  {},
	validators.EntityJWT:    {},
	validators.EntityJDBC:   {},
	validators.EntityPerson: {},
}

// WeightFor returns the risk weight for an entity type.
func WeightFor(entityType string) float64 {
	if w, ok := entityWeights[entityType]; ok {
		return w
	}
	return defaultWeight
}

// Finding is one reported entity, optionally with its masked form and the
// verification reason when the span went through escalation.
type Finding struct {
	EntityType string  `json:"entity_type" yaml:"entity_type"`
	Text       string  `json:"text" yaml:"text"`
	MaskedText string  `json:"masked_text,omitempty" yaml:"masked_text,omitempty"`
	Start      int     `json:"start" yaml:"start"`
	End        int     `json:"end" yaml:"end"`
	Score      float64 `json:"score" yaml:"score"`
	Recognizer string  `json:"recognizer,omitempty" yaml:"recognizer,omitempty"`
	Source     string  `json:"source,omitempty" yaml:"source,omitempty"`
	Reason     string  `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// FindingFromMatch converts a detector match to a finding.
func FindingFromMatch(m detector.Match) Finding {
	return Finding{
		EntityType: m.EntityType,
		Text:       m.Text,
		Start:      m.Start,
		End:        m.End,
		Score:      m.Score,
		Recognizer: m.Recognizer,
	}
}

// TypeSummary aggregates findings of one entity type.
type TypeSummary struct {
	EntityType string  `json:"entity_type" yaml:"entity_type"`
	Count      int     `json:"count" yaml:"count"`
	Level      string  `json:"level" yaml:"level"`
	Score      float64 `json:"score" yaml:"score"`
}

// Statistics describes an analysis run over one or more inputs.
type Statistics struct {
	TotalFiles       int            `json:"total_files" yaml:"total_files"`
	ProcessedFiles   int            `json:"processed_files" yaml:"processed_files"`
	FailedFiles      int            `json:"failed_files" yaml:"failed_files"`
	EntityTypeCounts map[string]int `json:"entity_type_counts" yaml:"entity_type_counts"`
	FileTypeCounts   map[string]int `json:"file_type_counts,omitempty" yaml:"file_type_counts,omitempty"`
	AvgEntitiesFile  float64        `json:"avg_entities_per_file" yaml:"avg_entities_per_file"`
	TotalSeconds     float64        `json:"total_seconds" yaml:"total_seconds"`
}

// AnalysisReport is the final output of an analysis run.
type AnalysisReport struct {
	ID         string        `json:"id" yaml:"id"`
	CreatedAt  time.Time     `json:"created_at" yaml:"created_at"`
	RiskScore  int           `json:"risk_score" yaml:"risk_score"`
	RiskLevel  string        `json:"risk_level" yaml:"risk_level"`
	Findings   []Finding     `json:"findings" yaml:"findings"`
	Summary    []TypeSummary `json:"summary" yaml:"summary"`
	Statistics Statistics    `json:"statistics" yaml:"statistics"`
}

// New builds a report from curated findings. The risk score, level, and
// per-type summary are computed here.
func New(findings []Finding, stats Statistics) *AnalysisReport {
	if stats.EntityTypeCounts == nil {
		stats.EntityTypeCounts = make(map[string]int)
	}
	for _, f := range findings {
		stats.EntityTypeCounts[f.EntityType]++
	}

	score := RiskScore(findings)
	return &AnalysisReport{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		RiskScore:  score,
		RiskLevel:  RiskLevel(score),
		Findings:   findings,
		Summary:    Summarize(findings),
		Statistics: stats,
	}
}

// RiskScore computes the overall risk score, capped at 100. Each finding
// contributes the integer part of weight times score.
func RiskScore(findings []Finding) int {
	total := 0
	for _, f := range findings {
		total += int(WeightFor(f.EntityType) * f.Score)
	}
	if total > 100 {
		return 100
	}
	return total
}

// RiskLevel maps a risk score to a level name.
func RiskLevel(score int) string {
	switch {
	case score >= 80:
		return "critical"
	case score >= 60:
		return "high"
	case score >= 40:
		return "medium"
	default:
		return "low"
	}
}

// Summarize groups findings by entity type, ordered by level severity then
// descending score.
func Summarize(findings []Finding) []TypeSummary {
	counts := make(map[string]int)
	for _, f := range findings {
		counts[f.EntityType]++
	}

	out := make([]TypeSummary, 0, len(counts))
	for entityType, count := range counts {
		out = append(out, TypeSummary{
			EntityType: entityType,
			Count:      count,
			Level:      typeLevel(entityType),
			Score:      float64(count) * WeightFor(entityType),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		li, lj := levelOrder(out[i].Level), levelOrder(out[j].Level)
		if li != lj {
			return li < lj
		}
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].EntityType < out[j].EntityType
	})
	return out
}

func typeLevel(entityType string) string {
	if _, ok := highRiskTypes[entityType]; ok {
		return "high"
	}
	if _, ok := mediumRiskTypes[entityType]; ok {
		return "medium"
	}
	return "low"
}

func levelOrder(level string) int {
	switch level {
	case "critical":
		return 0
	case "high":
		return 1
	case "medium":
		return 2
	default:
		return 3
	}
}

// ToJSON renders the report as indented JSON.
func (r *AnalysisReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToYAML renders the report as YAML.
func (r *AnalysisReport) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}

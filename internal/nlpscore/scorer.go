// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nlpscore adjusts confidence for spans produced by an external NER
// model. The model itself is out of scope; this package only maps its labels
// to entity types and applies context and shape heuristics.
package nlpscore

import (
	"strings"
	"unicode/utf8"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/validators"
)

// Span is a named-entity span as emitted by an NER model, with byte offsets
// into the analyzed text.
type Span struct {
	Label string
	Start int
	End   int
	Score float64
}

// contextWords raise confidence when they appear near a span.
var contextWords = map[string][]string{
	validators.EntityPerson: {
		"姓名", "名字", "本人", "用户", "客户", "员工", "先生", "女士",
		"联系人", "负责人", "申请人", "持卡人", "收件人", "发件人", "法人", "签名",
	},
	validators.EntityLocation: {
		"地址", "住址", "居住地", "户籍", "籍贯", "所在地",
		"省", "市", "区", "县", "镇", "街道", "路", "号",
		"小区", "邮寄地址", "收货地址", "家庭地址",
	},
	validators.EntityOrganization: {
		"公司", "企业", "单位", "机构", "组织", "部门", "集团",
		"银行", "医院", "学校", "大学", "工作单位", "开户行",
	},
	validators.EntityDateTime: {
		"日期", "时间", "出生日期", "生日", "有效期", "签发日期",
	},
}

const commonSurnames = "王李张刘陈杨黄赵周吴徐孙马朱胡郭何高林罗郑梁谢宋唐许韩冯邓曹彭曾萧田董潘袁蔡蒋余于杜叶程魏苏吕丁任沈姚卢姜崔钟谭陆汪范金石廖贾夏韦傅方白邹孟熊秦邱江尹薛闫段雷侯龙史陶黎贺顾毛郝龚邵万钱严覃武戴莫孔向汤"

var locationSuffixes = []string{"省", "市", "区", "县", "镇", "乡", "村", "街道", "路", "道", "巷", "弄", "号", "楼", "室"}

var orgSuffixes = []string{"公司", "集团", "银行", "医院", "学校", "大学", "学院", "研究所", "研究院", "中心", "局", "部", "厅", "委", "会", "协会", "基金会"}

// Scorer maps NER labels to entity types and adjusts span confidence.
type Scorer struct {
	// LabelMap translates model labels to entity types. Unmapped labels
	// are dropped.
	LabelMap map[string]string
	// Ignore drops specific labels even if mapped.
	Ignore map[string]bool
	// DefaultScore applies when a span carries no model score.
	DefaultScore float64
	// Window is the context lookup distance in runes on each side.
	Window int
}

// NewScorer returns a scorer with the standard zh label mapping.
func NewScorer() *Scorer {
	return &Scorer{
		LabelMap: map[string]string{
			"PER":          validators.EntityPerson,
			"PERSON":       validators.EntityPerson,
			"LOC":          validators.EntityLocation,
			"GPE":          validators.EntityLocation,
			"LOCATION":     validators.EntityLocation,
			"ORG":          validators.EntityOrganization,
			"ORGANIZATION": validators.EntityOrganization,
			"DATE":         validators.EntityDateTime,
			"TIME":         validators.EntityDateTime,
			"DATE_TIME":    validators.EntityDateTime,
		},
		Ignore:       map[string]bool{"NRP": true},
		DefaultScore: 0.4,
		Window:       20,
	}
}

// Score converts NER spans to scored matches. Spans with unmapped or ignored
// labels, out-of-range offsets, or a zero adjusted score are dropped.
func (s *Scorer) Score(text string, spans []Span) []detector.Match {
	var out []detector.Match

	for _, sp := range spans {
		if s.Ignore[sp.Label] {
			continue
		}
		entity, ok := s.LabelMap[sp.Label]
		if !ok {
			continue
		}
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}

		spanText := text[sp.Start:sp.End]
		score := sp.Score
		if score == 0 {
			score = s.DefaultScore
		}
		score = s.adjust(entity, spanText, text, sp.Start, sp.End, score)
		if score <= 0 {
			continue
		}

		out = append(out, detector.Match{
			EntityType: entity,
			Text:       spanText,
			Start:      sp.Start,
			End:        sp.End,
			Score:      score,
			Recognizer: "nlp",
			Pattern:    sp.Label,
		})
	}
	return out
}

func (s *Scorer) adjust(entity, spanText, text string, start, end int, score float64) float64 {
	window := s.window(text, start, end)
	for _, word := range contextWords[entity] {
		if strings.Contains(window, word) {
			score = capped(score + 0.1)
			break
		}
	}

	switch entity {
	case validators.EntityPerson:
		score = adjustPerson(spanText, score)
	case validators.EntityLocation:
		score = adjustLocation(spanText, score)
	case validators.EntityOrganization:
		score = adjustOrganization(spanText, score)
	}
	return score
}

func adjustPerson(text string, score float64) float64 {
	n := utf8.RuneCountInString(text)
	if n < 2 || n > 6 {
		score *= 0.5
	}
	first, _ := utf8.DecodeRuneInString(text)
	if first != utf8.RuneError && strings.ContainsRune(commonSurnames, first) {
		score = capped(score + 0.1)
	}
	return score
}

func adjustLocation(text string, score float64) float64 {
	for _, suffix := range locationSuffixes {
		if strings.HasSuffix(text, suffix) {
			score = capped(score + 0.1)
			break
		}
	}
	if utf8.RuneCountInString(text) < 2 {
		score *= 0.5
	}
	return score
}

func adjustOrganization(text string, score float64) float64 {
	for _, suffix := range orgSuffixes {
		if strings.HasSuffix(text, suffix) {
			score = capped(score + 0.1)
			break
		}
	}
	if utf8.RuneCountInString(text) < 3 {
		score *= 0.5
	}
	return score
}

func (s *Scorer) window(text string, start, end int) string {
	n := s.Window
	if n <= 0 {
		n = 20
	}
	ws := start
	for i := 0; i < n && ws > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:ws])
		ws -= size
	}
	we := end
	for i := 0; i < n && we < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[we:])
		we += size
	}
	return text[ws:we]
}

func capped(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}

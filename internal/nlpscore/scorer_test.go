// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlpscore

import (
	"strings"
	"testing"

	"mingjing-scan/internal/validators"
)

func spanFor(text, entity, label string) Span {
	start := strings.Index(text, entity)
	return Span{Label: label, Start: start, End: start + len(entity)}
}

func TestScore_LabelMapping(t *testing.T) {
	s := NewScorer()
	text := "姓名张三，地址北京市朝阳区"

	matches := s.Score(text, []Span{
		spanFor(text, "张三", "PER"),
		spanFor(text, "北京市朝阳区", "LOC"),
		spanFor(text, "张三", "NRP"),
		spanFor(text, "张三", "MISC"),
	})

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].EntityType != validators.EntityPerson {
		t.Errorf("first entity = %s", matches[0].EntityType)
	}
	if matches[1].EntityType != validators.EntityLocation {
		t.Errorf("second entity = %s", matches[1].EntityType)
	}
}

func TestScore_ContextAndSurnameBonus(t *testing.T) {
	s := NewScorer()

	withContext := "姓名张三"
	plain := "xx某某"

	m1 := s.Score(withContext, []Span{spanFor(withContext, "张三", "PER")})
	m2 := s.Score(plain, []Span{spanFor(plain, "某某", "PER")})

	if len(m1) != 1 || len(m2) != 1 {
		t.Fatalf("expected 1 match each, got %d and %d", len(m1), len(m2))
	}
	// 张三 gets the context bonus and the surname bonus; 某某 gets neither.
	if m1[0].Score <= m2[0].Score {
		t.Errorf("expected boosted score: %v vs %v", m1[0].Score, m2[0].Score)
	}
}

func TestScore_ShortSpanPenalty(t *testing.T) {
	s := NewScorer()
	text := "联系王先生"

	matches := s.Score(text, []Span{spanFor(text, "王", "PER")})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	// Single-rune person: 0.4 default + 0.1 context + 0.1 surname, halved.
	if matches[0].Score >= s.DefaultScore {
		t.Errorf("single-rune name should be penalized below default, got %v", matches[0].Score)
	}
}

func TestScore_SuffixBoosts(t *testing.T) {
	s := NewScorer()
	text := "就职于阿里巴巴集团"

	matches := s.Score(text, []Span{spanFor(text, "阿里巴巴集团", "ORG")})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Score <= s.DefaultScore {
		t.Errorf("org suffix should boost score above default, got %v", matches[0].Score)
	}
}

func TestScore_InvalidSpansDropped(t *testing.T) {
	s := NewScorer()
	text := "短文本"

	matches := s.Score(text, []Span{
		{Label: "PER", Start: -1, End: 3},
		{Label: "PER", Start: 3, End: 3},
		{Label: "PER", Start: 0, End: len(text) + 10},
	})
	if len(matches) != 0 {
		t.Errorf("expected invalid spans to be dropped, got %d", len(matches))
	}
}

func TestScore_CapAtOne(t *testing.T) {
	s := NewScorer()
	text := "姓名张三"

	matches := s.Score(text, []Span{{
		Label: "PER",
		Start: strings.Index(text, "张三"),
		End:   strings.Index(text, "张三") + len("张三"),
		Score: 0.95,
	}})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Score > 1.0 {
		t.Errorf("score exceeds 1.0: %v", matches[0].Score)
	}
}

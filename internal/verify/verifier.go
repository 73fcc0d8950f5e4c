// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package verify escalates low-confidence matches to a language-model
// backend for a second opinion.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/metrics"
	"mingjing-scan/internal/resilience"
)

// promptTemplate asks the model for a JSON judgement on one marked span.
const promptTemplate = `你是一个敏感信息识别专家。请判断以下文本中标记的内容是否为真正的敏感信息。

【上下文】
%s

【待验证内容】
- 文本: "%s"
- 预测类型: %s

【实体类型说明】
- PERSON: 真实人名（不是称呼、职位、代词）
- LOCATION: 真实地址/地名（不是方位词、泛指）
- ORGANIZATION: 真实组织机构名（不是泛指、行业名）
- CN_ID_CARD: 中国身份证号
- CN_PHONE: 中国手机号/电话号码
- CN_BANK_CARD: 银行卡号
- CN_EMAIL: 电子邮箱地址
- CN_IP_ADDRESS: IP地址（需要是真实IP，不是版本号）
- CN_POSTAL_CODE: 邮政编码（需要是真实邮编，不是普通数字）

请以JSON格式回答：
{
    "is_sensitive": true/false,
    "confidence": 0.0-1.0,
    "reason": "判断理由"
}

只输出JSON，不要其他内容。`

const parseFailureReason = "解析失败，保守判断为敏感信息"

// Result is the backend's judgement for one span.
type Result struct {
	EntityText    string  `json:"entity_text"`
	EntityType    string  `json:"entity_type"`
	OriginalScore float64 `json:"original_score"`
	IsSensitive   bool    `json:"is_sensitive"`
	Confidence    float64 `json:"confidence"`
	FinalScore    float64 `json:"final_score"`
	Reason        string  `json:"reason"`
	Context       string  `json:"context"`
}

// Verified pairs a match with its verification. Verification is nil when the
// match scored at or above the threshold and was not escalated.
type Verified struct {
	Match        detector.Match
	Verification *Result
}

// Verifier escalates matches below ScoreThreshold to a Backend. Backend
// calls run behind retry and a circuit breaker; any failure degrades to the
// conservative fallback (sensitive, confidence 0.5) rather than dropping
// the span.
type Verifier struct {
	backend   Backend
	extractor *detector.ContextExtractor
	retry     resilience.RetryConfig
	breaker   *resilience.CircuitBreaker

	// ScoreThreshold is the score below which matches are escalated.
	ScoreThreshold float64
	// CallTimeout bounds a single backend call.
	CallTimeout time.Duration
	// Concurrency bounds in-flight backend calls in VerifyResults.
	Concurrency int
	// Metrics records backend call outcomes and latency when set.
	Metrics *metrics.Metrics
}

// NewVerifier builds a verifier around a backend.
func NewVerifier(backend Backend) *Verifier {
	return &Verifier{
		backend:        backend,
		extractor:      detector.NewContextExtractor(),
		retry:          resilience.VerifierRetryConfig(),
		breaker:        resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("verify-" + backend.Name())),
		ScoreThreshold: 0.5,
		CallTimeout:    30 * time.Second,
		Concurrency:    4,
	}
}

// Backend returns the configured backend.
func (v *Verifier) Backend() Backend {
	return v.backend
}

// BuildPrompt renders the verification prompt for one span.
func (v *Verifier) BuildPrompt(entityText, entityType, context string) string {
	return fmt.Sprintf(promptTemplate, context, entityText, entityType)
}

// VerifySingle escalates one match. It never returns an error: call or parse
// failures produce the conservative fallback judgement.
func (v *Verifier) VerifySingle(ctx context.Context, text string, m detector.Match) Result {
	contextStr := v.extractor.Extract(text, m.Start, m.End)
	prompt := v.BuildPrompt(m.Text, m.EntityType, contextStr)

	isSensitive, confidence, reason := true, 0.5, ""
	response, err := v.call(ctx, prompt)
	if err != nil {
		reason = fmt.Sprintf("验证调用失败: %v", err)
	} else {
		isSensitive, confidence, reason = parseResponse(response)
	}

	finalScore := 0.0
	if isSensitive {
		finalScore = m.Score
		if confidence > finalScore {
			finalScore = confidence
		}
	}

	return Result{
		EntityText:    m.Text,
		EntityType:    m.EntityType,
		OriginalScore: m.Score,
		IsSensitive:   isSensitive,
		Confidence:    confidence,
		FinalScore:    finalScore,
		Reason:        reason,
		Context:       contextStr,
	}
}

// VerifyResults escalates every match below the threshold, concurrently.
// Output order matches input order.
func (v *Verifier) VerifyResults(ctx context.Context, text string, matches []detector.Match) []Verified {
	out := make([]Verified, len(matches))

	limit := v.Concurrency
	if limit <= 0 {
		limit = 1
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, m := range matches {
		out[i] = Verified{Match: m}
		if m.Score >= v.ScoreThreshold {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, m detector.Match) {
			defer wg.Done()
			defer func() { <-sem }()
			r := v.VerifySingle(ctx, text, m)
			out[i].Verification = &r
		}(i, m)
	}
	wg.Wait()
	return out
}

func (v *Verifier) call(ctx context.Context, prompt string) (string, error) {
	var response string
	err := resilience.RetryWithCircuitBreaker(ctx, v.retry, v.breaker, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, v.CallTimeout)
		defer cancel()

		start := time.Now()
		var e error
		response, e = v.backend.Call(callCtx, prompt)
		if v.Metrics != nil {
			v.Metrics.ObserveVerify(v.backend.Name(), time.Since(start), e)
		}
		return e
	})
	return response, err
}

// parseResponse extracts the JSON judgement from a raw model response,
// tolerating markdown code fences. An unparsable response falls back to
// (sensitive, 0.5).
func parseResponse(response string) (isSensitive bool, confidence float64, reason string) {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```") {
		lines := strings.Split(cleaned, "\n")
		if len(lines) >= 2 {
			cleaned = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	var parsed struct {
		IsSensitive bool        `json:"is_sensitive"`
		Confidence  json.Number `json:"confidence"`
		Reason      string      `json:"reason"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return true, 0.5, parseFailureReason
	}

	confidence = 0.5
	if f, err := parsed.Confidence.Float64(); err == nil {
		confidence = f
	}
	return parsed.IsSensitive, confidence, parsed.Reason
}

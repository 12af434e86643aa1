package spam

import "github.com/greenkhata/greenkhata/internal/model"

// Scorer is a pluggable statistical text scorer. Probabilities are
// index-aligned with Classes; the last class is taken as the spam class.
type Scorer interface {
	Score(text string) Prediction
}

// Prediction mirrors the scorer output without importing its package.
type Prediction struct {
	Classes       []string
	Probabilities []float64
}

// Verdict is the combined detector output. MLScore is nil when no scorer is
// attached.
type Verdict struct {
	MLScore         *float64
	ReasonCodes     []string
	Confidence      float64
	RuleScore       float64
	IsSpam          bool
	IsTransactional bool
}

// Detector wraps the rule engine with an optional statistical scorer. The
// decision is rules-only today; the scorer's probability is carried along so
// a future ensemble can blend it without touching the rules.
type Detector struct {
	scorer Scorer
}

// NewDetector creates a detector. scorer may be nil.
func NewDetector(scorer Scorer) *Detector {
	return &Detector{scorer: scorer}
}

// Predict runs the rule engine and, when present, the statistical scorer.
func (d *Detector) Predict(text, from string) Verdict {
	rule := DetectRules(text, from)

	confidence := rule.Score
	if !rule.IsSpam {
		confidence = 1.0 - rule.Score
	}

	v := Verdict{
		IsSpam:          rule.IsSpam,
		IsTransactional: rule.IsTransactional,
		Confidence:      confidence,
		RuleScore:       rule.Score,
		ReasonCodes:     append([]string(nil), rule.Signals...),
	}

	if d.scorer != nil {
		p := d.scorer.Score(text)
		if n := len(p.Probabilities); n > 0 {
			spamProb := p.Probabilities[n-1]
			v.MLScore = &spamProb
		}
	}

	return v
}

// Rules exposes the bare rule result for callers that do not need the
// detector wrapper.
func (d *Detector) Rules(text, from string) model.SpamResult {
	return DetectRules(text, from)
}

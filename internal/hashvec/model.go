package hashvec

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/greenkhata/greenkhata/internal/common"
)

// VectorizerConfig describes one hashing encoder in the artifact.
type VectorizerConfig struct {
	Analyzer   Analyzer `json:"analyzer"`
	NgramRange [2]int   `json:"ngram_range"`
	NFeatures  int      `json:"n_features"`
}

// Artifact is the serialized form of a frozen linear model. A binary model
// stores Coef as a single row; a multi-class model stores one row per class.
type Artifact struct {
	Classes    []string `json:"classes"`
	Vectorizer struct {
		Word VectorizerConfig `json:"word"`
		Char VectorizerConfig `json:"char"`
	} `json:"vectorizer"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
	Binary    bool        `json:"binary"`
}

// Model is a frozen logistic/softmax scorer over hashed n-gram features.
type Model struct {
	classes   []string
	encoder   *DualEncoder
	coef      [][]float64
	intercept []float64
	binary    bool
}

// Prediction pairs class labels with their probabilities, index-aligned.
type Prediction struct {
	Classes       []string
	Probabilities []float64
}

// NewModel validates an artifact and builds a scorer from it. Any
// inconsistency is fatal: a partially loaded model would silently skew every
// downstream score.
func NewModel(a *Artifact) (*Model, error) {
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 classes, got %d", common.ErrInvalidArtifact, len(a.Classes))
	}
	if a.Vectorizer.Word.NFeatures <= 0 || a.Vectorizer.Char.NFeatures <= 0 {
		return nil, fmt.Errorf("%w: non-positive feature space", common.ErrInvalidArtifact)
	}

	wantRows := len(a.Classes)
	if a.Binary {
		wantRows = 1
	}
	if len(a.Coef) != wantRows || len(a.Intercept) != wantRows {
		return nil, fmt.Errorf("%w: got %d coefficient rows and %d intercepts for %d classes",
			common.ErrInvalidArtifact, len(a.Coef), len(a.Intercept), len(a.Classes))
	}

	width := a.Vectorizer.Word.NFeatures + a.Vectorizer.Char.NFeatures
	for i, row := range a.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d weights, feature space is %d",
				common.ErrArtifactMismatch, i, len(row), width)
		}
	}

	word := NewVectorizer(a.Vectorizer.Word.Analyzer, a.Vectorizer.Word.NgramRange[0],
		a.Vectorizer.Word.NgramRange[1], a.Vectorizer.Word.NFeatures)
	char := NewVectorizer(a.Vectorizer.Char.Analyzer, a.Vectorizer.Char.NgramRange[0],
		a.Vectorizer.Char.NgramRange[1], a.Vectorizer.Char.NFeatures)

	return &Model{
		classes:   a.Classes,
		encoder:   NewDualEncoder(word, char),
		coef:      a.Coef,
		intercept: a.Intercept,
		binary:    a.Binary,
	}, nil
}

// ParseModel decodes and validates a JSON artifact.
func ParseModel(data []byte) (*Model, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidArtifact, err)
	}
	return NewModel(&a)
}

// Classes returns the model's class labels.
func (m *Model) Classes() []string { return m.classes }

func sparseDot(v SparseVector, row []float64) float64 {
	var sum float64
	for idx, val := range v {
		if idx < len(row) {
			sum += val * row[idx]
		}
	}
	return sum
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Score encodes text and returns class probabilities. A binary model applies
// a sigmoid to its single logit; a multi-class model applies softmax with the
// max logit subtracted for numerical stability.
func (m *Model) Score(text string) Prediction {
	features := m.encoder.Transform(text)

	if m.binary {
		p := sigmoid(sparseDot(features, m.coef[0]) + m.intercept[0])
		return Prediction{Classes: m.classes, Probabilities: []float64{1 - p, p}}
	}

	logits := make([]float64, len(m.coef))
	maxLogit := math.Inf(-1)
	for i, row := range m.coef {
		logits[i] = sparseDot(features, row) + m.intercept[i]
		if logits[i] > maxLogit {
			maxLogit = logits[i]
		}
	}

	probs := make([]float64, len(logits))
	var total float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}
	return Prediction{Classes: m.classes, Probabilities: probs}
}

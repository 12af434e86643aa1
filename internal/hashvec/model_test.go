package hashvec

import (
	"testing"

	"github.com/greenkhata/greenkhata/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtifact(t *testing.T) *Artifact {
	t.Helper()
	a := &Artifact{
		Classes:   []string{"transaction", "spam"},
		Binary:    true,
		Coef:      [][]float64{make([]float64, 24)},
		Intercept: []float64{0},
	}
	a.Vectorizer.Word = VectorizerConfig{Analyzer: AnalyzerWord, NgramRange: [2]int{1, 1}, NFeatures: 8}
	a.Vectorizer.Char = VectorizerConfig{Analyzer: AnalyzerChar, NgramRange: [2]int{2, 2}, NFeatures: 16}
	return a
}

func TestNewModelValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Artifact)
		wantErr error
	}{
		{
			name:    "valid artifact",
			mutate:  func(*Artifact) {},
			wantErr: nil,
		},
		{
			name:    "too few classes",
			mutate:  func(a *Artifact) { a.Classes = []string{"spam"} },
			wantErr: common.ErrInvalidArtifact,
		},
		{
			name:    "zero feature space",
			mutate:  func(a *Artifact) { a.Vectorizer.Word.NFeatures = 0 },
			wantErr: common.ErrInvalidArtifact,
		},
		{
			name:    "missing intercept",
			mutate:  func(a *Artifact) { a.Intercept = nil },
			wantErr: common.ErrInvalidArtifact,
		},
		{
			name:    "coefficient width mismatch",
			mutate:  func(a *Artifact) { a.Coef = [][]float64{make([]float64, 7)} },
			wantErr: common.ErrArtifactMismatch,
		},
		{
			name: "multiclass row count mismatch",
			mutate: func(a *Artifact) {
				a.Binary = false
				a.Classes = []string{"a", "b", "c"}
				// Still only one row and one intercept.
			},
			wantErr: common.ErrInvalidArtifact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testArtifact(t)
			tt.mutate(a)
			m, err := NewModel(a)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
			} else {
				require.NoError(t, err)
				assert.Equal(t, []string{"transaction", "spam"}, m.Classes())
			}
		})
	}
}

func TestBinaryScoreIsProbabilityPair(t *testing.T) {
	m, err := NewModel(testArtifact(t))
	require.NoError(t, err)

	p := m.Score("some message text")
	require.Len(t, p.Probabilities, 2)
	assert.InDelta(t, 1.0, p.Probabilities[0]+p.Probabilities[1], 1e-9)
	// Zero weights and zero intercept: sigmoid(0) = 0.5 exactly.
	assert.InDelta(t, 0.5, p.Probabilities[1], 1e-9)
}

func TestMulticlassSoftmax(t *testing.T) {
	a := testArtifact(t)
	a.Binary = false
	a.Classes = []string{"a", "b", "c"}
	a.Coef = [][]float64{make([]float64, 24), make([]float64, 24), make([]float64, 24)}
	// Large intercept spread exercises the max-logit subtraction.
	a.Intercept = []float64{1000, 999, 998}

	m, err := NewModel(a)
	require.NoError(t, err)

	p := m.Score("anything")
	require.Len(t, p.Probabilities, 3)

	var total float64
	for _, prob := range p.Probabilities {
		assert.False(t, prob < 0 || prob > 1)
		total += prob
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, p.Probabilities[0], p.Probabilities[1])
	assert.Greater(t, p.Probabilities[1], p.Probabilities[2])
}

func TestLoadDefault(t *testing.T) {
	m, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, []string{"transaction", "spam"}, m.Classes())

	spam := m.Score("Congratulations winner! Exclusive offer, free cashback, shop now")
	txn := m.Score("Rs.500 debited from A/c XX1234. UPI Ref: 123456789012. Avl Bal Rs.2000")
	assert.Greater(t, spam.Probabilities[1], txn.Probabilities[1],
		"promotional text must score spammier than a bank debit")
}

func TestParseModelRejectsGarbage(t *testing.T) {
	m, err := ParseModel([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidArtifact)
	assert.Nil(t, m)
}

// Package hashvec implements the frozen statistical text scorer: two hashed
// n-gram encoders over normalized text feeding a linear model. The model is a
// read-only artifact loaded once at startup; nothing in this package mutates
// state after construction.
package hashvec

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Analyzer selects the tokenization granularity of a vectorizer.
type Analyzer string

// Supported analyzers.
const (
	AnalyzerWord Analyzer = "word"
	AnalyzerChar Analyzer = "char"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// NormalizeText canonicalizes text before hashing: Unicode NFKC, collapsed
// whitespace, lower-cased.
func NormalizeText(text string) string {
	t := norm.NFKC.String(text)
	t = reWhitespace.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}

// SparseVector maps feature bucket index to accumulated weight.
type SparseVector map[int]float64

// l2Normalize scales the vector to unit Euclidean length in place.
func (v SparseVector) l2Normalize() {
	var sumSquares float64
	for _, val := range v {
		sumSquares += val * val
	}
	if sumSquares == 0 {
		return
	}
	norm := math.Sqrt(sumSquares)
	for idx, val := range v {
		v[idx] = val / norm
	}
}

// Vectorizer hashes token n-grams into a fixed-width feature space.
type Vectorizer struct {
	analyzer  Analyzer
	minN      int
	maxN      int
	nFeatures int
}

// NewVectorizer creates a hashing vectorizer for the given analyzer, n-gram
// range, and bucket count.
func NewVectorizer(analyzer Analyzer, minN, maxN, nFeatures int) *Vectorizer {
	return &Vectorizer{analyzer: analyzer, minN: minN, maxN: maxN, nFeatures: nFeatures}
}

// NFeatures returns the width of the vectorizer's feature space.
func (v *Vectorizer) NFeatures() int { return v.nFeatures }

// tokenize splits normalized text into words or individual code points.
func (v *Vectorizer) tokenize(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}
	if v.analyzer == AnalyzerWord {
		return strings.Split(normalized, " ")
	}

	runes := []rune(normalized)
	tokens := make([]string, len(runes))
	for i, r := range runes {
		tokens[i] = string(r)
	}
	return tokens
}

// ngrams emits contiguous n-grams for every n in the configured range. Word
// n-grams are joined by spaces, character n-grams by nothing.
func (v *Vectorizer) ngrams(tokens []string) []string {
	sep := ""
	if v.analyzer == AnalyzerWord {
		sep = " "
	}

	var grams []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], sep))
		}
	}
	return grams
}

// hashNgram maps an n-gram to a feature bucket with a 32-bit string hash
// (the classic shift-add-and-truncate form). The hash walks Unicode code
// points, not UTF-16 code units, so astral characters contribute one term
// each; the embedded coefficients are authored against this convention and
// must not be swapped for weights hashed any other way.
func (v *Vectorizer) hashNgram(gram string) int {
	var h int32
	for _, r := range gram {
		h = (h << 5) - h + int32(r)
	}
	if h < 0 {
		// Negate in int64 space: int32 min has no positive counterpart.
		return int(-int64(h)) % v.nFeatures
	}
	return int(h) % v.nFeatures
}

// Transform converts text into a sparse count vector, optionally
// L2-normalized.
func (v *Vectorizer) Transform(text string, normalize bool) SparseVector {
	tokens := v.tokenize(text)
	if len(tokens) == 0 {
		return SparseVector{}
	}

	features := make(SparseVector)
	for _, gram := range v.ngrams(tokens) {
		features[v.hashNgram(gram)]++
	}

	if normalize {
		features.l2Normalize()
	}
	return features
}

// DualEncoder concatenates a word-level and a character-level feature space
// into one vector, L2-normalized over the combined space.
type DualEncoder struct {
	word *Vectorizer
	char *Vectorizer
}

// NewDualEncoder builds the combined encoder.
func NewDualEncoder(word, char *Vectorizer) *DualEncoder {
	return &DualEncoder{word: word, char: char}
}

// TotalFeatures is the width of the concatenated feature space.
func (e *DualEncoder) TotalFeatures() int {
	return e.word.nFeatures + e.char.nFeatures
}

// Transform encodes text into the concatenated word+char feature space. The
// char block is offset by the word space width; normalization happens once
// over the combined vector.
func (e *DualEncoder) Transform(text string) SparseVector {
	combined := e.word.Transform(text, false)
	for idx, val := range e.char.Transform(text, false) {
		combined[idx+e.word.nFeatures] += val
	}
	combined.l2Normalize()
	return combined
}

package lexres

import (
	"math"
	"sort"

	"github.com/viterin/vek/vek32"
)

// Table holds static word embeddings (word2vec/fastText style) and answers
// cosine-similarity queries over them.
type Table struct {
	dim   int
	vecs  map[string][]float32
	state State
}

// SimilarWord is one neighbor returned by MostSimilar.
type SimilarWord struct {
	Word       string
	Similarity float64
}

// NewTable creates an unloaded embedding table.
func NewTable() *Table {
	return &Table{}
}

// Load installs the vectors. Vectors whose length differs from dim are
// skipped rather than corrupting similarity math.
func (t *Table) Load(dim int, vectors map[string][]float32) {
	t.dim = dim
	t.vecs = make(map[string][]float32, len(vectors))
	for w, v := range vectors {
		if len(v) == dim {
			t.vecs[w] = v
		}
	}
	if len(t.vecs) > 0 {
		t.state = StateReady
	}
}

// State reports resource availability.
func (t *Table) State() State {
	return t.state
}

// Dim returns the vector dimensionality.
func (t *Table) Dim() int {
	return t.dim
}

// Has reports whether a word has a vector.
func (t *Table) Has(word string) bool {
	_, ok := t.vecs[word]
	return ok
}

// Vector returns the embedding for a word, or nil when absent.
func (t *Table) Vector(word string) []float32 {
	return t.vecs[word]
}

// Similarity returns the cosine similarity between two words, or 0 when
// either word has no vector.
func (t *Table) Similarity(a, b string) float64 {
	va, vb := t.vecs[a], t.vecs[b]
	if va == nil || vb == nil {
		return 0
	}
	return Cosine(va, vb)
}

// MostSimilar returns the topK nearest words by cosine similarity. An
// optional filter restricts candidates to a vocabulary set.
func (t *Table) MostSimilar(word string, topK int, filter map[string]bool) []SimilarWord {
	vec := t.vecs[word]
	if vec == nil {
		return nil
	}
	if topK <= 0 {
		topK = 10
	}
	results := make([]SimilarWord, 0, len(t.vecs))
	for cand, cv := range t.vecs {
		if cand == word {
			continue
		}
		if filter != nil && !filter[cand] {
			continue
		}
		results = append(results, SimilarWord{Word: cand, Similarity: Cosine(vec, cv)})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Word < results[j].Word
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Cosine computes the cosine similarity of two equal-length vectors,
// returning 0 for degenerate (zero-norm) inputs.
func Cosine(a, b []float32) float64 {
	dot := float64(vek32.Dot(a, b))
	na := math.Sqrt(float64(vek32.Dot(a, a)))
	nb := math.Sqrt(float64(vek32.Dot(b, b)))
	denom := na * nb
	if denom == 0 {
		return 0
	}
	return dot / denom
}

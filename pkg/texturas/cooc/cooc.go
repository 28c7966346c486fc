// Package cooc builds symmetric windowed co-occurrence matrices over a
// restricted vocabulary.
package cooc

// Matrix maps lemma to lemma to co-occurrence count. Symmetric by
// construction. A lemma repeated at distinct positions inside one window
// counts against itself, so the diagonal can be nonzero.
type Matrix map[string]map[string]int

// DefaultWindow is the symmetric window radius used when a caller passes
// a non-positive window.
const DefaultWindow = 5

// Build counts co-occurrences over the filtered lemma sequence. For every
// position holding a vocabulary word, every other vocabulary word within
// the window radius on either side contributes one count. Counting both
// directions keeps the matrix symmetric without a post-pass.
func Build(lemmas []string, vocab []string, window int) Matrix {
	if window <= 0 {
		window = DefaultWindow
	}
	vocabSet := make(map[string]struct{}, len(vocab))
	m := make(Matrix, len(vocab))
	for _, w := range vocab {
		vocabSet[w] = struct{}{}
		m[w] = make(map[string]int)
	}
	for i, w := range lemmas {
		if _, ok := vocabSet[w]; !ok {
			continue
		}
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > len(lemmas)-1 {
			hi = len(lemmas) - 1
		}
		for j := lo; j <= hi; j++ {
			if i == j {
				continue
			}
			if _, ok := vocabSet[lemmas[j]]; ok {
				m[w][lemmas[j]]++
			}
		}
	}
	return m
}

// Count returns the co-occurrence count for a pair, 0 when unseen.
func (m Matrix) Count(a, b string) int {
	return m[a][b]
}

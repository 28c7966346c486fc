package fibras

import (
	"github.com/viterin/vek/vek32"

	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

const kmeansIterations = 20

// ClusterByVec groups the thread words by k-means over their embedding
// vectors, cosine distance, centroids seeded from evenly spaced words.
// Words without vectors land in cluster 0. With the table unloaded every
// word gets cluster 0; with fewer vectors than clusters words are
// assigned round-robin.
func ClusterByVec(words []string, vec *lexres.Table, k int) map[string]int {
	out := make(map[string]int, len(words))
	if vec.State() != lexres.StateReady || len(words) == 0 {
		for _, w := range words {
			out[w] = 0
		}
		return out
	}

	if k < 1 {
		k = 6
	}
	if k > len(words) {
		k = len(words)
	}
	dim := vec.Dim()

	var vecWords []string
	var vecs [][]float32
	for _, w := range words {
		if v := vec.Vector(w); v != nil {
			vecWords = append(vecWords, w)
			cp := make([]float32, dim)
			copy(cp, v)
			vecs = append(vecs, cp)
		}
	}

	if len(vecWords) < k {
		for i, w := range words {
			out[w] = i % k
		}
		return out
	}

	centroids := make([][]float32, k)
	for c := 0; c < k; c++ {
		idx := c * len(vecWords) / k
		cp := make([]float32, dim)
		copy(cp, vecs[idx])
		centroids[c] = cp
	}

	assignments := make([]int, len(vecWords))
	for i := range assignments {
		assignments[i] = -1
	}
	for iter := 0; iter < kmeansIterations; iter++ {
		changed := false
		for i := range vecWords {
			best, bestSim := 0, -2.0
			for c := 0; c < k; c++ {
				if sim := lexres.Cosine(vecs[i], centroids[c]); sim > bestSim {
					bestSim = sim
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		for c := 0; c < k; c++ {
			sum := make([]float32, dim)
			count := 0
			for i := range vecWords {
				if assignments[i] == c {
					vek32.Add_Inplace(sum, vecs[i])
					count++
				}
			}
			if count > 0 {
				vek32.MulNumber_Inplace(sum, 1/float32(count))
				centroids[c] = sum
			}
		}
	}

	byWord := make(map[string]int, len(vecWords))
	for i, w := range vecWords {
		byWord[w] = assignments[i]
	}
	for _, w := range words {
		out[w] = byWord[w]
	}
	return out
}

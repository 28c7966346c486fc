// Package community detects lexical communities over a co-occurrence
// graph using greedy single-level modularity optimization (Louvain local
// moves, no coarsening pass).
package community

import "github.com/epsidebox/texturas/pkg/texturas/cooc"

// Cap on full local-move passes. Convergence is usually much earlier; the
// cap bounds worst-case oscillation.
const maxPasses = 20

// Detect assigns each vocabulary word a community id. Edge weights are
// co-occurrence counts. Ids are renumbered densely from 0 in order of
// first appearance. When the graph has no edges at all, every word goes
// to community 0 without iterating.
func Detect(vocab []string, m cooc.Matrix) map[string]int {
	n := len(vocab)
	if n == 0 {
		return map[string]int{}
	}

	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	totalW := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := float64(m.Count(vocab[i], vocab[j]))
			if w > 0 {
				adj[i][j] = w
				adj[j][i] = w
				totalW += 2 * w
			}
		}
	}
	if totalW == 0 {
		out := make(map[string]int, n)
		for _, w := range vocab {
			out[w] = 0
		}
		return out
	}

	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += adj[i][j]
		}
		deg[i] = s
	}

	comm := make([]int, n)
	for i := range comm {
		comm[i] = i
	}

	m2 := totalW
	improved := true
	for pass := 0; improved && pass < maxPasses; pass++ {
		improved = false
		for i := 0; i < n; i++ {
			ci := comm[i]

			// Weight of edges from i into each neighboring community,
			// with neighbor communities kept in discovery order so tie
			// handling is deterministic.
			neighWeight := make(map[int]float64)
			var neighOrder []int
			for j := 0; j < n; j++ {
				if j == i || adj[i][j] == 0 {
					continue
				}
				cj := comm[j]
				if _, seen := neighWeight[cj]; !seen {
					neighOrder = append(neighOrder, cj)
				}
				neighWeight[cj] += adj[i][j]
			}

			ki := deg[i]
			sumTotCur := 0.0
			for j := 0; j < n; j++ {
				if comm[j] == ci && j != i {
					sumTotCur += deg[j]
				}
			}
			removeCost := neighWeight[ci]/m2 - (sumTotCur*ki)/(m2*m2)

			bestComm := ci
			bestDQ := 0.0
			for _, c := range neighOrder {
				if c == ci {
					continue
				}
				sumTot := 0.0
				for j := 0; j < n; j++ {
					if comm[j] == c {
						sumTot += deg[j]
					}
				}
				addCost := neighWeight[c]/m2 - (sumTot*ki)/(m2*m2)
				if dq := addCost - removeCost; dq > bestDQ {
					bestDQ = dq
					bestComm = c
				}
			}
			if bestComm != ci {
				comm[i] = bestComm
				improved = true
			}
		}
	}

	// Dense renumbering by first appearance.
	renumber := make(map[int]int)
	next := 0
	out := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id, ok := renumber[comm[i]]
		if !ok {
			id = next
			renumber[comm[i]] = id
			next++
		}
		out[vocab[i]] = id
	}
	return out
}

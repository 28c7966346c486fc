package analyze

import (
	"sort"
	"strings"
)

// countFreqs counts occurrences and returns pairs sorted by count
// descending. The sort is stable over discovery order, so equal counts
// keep the order in which the words first appeared.
func countFreqs(items []string) []WordCount {
	counts := make(map[string]int, len(items))
	var order []string
	for _, it := range items {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	pairs := make([]WordCount, 0, len(order))
	for _, w := range order {
		pairs = append(pairs, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	return pairs
}

// ngrams extracts n-grams over the filtered lemma sequence, ranked by
// frequency descending.
func ngrams(lemmas []string, n int) []WordCount {
	if n <= 0 || len(lemmas) < n {
		return nil
	}
	grams := make([]string, 0, len(lemmas)-n+1)
	for i := 0; i+n <= len(lemmas); i++ {
		grams = append(grams, strings.Join(lemmas[i:i+n], " "))
	}
	return countFreqs(grams)
}

func truncate(pairs []WordCount, n int) []WordCount {
	if n >= 0 && len(pairs) > n {
		return pairs[:n]
	}
	return pairs
}

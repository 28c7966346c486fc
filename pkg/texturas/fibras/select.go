package fibras

import "sort"

// Mode selects which words become fibra threads.
type Mode int

const (
	// ModeSeeds traces only the user's seed words.
	ModeSeeds Mode = iota
	// ModeRecurrent traces the top-N corpus words.
	ModeRecurrent
	// ModePersistent traces the top-ranked words that appear in at least
	// two segments.
	ModePersistent
)

func (m Mode) String() string {
	switch m {
	case ModeSeeds:
		return "seeds"
	case ModeRecurrent:
		return "recurrent"
	case ModePersistent:
		return "persistent"
	}
	return "unknown"
}

// SortMode selects the primary ranking metric.
type SortMode int

const (
	ByFrequency SortMode = iota
	ByRelevance
)

func (s SortMode) String() string {
	if s == ByRelevance {
		return "relevance"
	}
	return "frequency"
}

type candidate struct {
	word string
	freq int
	rel  float64
}

// rank orders all corpus words by the chosen metric, breaking ties with
// the other metric and then alphabetically. Words missing from the
// relevance map score a baseline 1.
func rank(freq map[string]int, relevance map[string]float64, sortMode SortMode) []string {
	candidates := make([]candidate, 0, len(freq))
	for w, f := range freq {
		rel := relevance[w]
		if rel == 0 {
			rel = 1
		}
		candidates = append(candidates, candidate{word: w, freq: f, rel: rel})
	}

	if sortMode == ByRelevance {
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.rel != b.rel {
				return a.rel > b.rel
			}
			if a.freq != b.freq {
				return a.freq > b.freq
			}
			return a.word < b.word
		})
	} else {
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.freq != b.freq {
				return a.freq > b.freq
			}
			if a.rel != b.rel {
				return a.rel > b.rel
			}
			return a.word < b.word
		})
	}

	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}

// SelectWords picks the thread words for seed and recurrent modes.
// Persistent mode additionally needs the segment list and is handled by
// Compute.
func SelectWords(freq map[string]int, relevance map[string]float64, seeds []string, mode Mode, topN int, sortMode SortMode) []string {
	if mode == ModeSeeds {
		var out []string
		for _, w := range seeds {
			if freq[w] > 0 {
				out = append(out, w)
			}
		}
		return out
	}

	ranked := rank(freq, relevance, sortMode)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// selectPersistent keeps ranked words present in at least two segments,
// up to topN.
func selectPersistent(freq map[string]int, relevance map[string]float64, segments []Segment, topN int, sortMode SortMode) []string {
	var out []string
	for _, w := range rank(freq, relevance, sortMode) {
		segCount := 0
		for _, seg := range segments {
			if seg.Freq[w] > 0 {
				segCount++
			}
		}
		if segCount >= 2 {
			out = append(out, w)
		}
		if len(out) >= topN {
			break
		}
	}
	return out
}

package weave

import "github.com/epsidebox/texturas/pkg/texturas/analyze"

// PassageToken is one display token of an evidence passage.
type PassageToken struct {
	Surface   string
	Lemma     string
	Stop      bool
	Highlight bool
}

const maxPassages = 5

// FindPassages locates up to five text snippets where the two lemmas
// co-occur within win*3 content positions of each other. Each passage
// spans eight tokens of context on either side; overlapping hits on the
// same span are deduplicated.
func FindPassages(enriched []analyze.EnrichedToken, wordA, wordB string, win int) [][]PassageToken {
	var passages [][]PassageToken
	seen := make(map[[2]int]bool)

	for i := range enriched {
		if enriched[i].Stop {
			continue
		}
		if enriched[i].Lemma != wordA && enriched[i].Lemma != wordB {
			continue
		}
		isA := enriched[i].Lemma == wordA

		lo := i - win*3
		if lo < 0 {
			lo = 0
		}
		hi := i + win*3
		if hi > len(enriched)-1 {
			hi = len(enriched) - 1
		}
		for j := lo; j <= hi; j++ {
			if i == j || enriched[j].Stop {
				continue
			}
			if (isA && enriched[j].Lemma != wordB) || (!isA && enriched[j].Lemma != wordA) {
				continue
			}

			start := min(i, j) - 8
			if start < 0 {
				start = 0
			}
			end := max(i, j) + 9
			if end > len(enriched) {
				end = len(enriched)
			}
			span := [2]int{start, end}
			if seen[span] {
				continue
			}
			seen[span] = true

			passage := make([]PassageToken, 0, end-start)
			for p := start; p < end; p++ {
				passage = append(passage, PassageToken{
					Surface:   enriched[p].Surface,
					Lemma:     enriched[p].Lemma,
					Stop:      enriched[p].Stop,
					Highlight: enriched[p].Lemma == wordA || enriched[p].Lemma == wordB,
				})
			}
			passages = append(passages, passage)
			if len(passages) >= maxPassages {
				return passages
			}
		}
	}
	return passages
}

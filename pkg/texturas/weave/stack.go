package weave

import "sort"

// StackCell aggregates one term pair across a document stack.
type StackCell struct {
	DocCount   int
	Cooc       int
	Activation float64
	Proximity  float64
}

// Stack is the cross-document weave: per-pair aggregate cells plus the
// stack-wide maxima, floored at 1.
type Stack struct {
	Terms         []Term
	Cells         map[string]map[string]StackCell
	MaxCooc       int
	MaxActivation float64
	MaxProximity  float64
	DocCount      int
}

// UnionTerms merges the per-document weaves into a single term list:
// each seed appears once, each expanded word keeps the smallest hop
// distance observed in any document. Documents are visited in sorted ID
// order and seeds keep their first-encounter order, so the result is
// stable across runs.
func UnionTerms(perDoc map[string]*Weave) []Term {
	docIDs := make([]string, 0, len(perDoc))
	for id := range perDoc {
		docIDs = append(docIDs, id)
	}
	sort.Strings(docIDs)

	type entry struct {
		rel  Relation
		dist int
	}
	bySeed := make(map[string]map[string]entry)
	var seedOrder []string
	for _, id := range docIDs {
		wv := perDoc[id]
		if wv == nil {
			continue
		}
		for _, g := range wv.Groups {
			if _, ok := bySeed[g.Seed]; !ok {
				bySeed[g.Seed] = make(map[string]entry)
				seedOrder = append(seedOrder, g.Seed)
			}
			for _, e := range g.Expansions {
				prev, ok := bySeed[g.Seed][e.Word]
				if !ok || e.Distance < prev.dist {
					bySeed[g.Seed][e.Word] = entry{rel: e.Relation, dist: e.Distance}
				}
			}
		}
	}

	var terms []Term
	for _, seed := range seedOrder {
		terms = append(terms, Term{Word: seed, Relation: RelationSeed})
		exps := make([]Expansion, 0, len(bySeed[seed]))
		for w, e := range bySeed[seed] {
			exps = append(exps, Expansion{Word: w, Relation: e.rel, Distance: e.dist})
		}
		sort.Slice(exps, func(i, j int) bool {
			if exps[i].Distance != exps[j].Distance {
				return exps[i].Distance < exps[j].Distance
			}
			return exps[i].Word < exps[j].Word
		})
		for _, e := range exps {
			terms = append(terms, Term{Word: e.Word, Parent: seed, Relation: e.Relation, Distance: e.Distance})
		}
	}
	return terms
}

// ComputeStack sums each pair's co-occurrence, activation and proximity
// over all documents and counts how many documents co-occur the pair at
// all.
func ComputeStack(perDoc map[string]*Weave, terms []Term, totalDocs int) *Stack {
	words := make([]string, len(terms))
	for i, t := range terms {
		words[i] = t.Word
	}

	docIDs := make([]string, 0, len(perDoc))
	for id := range perDoc {
		docIDs = append(docIDs, id)
	}
	sort.Strings(docIDs)

	cells := make(map[string]map[string]StackCell, len(words))
	maxC, maxA, maxP := 0, 0.0, 0.0
	for _, a := range words {
		cells[a] = make(map[string]StackCell, len(words))
		for _, b := range words {
			var cell StackCell
			for _, id := range docIDs {
				wv := perDoc[id]
				if wv == nil {
					continue
				}
				if c := wv.Cooc.Count(a, b); c > 0 {
					cell.DocCount++
					cell.Cooc += c
				}
				cell.Activation += wv.Activation[a][b]
				cell.Proximity += wv.Proximity[a][b]
			}
			if cell.Cooc > maxC {
				maxC = cell.Cooc
			}
			if cell.Activation > maxA {
				maxA = cell.Activation
			}
			if cell.Proximity > maxP {
				maxP = cell.Proximity
			}
			cells[a][b] = cell
		}
	}
	if maxC == 0 {
		maxC = 1
	}
	if maxA == 0 {
		maxA = 1
	}
	if maxP == 0 {
		maxP = 1
	}

	return &Stack{
		Terms:         terms,
		Cells:         cells,
		MaxCooc:       maxC,
		MaxActivation: maxA,
		MaxProximity:  maxP,
		DocCount:      totalDocs,
	}
}

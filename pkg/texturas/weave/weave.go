// Package weave expands user-chosen seed words through the synset graph
// and computes pairwise co-occurrence, activation and semantic-proximity
// matrices over the expanded term set, for one document or across a
// document stack.
package weave

import (
	"sort"

	"github.com/epsidebox/texturas/pkg/texturas/activation"
	"github.com/epsidebox/texturas/pkg/texturas/cooc"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// Relation records how a term entered the weave.
type Relation int

const (
	RelationSeed Relation = iota
	RelationHypernym
	RelationHyponym
	RelationMeronym
)

func (r Relation) String() string {
	switch r {
	case RelationSeed:
		return "seed"
	case RelationHypernym:
		return "hypernym"
	case RelationHyponym:
		return "hyponym"
	case RelationMeronym:
		return "meronym"
	}
	return "unknown"
}

func relationOf(k lexres.RelationKind) Relation {
	switch k {
	case lexres.Hypernym:
		return RelationHypernym
	case lexres.Hyponym:
		return RelationHyponym
	default:
		return RelationMeronym
	}
}

// Expansion is one corpus word reached from a seed.
type Expansion struct {
	Word     string
	Relation Relation
	Distance int
}

// Group is one seed with its graph-expanded neighborhood.
type Group struct {
	Seed       string
	Expansions []Expansion
}

// Term is one row/column of a weave matrix: a seed (Parent empty,
// Distance 0) or an expanded word with its hop distance from the seed.
type Term struct {
	Word     string
	Parent   string
	Relation Relation
	Distance int
}

// Weave bundles the per-document matrices over the expanded term set.
// Maxima are floored at 1 so renderers can normalize without a zero
// division check.
type Weave struct {
	Terms         []Term
	Groups        []Group
	Cooc          cooc.Matrix
	Activation    map[string]map[string]float64
	Proximity     map[string]map[string]float64
	MaxCooc       int
	MaxActivation float64
}

// ExpandSeeds BFS-expands each seed through all three relation kinds up
// to depth hops, keeping only reached words that are corpus members.
// Expansions are sorted by (hop distance, word). Seeds absent from the
// corpus are skipped.
func ExpandSeeds(seeds []string, syn *lexres.Graph, pos *lexres.Tagger, freq map[string]int, depth int) []Group {
	tag := func(w string) string {
		if pos.State() == lexres.StateReady {
			return pos.Tag(w)
		}
		return lexres.TagNoun
	}

	var groups []Group
	for _, seed := range seeds {
		if _, ok := freq[seed]; !ok {
			continue
		}
		var exps []Expansion
		visited := map[string]bool{seed: true}
		type node struct{ word, tag string }
		front := []node{{word: seed, tag: tag(seed)}}

		for h := 1; h <= depth; h++ {
			var next []node
			for _, nd := range front {
				for _, rel := range syn.AllRelations(nd.word, nd.tag) {
					if visited[rel.Target] {
						continue
					}
					visited[rel.Target] = true
					if _, ok := freq[rel.Target]; ok {
						exps = append(exps, Expansion{
							Word:     rel.Target,
							Relation: relationOf(rel.Kind),
							Distance: h,
						})
					}
					next = append(next, node{word: rel.Target, tag: tag(rel.Target)})
				}
			}
			front = next
		}

		sort.Slice(exps, func(i, j int) bool {
			if exps[i].Distance != exps[j].Distance {
				return exps[i].Distance < exps[j].Distance
			}
			return exps[i].Word < exps[j].Word
		})
		groups = append(groups, Group{Seed: seed, Expansions: exps})
	}
	return groups
}

// Compute builds the weave for one document: the term list over all
// groups, a windowed co-occurrence sub-matrix, a symmetric activation
// matrix (max of the two directed pairwise activations) and a proximity
// matrix 1/(1+synsetDistance), 0 when unreachable.
func Compute(groups []Group, contentLemmas []string, freq map[string]int, act *activation.Engine, depth int, decay float64, flow activation.Flow, window int) *Weave {
	var terms []Term
	for _, g := range groups {
		terms = append(terms, Term{Word: g.Seed, Relation: RelationSeed})
		for _, e := range g.Expansions {
			terms = append(terms, Term{Word: e.Word, Parent: g.Seed, Relation: e.Relation, Distance: e.Distance})
		}
	}
	words := make([]string, len(terms))
	for i, t := range terms {
		words[i] = t.Word
	}

	coocMatrix := cooc.Build(contentLemmas, words, window)

	directed := make(map[string]map[string]float64, len(words))
	for _, w := range words {
		directed[w] = act.Pair(w, freq, depth, decay, flow)
	}
	activ := make(map[string]map[string]float64, len(words))
	for _, a := range words {
		activ[a] = make(map[string]float64, len(words))
		for _, b := range words {
			v := directed[a][b]
			if rv := directed[b][a]; rv > v {
				v = rv
			}
			activ[a][b] = v
		}
	}

	prox := make(map[string]map[string]float64, len(words))
	maxHops := depth * 2
	for _, a := range words {
		prox[a] = make(map[string]float64, len(words))
		for _, b := range words {
			if d := act.Distance(a, b, maxHops); d >= 0 {
				prox[a][b] = 1 / float64(1+d)
			} else {
				prox[a][b] = 0
			}
		}
	}

	maxC, maxA := 0, 0.0
	for _, a := range words {
		for _, b := range words {
			if a == b {
				continue
			}
			if c := coocMatrix.Count(a, b); c > maxC {
				maxC = c
			}
			if v := activ[a][b]; v > maxA {
				maxA = v
			}
		}
	}
	if maxC == 0 {
		maxC = 1
	}
	if maxA == 0 {
		maxA = 1
	}

	return &Weave{
		Terms:         terms,
		Groups:        groups,
		Cooc:          coocMatrix,
		Activation:    activ,
		Proximity:     prox,
		MaxCooc:       maxC,
		MaxActivation: maxA,
	}
}

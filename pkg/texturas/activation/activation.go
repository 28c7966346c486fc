// Package activation implements spreading activation and shortest-path
// queries over the synset graph: breadth-first traversals with geometric
// decay per hop.
package activation

import (
	"math"

	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// Flow selects which relation kinds a traversal follows.
type Flow int

const (
	// Up follows hypernyms only (toward broader concepts).
	Up Flow = iota
	// Down follows hyponyms only (toward narrower concepts).
	Down
	// Bidirectional follows hypernyms, hyponyms and meronyms.
	Bidirectional
)

func (f Flow) String() string {
	switch f {
	case Up:
		return "up"
	case Down:
		return "down"
	case Bidirectional:
		return "bidirectional"
	}
	return "unknown"
}

// targets maps the flow configuration to the relation lists it follows.
// The mapping is exhaustive over Flow values.
func (f Flow) targets(r lexres.Relations) []string {
	switch f {
	case Up:
		return r.Hypernyms
	case Down:
		return r.Hyponyms
	default:
		out := make([]string, 0, len(r.Hypernyms)+len(r.Hyponyms)+len(r.Meronyms))
		out = append(out, r.Hypernyms...)
		out = append(out, r.Hyponyms...)
		out = append(out, r.Meronyms...)
		return out
	}
}

// Engine runs traversals against a synset graph, using the POS tagger to
// resolve graph keys. Both resources may be unloaded; queries then fall
// back to the documented degraded behavior.
type Engine struct {
	syn *lexres.Graph
	pos *lexres.Tagger
}

// New creates an engine over the given resources.
func New(syn *lexres.Graph, pos *lexres.Tagger) *Engine {
	return &Engine{syn: syn, pos: pos}
}

func (e *Engine) tag(word string) string {
	if e.pos.State() == lexres.StateReady {
		return e.pos.Tag(word)
	}
	return lexres.TagNoun
}

type node struct {
	word string
	tag  string
}

// Spread computes the corpus-wide relevance map. Every corpus lemma
// starts at activation 1 regardless of its frequency; each lemma then
// propagates decay^h to graph nodes h hops away. Only corpus members
// accumulate score. A single seed never reaches the same node twice, but
// contributions from distinct seeds sum.
//
// With the graph unloaded this degenerates to {lemma: 1} for every corpus
// lemma, which is the designed fallback for missing resources.
func (e *Engine) Spread(freq map[string]int, depth int, decay float64, flow Flow) map[string]float64 {
	scores := make(map[string]float64, len(freq))
	for lemma := range freq {
		scores[lemma] = 1
	}
	if e.syn.State() != lexres.StateReady {
		return scores
	}

	for lemma, count := range freq {
		if count == 0 {
			continue
		}
		e.propagate(lemma, freq, scores, 1, depth, decay, flow)
	}
	return scores
}

// Pair computes activation from a single seed toward every other corpus
// word, scaled by the seed's frequency. Returns an empty map when the
// graph is unloaded or the seed is not in the corpus.
func (e *Engine) Pair(seed string, freq map[string]int, depth int, decay float64, flow Flow) map[string]float64 {
	if e.syn.State() != lexres.StateReady || freq[seed] == 0 {
		return map[string]float64{}
	}
	scores := make(map[string]float64)
	e.propagate(seed, freq, scores, float64(freq[seed]), depth, decay, flow)
	return scores
}

// propagate runs one BFS with per-hop decay from a single seed,
// accumulating scale*decay^h into scores for corpus members.
func (e *Engine) propagate(seed string, corpus map[string]int, scores map[string]float64, scale float64, depth int, decay float64, flow Flow) {
	front := []node{{word: seed, tag: e.tag(seed)}}
	visited := map[string]bool{seed: true}

	for h := 1; h <= depth; h++ {
		var next []node
		amt := scale * math.Pow(decay, float64(h))
		for _, nd := range front {
			rels := e.syn.Relations(nd.word, nd.tag)
			for _, t := range flow.targets(rels) {
				if visited[t] {
					continue
				}
				visited[t] = true
				if _, ok := corpus[t]; ok {
					scores[t] += amt
				}
				next = append(next, node{word: t, tag: e.tag(t)})
			}
		}
		front = next
	}
}

// Distance returns the synset-graph hop count from a to b following all
// three relation kinds, 0 when a equals b, or -1 when b is unreachable
// within maxHops or the graph is unloaded.
func (e *Engine) Distance(a, b string, maxHops int) int {
	if a == b {
		return 0
	}
	if e.syn.State() != lexres.StateReady {
		return -1
	}
	front := []node{{word: a, tag: e.tag(a)}}
	visited := map[string]bool{a: true}

	for h := 1; h <= maxHops; h++ {
		var next []node
		for _, nd := range front {
			rels := e.syn.Relations(nd.word, nd.tag)
			for _, t := range Bidirectional.targets(rels) {
				if t == b {
					return h
				}
				if visited[t] {
					continue
				}
				visited[t] = true
				next = append(next, node{word: t, tag: e.tag(t)})
			}
		}
		front = next
	}
	return -1
}

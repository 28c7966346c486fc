package lexres

// RelationKind tags one edge kind of the synset graph.
type RelationKind int

const (
	Hypernym RelationKind = iota // is-a, broader
	Hyponym                      // is-a, narrower
	Meronym                      // part-of
)

func (k RelationKind) String() string {
	switch k {
	case Hypernym:
		return "hypernym"
	case Hyponym:
		return "hyponym"
	case Meronym:
		return "meronym"
	}
	return "unknown"
}

// Relations holds the outgoing synset edges of one lemma#pos node.
type Relations struct {
	Hypernyms []string `yaml:"hypernyms"`
	Hyponyms  []string `yaml:"hyponyms"`
	Meronyms  []string `yaml:"meronyms"`
}

// TaggedRelation is one synset edge with its kind, as produced by
// AllRelations for traversals that need to record how a word was reached.
type TaggedRelation struct {
	Target string
	Kind   RelationKind
}

// Graph is the WordNet-style synset graph keyed by "lemma#pos".
type Graph struct {
	entries map[string]Relations
	state   State
}

// NewGraph creates an unloaded graph. Unloaded graphs answer every query
// with empty relation sets.
func NewGraph() *Graph {
	return &Graph{}
}

// Load installs the relation entries and marks the graph ready.
func (g *Graph) Load(entries map[string]Relations) {
	g.entries = entries
	g.state = StateReady
}

// State reports resource availability.
func (g *Graph) State() State {
	return g.state
}

// Relations returns the outgoing edges for a (lemma, tag) pair. Missing
// entries yield empty slices.
func (g *Graph) Relations(lemma, tag string) Relations {
	if g.state != StateReady {
		return Relations{}
	}
	return g.entries[lemma+"#"+tag]
}

// AllRelations returns every outgoing edge tagged with its kind, in the
// fixed order hypernyms, hyponyms, meronyms.
func (g *Graph) AllRelations(lemma, tag string) []TaggedRelation {
	r := g.Relations(lemma, tag)
	out := make([]TaggedRelation, 0, len(r.Hypernyms)+len(r.Hyponyms)+len(r.Meronyms))
	for _, t := range r.Hypernyms {
		out = append(out, TaggedRelation{Target: t, Kind: Hypernym})
	}
	for _, t := range r.Hyponyms {
		out = append(out, TaggedRelation{Target: t, Kind: Hyponym})
	}
	for _, t := range r.Meronyms {
		out = append(out, TaggedRelation{Target: t, Kind: Meronym})
	}
	return out
}

package lexres

import "strings"

// Tagger assigns a coarse POS tag (n/v/a/r) to a Spanish word.
// Hybrid: lookup table first, suffix rules as fallback, noun as default.
type Tagger struct {
	lookup map[string]string
	state  State
}

// Spanish POS suffix rules, tried in order. Fallback only: the lookup
// table wins whenever it has an entry.
var suffixRules = [][2]string{
	// Nouns
	{"ción", TagNoun}, {"sión", TagNoun}, {"miento", TagNoun}, {"idad", TagNoun}, {"dad", TagNoun},
	{"eza", TagNoun}, {"anza", TagNoun}, {"encia", TagNoun}, {"ancia", TagNoun}, {"ismo", TagNoun},
	{"ista", TagNoun}, {"aje", TagNoun}, {"ura", TagNoun},
	// Verbs: gerund, participle, infinitive, imperfect
	{"ando", TagVerb}, {"iendo", TagVerb}, {"ado", TagVerb}, {"ido", TagVerb},
	{"ar", TagVerb}, {"er", TagVerb}, {"ir", TagVerb},
	{"aba", TagVerb}, {"ían", TagVerb}, {"aron", TagVerb}, {"ieron", TagVerb},
	// Adverbs
	{"mente", TagAdverb},
	// Adjectives
	{"oso", TagAdjective}, {"osa", TagAdjective}, {"ivo", TagAdjective}, {"iva", TagAdjective},
	{"ble", TagAdjective}, {"ante", TagAdjective}, {"ente", TagAdjective}, {"ual", TagAdjective},
	{"ico", TagAdjective}, {"ica", TagAdjective}, {"al", TagAdjective},
}

// NewTagger creates an unloaded tagger. Until Load is called, Tag returns
// the noun default for every word.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Load installs the lookup table (word to tag) and marks the tagger ready.
func (t *Tagger) Load(lookup map[string]string) {
	t.lookup = lookup
	t.state = StateReady
}

// State reports resource availability.
func (t *Tagger) State() State {
	return t.state
}

// Tag returns the POS tag for a word. Unloaded taggers always answer noun.
func (t *Tagger) Tag(word string) string {
	if t.state != StateReady {
		return TagNoun
	}
	low := strings.ToLower(word)
	if tag, ok := t.lookup[low]; ok {
		return tag
	}
	for _, rule := range suffixRules {
		if len(low) > len(rule[0]) && strings.HasSuffix(low, rule[0]) {
			return rule[1]
		}
	}
	return TagNoun
}

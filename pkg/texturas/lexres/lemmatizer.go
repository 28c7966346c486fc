package lexres

import "strings"

// Lemmatizer is a pure lookup table mapping inflected forms to dictionary
// lemmas. POS-informed: tries "word#pos" first, then the plain word.
// Unknown words come back unchanged; there is no suffix stripping.
type Lemmatizer struct {
	lookup map[string]string
	state  State
}

// NewLemmatizer creates an unloaded lemmatizer.
func NewLemmatizer() *Lemmatizer {
	return &Lemmatizer{}
}

// Load installs the lookup table. Keys are either plain lowercase forms
// ("caminos") or POS-qualified forms ("bajo#v").
func (l *Lemmatizer) Load(lookup map[string]string) {
	l.lookup = lookup
	l.state = StateReady
}

// State reports resource availability.
func (l *Lemmatizer) State() State {
	return l.state
}

// Lemmatize returns the lemma for a (word, tag) pair, or the lowercased
// word itself when no entry exists or the table is unloaded.
func (l *Lemmatizer) Lemmatize(word, tag string) string {
	low := strings.ToLower(word)
	if l.state != StateReady {
		return low
	}
	if lemma, ok := l.lookup[low+"#"+tag]; ok {
		return lemma
	}
	if lemma, ok := l.lookup[low]; ok {
		return lemma
	}
	return low
}

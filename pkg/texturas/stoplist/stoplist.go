package stoplist

import "strings"

// Manager holds the Spanish stop-word and negation sets.
//
// Stop words are matched against lemmas (and surface forms, since unknown
// words lemmatize to themselves). Negations are matched against surface
// forms only and are always stop words as well.
type Manager struct {
	stops     map[string]struct{}
	negations map[string]struct{}
}

// NewManager creates a manager with the default Spanish lists.
func NewManager() *Manager {
	m := &Manager{
		stops:     make(map[string]struct{}, len(spanishStops)),
		negations: make(map[string]struct{}, len(spanishNegations)),
	}
	for _, w := range spanishStops {
		m.stops[w] = struct{}{}
	}
	for _, w := range spanishNegations {
		m.negations[w] = struct{}{}
	}
	return m
}

// IsStop checks whether a lemma or surface form is a stop word.
func (m *Manager) IsStop(word string) bool {
	_, ok := m.stops[strings.ToLower(word)]
	return ok
}

// IsNegation checks whether a surface form is a negation marker.
func (m *Manager) IsNegation(surface string) bool {
	_, ok := m.negations[strings.ToLower(surface)]
	return ok
}

// Add adds a word to the stop list.
func (m *Manager) Add(word string) {
	m.stops[strings.ToLower(word)] = struct{}{}
}

// Remove removes a word from the stop list.
func (m *Manager) Remove(word string) {
	delete(m.stops, strings.ToLower(word))
}

// All returns all stop words.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	return result
}

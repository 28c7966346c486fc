package cooc

import "testing"

func TestBuildSymmetry(t *testing.T) {
	lemmas := []string{"gato", "comer", "perro", "comer", "gato", "casa"}
	vocab := []string{"gato", "comer", "perro", "casa"}
	m := Build(lemmas, vocab, 2)

	for _, a := range vocab {
		for _, b := range vocab {
			if m.Count(a, b) != m.Count(b, a) {
				t.Errorf("cooc[%s][%s] = %d but cooc[%s][%s] = %d",
					a, b, m.Count(a, b), b, a, m.Count(b, a))
			}
		}
	}
}

func TestBuildWindow(t *testing.T) {
	lemmas := []string{"gato", "comer", "x", "x", "x", "x", "perro"}
	vocab := []string{"gato", "comer", "perro"}
	m := Build(lemmas, vocab, 2)

	if got := m.Count("gato", "comer"); got != 1 {
		t.Errorf("adjacent pair count = %d, want 1", got)
	}
	if got := m.Count("gato", "perro"); got != 0 {
		t.Errorf("out-of-window pair count = %d, want 0", got)
	}
}

func TestBuildNoSelfPairs(t *testing.T) {
	lemmas := []string{"gato", "gato", "gato"}
	m := Build(lemmas, []string{"gato"}, 5)

	// Repeated occurrences of the same lemma do co-occur with each other
	// (distinct positions), but a position never pairs with itself.
	if got := m.Count("gato", "gato"); got != 6 {
		t.Errorf("repeated-lemma count = %d, want 6", got)
	}
}

func TestBuildRestrictedVocab(t *testing.T) {
	lemmas := []string{"gato", "fuera", "comer"}
	m := Build(lemmas, []string{"gato", "comer"}, 5)

	if _, ok := m["fuera"]; ok {
		t.Error("non-vocabulary lemma present in matrix")
	}
	if got := m.Count("gato", "comer"); got != 1 {
		t.Errorf("vocab pair count = %d, want 1", got)
	}
}

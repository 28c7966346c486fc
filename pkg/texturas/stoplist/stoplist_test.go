package stoplist

import "testing"

func TestIsStop(t *testing.T) {
	m := NewManager()

	stops := []string{"el", "de", "ser", "no", "El", "SEGÚN"}
	for _, w := range stops {
		if !m.IsStop(w) {
			t.Errorf("IsStop(%q) = false, want true", w)
		}
	}
	content := []string{"gato", "comer", "perro", "casa"}
	for _, w := range content {
		if m.IsStop(w) {
			t.Errorf("IsStop(%q) = true, want false", w)
		}
	}
}

func TestIsNegation(t *testing.T) {
	m := NewManager()

	if !m.IsNegation("no") || !m.IsNegation("nunca") || !m.IsNegation("sin") {
		t.Error("negation markers not recognized")
	}
	if m.IsNegation("gato") {
		t.Error("content word flagged as negation")
	}
	// Every negation marker must also count as a stop word.
	for _, w := range spanishNegations {
		if !m.IsStop(w) && !m.IsNegation(w) {
			t.Errorf("negation %q is neither stop nor negation", w)
		}
	}
}

func TestAddRemove(t *testing.T) {
	m := NewManager()
	m.Add("texto")
	if !m.IsStop("texto") {
		t.Error("added word not recognized as stop")
	}
	m.Remove("texto")
	if m.IsStop("texto") {
		t.Error("removed word still recognized as stop")
	}
}

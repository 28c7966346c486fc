package community

import (
	"testing"

	"github.com/epsidebox/texturas/pkg/texturas/cooc"
)

func matrixOf(pairs map[[2]string]int) cooc.Matrix {
	m := cooc.Matrix{}
	add := func(a, b string, w int) {
		if m[a] == nil {
			m[a] = map[string]int{}
		}
		m[a][b] = w
	}
	for p, w := range pairs {
		add(p[0], p[1], w)
		add(p[1], p[0], w)
	}
	return m
}

func TestDetectEmptyVocab(t *testing.T) {
	if got := Detect(nil, cooc.Matrix{}); len(got) != 0 {
		t.Errorf("empty vocab produced %v", got)
	}
}

func TestDetectNoEdges(t *testing.T) {
	vocab := []string{"gato", "perro", "casa"}
	got := Detect(vocab, cooc.Matrix{})
	for _, w := range vocab {
		if got[w] != 0 {
			t.Errorf("community(%s) = %d, want 0 in edgeless graph", w, got[w])
		}
	}
}

func TestDetectTwoCliques(t *testing.T) {
	// Two dense cliques joined by a single weak edge should split into
	// two communities.
	vocab := []string{"a1", "a2", "a3", "b1", "b2", "b3"}
	m := matrixOf(map[[2]string]int{
		{"a1", "a2"}: 10, {"a1", "a3"}: 10, {"a2", "a3"}: 10,
		{"b1", "b2"}: 10, {"b1", "b3"}: 10, {"b2", "b3"}: 10,
		{"a3", "b1"}: 1,
	})
	got := Detect(vocab, m)

	if got["a1"] != got["a2"] || got["a2"] != got["a3"] {
		t.Errorf("clique A split: %v", got)
	}
	if got["b1"] != got["b2"] || got["b2"] != got["b3"] {
		t.Errorf("clique B split: %v", got)
	}
	if got["a1"] == got["b1"] {
		t.Errorf("cliques merged: %v", got)
	}
}

func TestDetectDenseRenumbering(t *testing.T) {
	vocab := []string{"a1", "a2", "b1", "b2"}
	m := matrixOf(map[[2]string]int{
		{"a1", "a2"}: 5,
		{"b1", "b2"}: 5,
	})
	got := Detect(vocab, m)

	seen := map[int]bool{}
	maxID := 0
	for _, id := range got {
		if id < 0 {
			t.Fatalf("negative community id in %v", got)
		}
		seen[id] = true
		if id > maxID {
			maxID = id
		}
	}
	for id := 0; id <= maxID; id++ {
		if !seen[id] {
			t.Errorf("community ids not dense: %v", got)
		}
	}
	if got["a1"] != 0 {
		t.Errorf("first word should land in community 0: %v", got)
	}
}

func TestDetectDeterministic(t *testing.T) {
	vocab := []string{"a", "b", "c", "d", "e"}
	m := matrixOf(map[[2]string]int{
		{"a", "b"}: 3, {"b", "c"}: 3, {"c", "d"}: 2, {"d", "e"}: 4,
	})
	first := Detect(vocab, m)
	for i := 0; i < 10; i++ {
		if got := Detect(vocab, m); len(got) != len(first) {
			t.Fatal("nondeterministic size")
		} else {
			for w, id := range first {
				if got[w] != id {
					t.Fatalf("nondeterministic assignment for %s", w)
				}
			}
		}
	}
}

package texturas

import (
	"context"
	"errors"
	"testing"

	"github.com/epsidebox/texturas/pkg/texturas/config"
	"github.com/epsidebox/texturas/pkg/texturas/internalerr"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

func testResources() Resources {
	lem := lexres.NewLemmatizer()
	lem.Load(map[string]string{
		"come":  "comer",
		"comen": "comer",
		"gatos": "gato",
	})

	syn := lexres.NewGraph()
	syn.Load(map[string]lexres.Relations{
		"gato#n":   {Hypernyms: []string{"felino"}},
		"felino#n": {Hypernyms: []string{"animal"}},
		"perro#n":  {Hypernyms: []string{"animal"}},
	})

	sent := lexres.NewScorer()
	sent.LoadVAD(map[string]lexres.VAD{
		"gato": {Valence: 0.8, Arousal: 0.4},
	})

	return Resources{Lemmatizer: lem, Synsets: syn, Sentiment: sent}
}

func TestEngineEndToEnd(t *testing.T) {
	ctx := context.Background()
	eng, err := New(Options{Resources: testResources()})
	if err != nil {
		t.Fatal(err)
	}

	id, err := eng.AddDocument(ctx, "prueba",
		"El gato come. El perro come. El gato y el felino duermen. El gato salta.")
	if err != nil {
		t.Fatal(err)
	}

	doc, err := eng.Document(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Result == nil {
		t.Fatal("analysis result not cached")
	}
	if doc.Result.Frequencies["gato"] != 3 {
		t.Errorf("freq(gato) = %d, want 3", doc.Result.Frequencies["gato"])
	}

	// felino collects activation from gato's hypernym edge on top of its
	// own baseline.
	if doc.Result.Relevance["felino"] <= 1 {
		t.Errorf("relevance(felino) = %f, want > 1", doc.Result.Relevance["felino"])
	}

	wv, err := eng.Weave(ctx, id, []string{"gato"})
	if err != nil {
		t.Fatal(err)
	}
	if len(wv.Terms) != 2 || wv.Terms[0].Word != "gato" || wv.Terms[1].Word != "felino" {
		t.Errorf("weave terms = %+v, want gato then its felino expansion", wv.Terms)
	}

	fib, err := eng.Fibras(ctx, id, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(fib.Words) == 0 || fib.Words[0] != "gato" {
		t.Errorf("fibras words = %v, want gato ranked first", fib.Words)
	}
	if len(fib.Segments) != eng.Params().SegmentCount {
		t.Errorf("got %d segments, want %d", len(fib.Segments), eng.Params().SegmentCount)
	}
}

func TestEngineStackWeave(t *testing.T) {
	ctx := context.Background()
	eng, err := New(Options{Resources: testResources()})
	if err != nil {
		t.Fatal(err)
	}

	for _, text := range []string{
		"El gato come pescado. El felino duerme.",
		"El gato juega. Un felino salvaje caza.",
	} {
		if _, err := eng.AddDocument(ctx, "doc", text); err != nil {
			t.Fatal(err)
		}
	}

	st, err := eng.StackWeave(ctx, []string{"gato"})
	if err != nil {
		t.Fatal(err)
	}
	if st.DocCount != 2 {
		t.Errorf("DocCount = %d, want 2", st.DocCount)
	}
	found := false
	for _, tm := range st.Terms {
		if tm.Word == "felino" && tm.Parent == "gato" {
			found = true
		}
	}
	if !found {
		t.Errorf("union terms missing felino expansion: %+v", st.Terms)
	}
	cell := st.Cells["gato"]["felino"]
	if cell.DocCount != 2 {
		t.Errorf("gato/felino co-occurs in %d docs, want 2", cell.DocCount)
	}
}

func TestEngineErrors(t *testing.T) {
	ctx := context.Background()
	eng, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := eng.Weave(ctx, "missing", []string{"gato"}); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Weave on missing doc: %v, want ErrNotFound", err)
	}
	if _, err := eng.StackWeave(ctx, []string{"gato"}); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("StackWeave without docs: %v, want ErrNotFound", err)
	}
	if _, err := eng.StackWeave(ctx, nil); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("StackWeave without seeds: %v, want ErrInvalidInput", err)
	}
	if _, err := eng.AddDocument(ctx, "t", ""); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("AddDocument with empty text: %v, want ErrInvalidInput", err)
	}
}

func TestEngineRejectsInvalidParams(t *testing.T) {
	p := config.Default()
	p.Decay = 2.0
	if _, err := New(Options{Params: p}); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}

func TestEnginePassages(t *testing.T) {
	ctx := context.Background()
	eng, err := New(Options{Resources: testResources()})
	if err != nil {
		t.Fatal(err)
	}

	id, err := eng.AddDocument(ctx, "p", "El gato persigue al perro por el jardín.")
	if err != nil {
		t.Fatal(err)
	}
	ps, err := eng.Passages(ctx, id, "gato", "perro")
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 1 {
		t.Fatalf("got %d passages, want 1", len(ps))
	}
}

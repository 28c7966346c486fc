package fibras

import (
	"math"
	"testing"

	"github.com/epsidebox/texturas/pkg/texturas/analyze"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

func word(lemma string, stop bool) analyze.EnrichedToken {
	return analyze.EnrichedToken{Token: analyze.Token{Surface: lemma, Lemma: lemma, Stop: stop}}
}

func contentStream(lemmas ...string) []analyze.EnrichedToken {
	out := make([]analyze.EnrichedToken, len(lemmas))
	for i, l := range lemmas {
		out[i] = word(l, false)
	}
	return out
}

func TestSegmentTextPartition(t *testing.T) {
	enriched := contentStream("a", "b", "c", "d", "e", "f", "g")
	segs := SegmentText(enriched, 3)

	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	// 7/3 = 2 per segment, remainder goes to the last one.
	if len(segs[0].Tokens) != 2 || len(segs[1].Tokens) != 2 || len(segs[2].Tokens) != 3 {
		t.Errorf("segment sizes = %d/%d/%d, want 2/2/3",
			len(segs[0].Tokens), len(segs[1].Tokens), len(segs[2].Tokens))
	}

	total := 0
	for _, seg := range segs {
		total += len(seg.Tokens)
	}
	if total != len(enriched) {
		t.Errorf("segments cover %d tokens, want all %d", total, len(enriched))
	}
}

func TestSegmentTextSkipsStops(t *testing.T) {
	enriched := []analyze.EnrichedToken{
		word("el", true), word("gato", false), word("de", true), word("perro", false),
	}
	segs := SegmentText(enriched, 2)
	if len(segs[0].Tokens) != 1 || segs[0].Tokens[0].Lemma != "gato" {
		t.Errorf("segment 0 = %+v, want only gato", segs[0].Tokens)
	}
	if segs[1].Freq["perro"] != 1 {
		t.Errorf("segment 1 freq = %v", segs[1].Freq)
	}
}

func TestSegmentTextMoreSegmentsThanTokens(t *testing.T) {
	segs := SegmentText(contentStream("a", "b"), 5)
	if len(segs) != 5 {
		t.Fatalf("got %d segments, want 5", len(segs))
	}
	total := 0
	for _, seg := range segs {
		total += len(seg.Tokens)
	}
	if total != 2 {
		t.Errorf("segments cover %d tokens, want 2", total)
	}
}

func TestSelectWordsSeedsMode(t *testing.T) {
	freq := map[string]int{"gato": 3, "perro": 1}
	got := SelectWords(freq, nil, []string{"perro", "dragón", "gato"}, ModeSeeds, 10, ByFrequency)
	if len(got) != 2 || got[0] != "perro" || got[1] != "gato" {
		t.Errorf("seeds mode = %v, want [perro gato] in seed order", got)
	}
}

func TestSelectWordsRanking(t *testing.T) {
	freq := map[string]int{"gato": 3, "perro": 3, "ratón": 1}
	rel := map[string]float64{"perro": 2.0, "gato": 1.0}

	byFreq := SelectWords(freq, rel, nil, ModeRecurrent, 2, ByFrequency)
	if byFreq[0] != "perro" || byFreq[1] != "gato" {
		t.Errorf("frequency sort = %v, want relevance then alphabet as tie break", byFreq)
	}

	byRel := SelectWords(freq, rel, nil, ModeRecurrent, 3, ByRelevance)
	if byRel[0] != "perro" {
		t.Errorf("relevance sort = %v, want perro first", byRel)
	}
	// gato and ratón both have relevance 1; gato wins on frequency.
	if byRel[1] != "gato" || byRel[2] != "ratón" {
		t.Errorf("relevance tie break = %v", byRel)
	}
}

func TestPersistentModeRequiresTwoSegments(t *testing.T) {
	// gato appears in both halves, perro only in the first.
	enriched := contentStream("gato", "perro", "casa", "gato", "luna", "sol")
	freq := map[string]int{"gato": 2, "perro": 1, "casa": 1, "luna": 1, "sol": 1}

	res := Compute(enriched, freq, nil, lexres.NewTable(), nil, 2, ModePersistent, 10, 0.5, ByFrequency)

	if len(res.Words) != 1 || res.Words[0] != "gato" {
		t.Errorf("persistent words = %v, want only gato", res.Words)
	}
}

func TestComputeSegDataEmbeddingBoost(t *testing.T) {
	vec := lexres.NewTable()
	vec.Load(2, map[string][]float32{
		"gato":   {1, 0},
		"felino": {1, 0.1},
		"luna":   {0, 1},
	})

	segs := SegmentText(contentStream("felino", "felino"), 1)
	data := ComputeSegData(segs, []string{"gato", "luna"}, vec, 0.5, nil)

	// gato is absent but felino (similarity > 0.4) is present twice.
	sim := vec.Similarity("gato", "felino")
	wantBoost := sim * 2 * 0.5
	if got := data[0]["gato"].Act; math.Abs(got-wantBoost) > 1e-9 {
		t.Errorf("boosted activation = %f, want %f", got, wantBoost)
	}
	// luna is orthogonal to felino, no boost.
	if got := data[0]["luna"].Act; got != 0 {
		t.Errorf("luna activation = %f, want 0", got)
	}
}

func TestComputeSegDataNoBoostWhenPresent(t *testing.T) {
	vec := lexres.NewTable()
	vec.Load(2, map[string][]float32{"gato": {1, 0}, "felino": {1, 0}})

	segs := SegmentText(contentStream("gato", "felino"), 1)
	data := ComputeSegData(segs, []string{"gato"}, vec, 0.5, map[string]float64{"gato": 2})

	// Present words keep their raw frequency, scaled into hybrid relevance.
	entry := data[0]["gato"]
	if entry.Freq != 1 || entry.Act != 1 {
		t.Errorf("entry = %+v, want freq 1 without boost", entry)
	}
	if entry.Rel != 2 {
		t.Errorf("hybrid relevance = %f, want globalRel 2 x localAct 1", entry.Rel)
	}
}

func TestComputeSegEmo(t *testing.T) {
	joyful := word("alegría", false)
	joyful.Emotions = lexres.EmotionSet{"joy": true}
	fearful := word("miedo", false)
	fearful.Emotions = lexres.EmotionSet{"fear": true, "anger": true}
	plain := word("mesa", false)

	segs := SegmentText([]analyze.EnrichedToken{joyful, fearful, plain, plain}, 1)
	emo := ComputeSegEmo(segs)

	if got := emo[0].Joy; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("joy = %f, want 1/4", got)
	}
	if got := emo[0].Fear; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("fear = %f, want 1/4", got)
	}
	if got := emo[0].Anger; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("anger = %f, want 1/4", got)
	}
	if emo[0].Sadness != 0 {
		t.Errorf("sadness = %f, want 0", emo[0].Sadness)
	}
}

func TestComputeSegAffect(t *testing.T) {
	pos, neg, aro := 0.6, -0.2, 0.8
	a := word("bueno", false)
	a.Polarity = &pos
	b := word("malo", false)
	b.Polarity = &neg
	b.Arousal = &aro
	c := word("mesa", false)

	segs := SegmentText([]analyze.EnrichedToken{a, b, c}, 1)
	polarity, arousal := ComputeSegAffect(segs)

	if got := polarity[0]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("mean polarity = %f, want 0.2", got)
	}
	if got := arousal[0]; math.Abs(got-0.8) > 1e-9 {
		t.Errorf("mean arousal = %f, want 0.8", got)
	}
}

func TestClusterByVecFallbacks(t *testing.T) {
	words := []string{"a", "b", "c"}

	// Unloaded table: everything in cluster 0.
	got := ClusterByVec(words, lexres.NewTable(), 3)
	for _, w := range words {
		if got[w] != 0 {
			t.Errorf("unloaded cluster(%s) = %d, want 0", w, got[w])
		}
	}

	// Fewer vectors than clusters: round-robin assignment.
	vec := lexres.NewTable()
	vec.Load(2, map[string][]float32{"a": {1, 0}})
	got = ClusterByVec(words, vec, 3)
	want := []int{0, 1, 2}
	for i, w := range words {
		if got[w] != want[i] {
			t.Errorf("round-robin cluster(%s) = %d, want %d", w, got[w], want[i])
		}
	}
}

func TestClusterByVecSeparatesGroups(t *testing.T) {
	vec := lexres.NewTable()
	vec.Load(2, map[string][]float32{
		"gato":   {1, 0},
		"perro":  {0.9, 0.1},
		"luna":   {0, 1},
		"sol":    {0.1, 0.9},
		"sinvec": nil,
	})
	words := []string{"gato", "perro", "luna", "sol", "sinvec"}

	got := ClusterByVec(words, vec, 2)

	if got["gato"] != got["perro"] {
		t.Error("gato and perro should share a cluster")
	}
	if got["luna"] != got["sol"] {
		t.Error("luna and sol should share a cluster")
	}
	if got["gato"] == got["luna"] {
		t.Error("animal and sky clusters should differ")
	}
	if got["sinvec"] != 0 {
		t.Errorf("word without vector in cluster %d, want 0", got["sinvec"])
	}
}

func TestComputeDefaultsAndMaxima(t *testing.T) {
	enriched := contentStream("gato", "gato", "perro", "luna")
	freq := map[string]int{"gato": 2, "perro": 1, "luna": 1}

	res := Compute(enriched, freq, nil, lexres.NewTable(), nil, 2, ModeRecurrent, 10, 0.5, ByFrequency)

	if len(res.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(res.Segments))
	}
	if res.MaxFreq != 2 {
		t.Errorf("MaxFreq = %d, want 2", res.MaxFreq)
	}
	if res.MaxRel != 1 {
		t.Errorf("MaxRel = %f, want baseline 1", res.MaxRel)
	}
	if res.MaxSegFreq != 2 {
		t.Errorf("MaxSegFreq = %f, want 2 (both gato in segment 0)", res.MaxSegFreq)
	}
	if res.Words[0] != "gato" {
		t.Errorf("words = %v, want gato ranked first", res.Words)
	}
	for _, w := range res.Words {
		if _, ok := res.Clusters[w]; !ok {
			t.Errorf("word %s missing from cluster map", w)
		}
	}
}

func TestComputeEmptyInput(t *testing.T) {
	res := Compute(nil, map[string]int{}, nil, lexres.NewTable(), nil, 3, ModeRecurrent, 10, 0.5, ByFrequency)
	if res.MaxFreq != 1 || res.MaxRel != 1 || res.MaxSegFreq != 1 || res.MaxSegRel != 1 {
		t.Errorf("maxima not floored at 1: %+v", res)
	}
	if len(res.Words) != 0 {
		t.Errorf("words = %v, want none", res.Words)
	}
}

package fibras

import (
	"github.com/epsidebox/texturas/pkg/texturas/analyze"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// Result bundles everything a fibras view needs: the selected thread
// words, the segment slices, per-segment scores and emotion profiles,
// affect curves, embedding clusters and the normalization maxima
// (floored at 1).
type Result struct {
	Words       []string
	Segments    []Segment
	SegData     []map[string]SegEntry
	SegEmotions []EmotionProfile
	SegPolarity []float64
	SegArousal  []float64
	Clusters    map[string]int

	MaxFreq    int
	MaxRel     float64
	MaxSegFreq float64
	MaxSegRel  float64
}

// Compute runs the full fibras flow: segment the token stream, select
// the thread words for the chosen mode, score them per segment and
// cluster them by embedding similarity. The cluster count adapts to the
// word count, between 3 and 8.
func Compute(enriched []analyze.EnrichedToken, freq map[string]int, relevance map[string]float64, vec *lexres.Table, seeds []string, segmentCount int, mode Mode, topN int, decay float64, sortMode SortMode) *Result {
	segments := SegmentText(enriched, segmentCount)

	var words []string
	if mode == ModePersistent {
		words = selectPersistent(freq, relevance, segments, topN, sortMode)
	} else {
		words = SelectWords(freq, relevance, seeds, mode, topN, sortMode)
	}

	segData := ComputeSegData(segments, words, vec, decay, relevance)
	segEmo := ComputeSegEmo(segments)
	segPol, segAro := ComputeSegAffect(segments)

	maxFreq := 0
	maxRel := 0.0
	for _, w := range words {
		if freq[w] > maxFreq {
			maxFreq = freq[w]
		}
		rel := relevance[w]
		if rel == 0 {
			rel = 1
		}
		if rel > maxRel {
			maxRel = rel
		}
	}
	maxSegFreq, maxSegRel := 0.0, 0.0
	for _, row := range segData {
		for _, w := range words {
			entry := row[w]
			if entry.Freq > maxSegFreq {
				maxSegFreq = entry.Freq
			}
			if entry.Rel > maxSegRel {
				maxSegRel = entry.Rel
			}
		}
	}
	if maxFreq == 0 {
		maxFreq = 1
	}
	if maxRel == 0 {
		maxRel = 1
	}
	if maxSegFreq == 0 {
		maxSegFreq = 1
	}
	if maxSegRel == 0 {
		maxSegRel = 1
	}

	k := len(words) / 4
	if k < 3 {
		k = 3
	}
	if k > 8 {
		k = 8
	}
	clusters := ClusterByVec(words, vec, k)

	return &Result{
		Words:       words,
		Segments:    segments,
		SegData:     segData,
		SegEmotions: segEmo,
		SegPolarity: segPol,
		SegArousal:  segAro,
		Clusters:    clusters,
		MaxFreq:     maxFreq,
		MaxRel:      maxRel,
		MaxSegFreq:  maxSegFreq,
		MaxSegRel:   maxSegRel,
	}
}

package fibras

import (
	"gonum.org/v1/gonum/stat"

	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// SegEntry is one word's presence in one segment. Freq and Act carry the
// embedding boost for absent-but-similar words; Rel is the global
// relevance scaled by local activation.
type SegEntry struct {
	Freq float64
	Rel  float64
	Act  float64
}

// similarityBoost is the minimum cosine similarity for an absent word to
// borrow presence from a segment member.
const similarityBoost = 0.4

// ComputeSegData scores every thread word against every segment. A word
// absent from a segment still registers when the embedding table knows a
// sufficiently similar word that is present, scaled by that word's
// segment frequency and the decay factor.
func ComputeSegData(segments []Segment, words []string, vec *lexres.Table, decay float64, relevance map[string]float64) []map[string]SegEntry {
	if decay == 0 {
		decay = 0.5
	}
	out := make([]map[string]SegEntry, 0, len(segments))
	for _, seg := range segments {
		row := make(map[string]SegEntry, len(words))
		for _, w := range words {
			baseFreq := float64(seg.Freq[w])

			boost := 0.0
			if baseFreq == 0 && vec.State() == lexres.StateReady {
				for lemma, count := range seg.Freq {
					sim := vec.Similarity(w, lemma)
					if sim > similarityBoost {
						if b := sim * float64(count) * decay; b > boost {
							boost = b
						}
					}
				}
			}

			localAct := baseFreq + boost
			globalRel := relevance[w]
			if globalRel == 0 {
				globalRel = 1
			}
			row[w] = SegEntry{
				Freq: localAct,
				Rel:  globalRel * localAct,
				Act:  localAct,
			}
		}
		out = append(out, row)
	}
	return out
}

// EmotionProfile is the per-segment share of tokens carrying each of the
// four charted emotions.
type EmotionProfile struct {
	Joy     float64
	Fear    float64
	Sadness float64
	Anger   float64
}

// ComputeSegEmo computes the emotion profile of each segment: the
// fraction of segment tokens annotated with each emotion.
func ComputeSegEmo(segments []Segment) []EmotionProfile {
	out := make([]EmotionProfile, 0, len(segments))
	for _, seg := range segments {
		var counts EmotionProfile
		for _, tok := range seg.Tokens {
			if tok.Emotions == nil {
				continue
			}
			if tok.Emotions["joy"] {
				counts.Joy++
			}
			if tok.Emotions["fear"] {
				counts.Fear++
			}
			if tok.Emotions["sadness"] {
				counts.Sadness++
			}
			if tok.Emotions["anger"] {
				counts.Anger++
			}
		}
		if n := float64(len(seg.Tokens)); n > 0 {
			counts.Joy /= n
			counts.Fear /= n
			counts.Sadness /= n
			counts.Anger /= n
		}
		out = append(out, counts)
	}
	return out
}

// ComputeSegAffect returns the mean polarity and mean arousal per
// segment, over the tokens that carry each score. Segments with no
// scored tokens get 0.
func ComputeSegAffect(segments []Segment) (polarity, arousal []float64) {
	polarity = make([]float64, len(segments))
	arousal = make([]float64, len(segments))
	for i, seg := range segments {
		var pols, aros []float64
		for _, tok := range seg.Tokens {
			if tok.Polarity != nil {
				pols = append(pols, *tok.Polarity)
			}
			if tok.Arousal != nil {
				aros = append(aros, *tok.Arousal)
			}
		}
		if len(pols) > 0 {
			polarity[i] = stat.Mean(pols, nil)
		}
		if len(aros) > 0 {
			arousal[i] = stat.Mean(aros, nil)
		}
	}
	return polarity, arousal
}

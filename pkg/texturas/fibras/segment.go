// Package fibras implements the narrative-thread engine: the document's
// content tokens are cut into equal segments and a selected word set is
// traced through them, with embedding-based presence boosts, per-segment
// emotion profiles and k-means word clusters.
package fibras

import "github.com/epsidebox/texturas/pkg/texturas/analyze"

// Segment is one slice of the document's content token stream.
type Segment struct {
	Index  int
	Tokens []analyze.EnrichedToken
	Freq   map[string]int
}

// SegmentText splits the non-stop word tokens into count equal segments.
// The last segment absorbs the division remainder. A count below 1 is
// treated as 1.
func SegmentText(enriched []analyze.EnrichedToken, count int) []Segment {
	if count < 1 {
		count = 1
	}
	var content []analyze.EnrichedToken
	for _, tok := range enriched {
		if !tok.Stop {
			content = append(content, tok)
		}
	}

	size := len(content) / count
	if size < 1 {
		size = 1
	}
	segments := make([]Segment, 0, count)
	for s := 0; s < count; s++ {
		start := s * size
		end := (s + 1) * size
		if s == count-1 {
			end = len(content)
		}
		if start > len(content) {
			start = len(content)
		}
		if end > len(content) {
			end = len(content)
		}
		tokens := content[start:end]
		freq := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			freq[tok.Lemma]++
		}
		segments = append(segments, Segment{Index: s, Tokens: tokens, Freq: freq})
	}
	return segments
}

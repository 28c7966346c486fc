package analyze

import (
	"github.com/epsidebox/texturas/pkg/texturas/activation"
	"github.com/epsidebox/texturas/pkg/texturas/ingest"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// A negation marker flips the polarity of the next negationWindow content
// tokens. Stop words inside the window consume a slot without flipping.
const negationWindow = 3

// Stage2 enriches the Stage-1 token stream with relevance, sentiment and
// community annotations, and reconstructs the paragraph structure.
// Stage-1 results are read-only input: re-running Stage 2 with different
// traversal parameters never mutates them.
func (p *Pipeline) Stage2(s1 *Stage1, depth int, decay float64, flow activation.Flow) *Result {
	relevance := p.act.Spread(s1.Frequencies, depth, decay, flow)
	maxRel := 0.0
	for _, v := range relevance {
		if v > maxRel {
			maxRel = v
		}
	}
	if maxRel == 0 {
		maxRel = 1
	}

	enriched := make([]EnrichedToken, 0, len(s1.Tokens))
	negWindow := 0
	for _, tok := range s1.Tokens {
		if tok.Kind != ingest.Word {
			continue
		}
		if tok.Negation {
			negWindow = negationWindow
		}

		var score lexres.Score
		if p.sent.State() == lexres.StateReady {
			score = p.sent.Score(tok.Lemma, tok.POS)
		}
		var polarity *float64
		if score.Polarity != nil {
			v := *score.Polarity
			polarity = &v
		}
		if negWindow > 0 && !tok.Stop && polarity != nil {
			*polarity = -*polarity
			negWindow--
		} else if !tok.Stop && negWindow > 0 {
			negWindow--
		}

		comm := -1
		if id, ok := s1.Communities[tok.Lemma]; ok {
			comm = id
		}
		enriched = append(enriched, EnrichedToken{
			Token:     tok,
			Relevance: relevance[tok.Lemma],
			Frequency: s1.Frequencies[tok.Lemma],
			Polarity:  polarity,
			Arousal:   score.Arousal,
			Emotions:  score.Emotions,
			Community: comm,
		})
	}

	return &Result{
		Enriched:       enriched,
		Paragraphs:     buildParagraphs(s1.Tokens, enriched),
		Frequencies:    s1.Frequencies,
		RelFrequencies: s1.RelFrequencies,
		FreqPairs:      s1.FreqPairs,
		TopWords:       s1.TopWords,
		Relevance:      relevance,
		MaxRelevance:   maxRel,
		Communities:    s1.Communities,
		Bigrams:        s1.Bigrams,
		Trigrams:       s1.Trigrams,
		ContentLemmas:  s1.ContentLemmas,
		MaxFreq:        s1.MaxFreq,
		TotalWords:     s1.TotalWords,
	}
}

// buildParagraphs groups the enriched word tokens back into paragraphs.
// Sentence separators collapse into a single spacer token inside nonempty
// paragraphs; symbol runs are carried through for display.
func buildParagraphs(tokens []Token, enriched []EnrichedToken) [][]EnrichedToken {
	paragraphs := [][]EnrichedToken{{}}
	wordIdx := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case ingest.ParagraphBreak:
			paragraphs = append(paragraphs, []EnrichedToken{})
		case ingest.Separator:
			last := len(paragraphs) - 1
			if len(paragraphs[last]) > 0 {
				paragraphs[last] = append(paragraphs[last], EnrichedToken{
					Token:     Token{Surface: " ", Lemma: " ", POS: "x", Stop: true, Kind: ingest.Separator},
					Community: -1,
				})
			}
		case ingest.Symbol:
			last := len(paragraphs) - 1
			paragraphs[last] = append(paragraphs[last], EnrichedToken{
				Token:     Token{Surface: tok.Surface, Lemma: tok.Surface, POS: "x", Stop: true, Kind: ingest.Symbol},
				Community: -1,
			})
		default:
			if wordIdx < len(enriched) {
				last := len(paragraphs) - 1
				paragraphs[last] = append(paragraphs[last], enriched[wordIdx])
				wordIdx++
			}
		}
	}
	return paragraphs
}

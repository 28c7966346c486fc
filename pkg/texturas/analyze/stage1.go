package analyze

import (
	"strings"

	"github.com/epsidebox/texturas/pkg/texturas/community"
	"github.com/epsidebox/texturas/pkg/texturas/cooc"
	"github.com/epsidebox/texturas/pkg/texturas/ingest"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// Stage1 tokenizes, lemmatizes and computes the per-corpus statistics:
// frequency map, relative frequencies, top-N vocabulary, windowed
// co-occurrence matrix, Louvain communities and n-grams.
func (p *Pipeline) Stage1(text string, topN, window int) *Stage1 {
	raw := p.tokenizer.Tokenize(text)

	tokens := make([]Token, 0, len(raw))
	paragraph := 0
	for _, rt := range raw {
		switch rt.Kind {
		case ingest.ParagraphBreak:
			paragraph++
			tokens = append(tokens, Token{Surface: rt.Surface, Lemma: rt.Surface, POS: "x", Stop: true, Kind: rt.Kind, Paragraph: paragraph})
		case ingest.Separator, ingest.Symbol:
			tokens = append(tokens, Token{Surface: rt.Surface, Lemma: rt.Surface, POS: "x", Stop: true, Kind: rt.Kind, Paragraph: paragraph})
		default:
			low := strings.ToLower(rt.Surface)
			tag := lexres.TagNoun
			if p.pos.State() == lexres.StateReady {
				tag = p.pos.Tag(low)
			}
			lemma := low
			if p.lem.State() == lexres.StateReady {
				lemma = p.lem.Lemmatize(low, tag)
			}
			neg := p.stops.IsNegation(low)
			stop := p.stops.IsStop(lemma) || p.stops.IsStop(low) || neg
			tokens = append(tokens, Token{
				Surface: rt.Surface, Lemma: lemma, POS: tag,
				Stop: stop, Negation: neg, Kind: rt.Kind, Paragraph: paragraph,
			})
		}
	}

	var contentLemmas []string
	totalWords := 0
	for _, tok := range tokens {
		if tok.Kind != ingest.Word {
			continue
		}
		totalWords++
		if !tok.Stop {
			contentLemmas = append(contentLemmas, tok.Lemma)
		}
	}

	freqPairs := countFreqs(contentLemmas)
	freqMap := make(map[string]int, len(freqPairs))
	for _, wc := range freqPairs {
		freqMap[wc.Word] = wc.Count
	}

	relFreq := make(map[string]float64, len(freqMap))
	if total := len(contentLemmas); total > 0 {
		for w, c := range freqMap {
			relFreq[w] = float64(c) / float64(total)
		}
	}

	topWords := truncate(freqPairs, topN)
	vocab := make([]string, len(topWords))
	for i, wc := range topWords {
		vocab[i] = wc.Word
	}

	coocMatrix := cooc.Build(contentLemmas, vocab, window)
	communities := community.Detect(vocab, coocMatrix)

	sentiments := make(map[string]lexres.Score)
	if p.sent.State() == lexres.StateReady {
		for _, wc := range topWords {
			tag := lexres.TagNoun
			if p.pos.State() == lexres.StateReady {
				tag = p.pos.Tag(wc.Word)
			}
			sentiments[wc.Word] = p.sent.Score(wc.Word, tag)
		}
	}

	maxFreq := 1
	if len(freqPairs) > 0 {
		maxFreq = freqPairs[0].Count
	}

	return &Stage1{
		Tokens:         tokens,
		ContentLemmas:  contentLemmas,
		Frequencies:    freqMap,
		RelFrequencies: relFreq,
		FreqPairs:      freqPairs,
		TopWords:       topWords,
		Cooc:           coocMatrix,
		Communities:    communities,
		Sentiments:     sentiments,
		Bigrams:        truncate(ngrams(contentLemmas, 2), topN),
		Trigrams:       truncate(ngrams(contentLemmas, 3), topN),
		MaxFreq:        maxFreq,
		ContentWords:   len(contentLemmas),
		TotalWords:     totalWords,
	}
}

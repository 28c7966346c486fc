package analyze

import (
	"github.com/epsidebox/texturas/pkg/texturas/cooc"
	"github.com/epsidebox/texturas/pkg/texturas/ingest"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
)

// Token is a fully annotated token after the Stage-1 lemmatization pass.
// Immutable once built.
type Token struct {
	Surface   string
	Lemma     string
	POS       string
	Stop      bool
	Negation  bool
	Kind      ingest.Kind
	Paragraph int
}

// WordCount pairs a word (or n-gram) with its frequency.
type WordCount struct {
	Word  string
	Count int
}

// Stage1 holds the per-corpus statistics of the first analysis stage.
// Stage 2 and the fibras engine read it repeatedly; it is never mutated
// after construction.
type Stage1 struct {
	Tokens         []Token
	ContentLemmas  []string
	Frequencies    map[string]int
	RelFrequencies map[string]float64
	FreqPairs      []WordCount
	TopWords       []WordCount
	Cooc           cooc.Matrix
	Communities    map[string]int
	Sentiments     map[string]lexres.Score
	Bigrams        []WordCount
	Trigrams       []WordCount
	MaxFreq        int
	ContentWords   int
	TotalWords     int
}

// EnrichedToken extends Token with the Stage-2 annotations. Polarity and
// Arousal are nil when no lexicon covers the lemma; Community is -1 for
// words outside the top-N vocabulary.
type EnrichedToken struct {
	Token
	Relevance float64
	Frequency int
	Polarity  *float64
	Arousal   *float64
	Emotions  lexres.EmotionSet
	Community int
}

// Result is the combined Stage-1 + Stage-2 output consumed by renderers,
// the weave aggregator and the fibras engine. Plain data, no behavior.
type Result struct {
	Enriched       []EnrichedToken
	Paragraphs     [][]EnrichedToken
	Frequencies    map[string]int
	RelFrequencies map[string]float64
	FreqPairs      []WordCount
	TopWords       []WordCount
	Relevance      map[string]float64
	MaxRelevance   float64
	Communities    map[string]int
	Bigrams        []WordCount
	Trigrams       []WordCount
	ContentLemmas  []string
	MaxFreq        int
	TotalWords     int
}

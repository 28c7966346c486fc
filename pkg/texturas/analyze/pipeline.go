// Package analyze implements the two-stage semantic analysis pipeline:
// Stage 1 produces frequency, co-occurrence and community statistics;
// Stage 2 enriches the token stream with relevance and sentiment.
package analyze

import (
	"fmt"

	"github.com/epsidebox/texturas/pkg/texturas/activation"
	"github.com/epsidebox/texturas/pkg/texturas/ingest"
	"github.com/epsidebox/texturas/pkg/texturas/internalerr"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
	"github.com/epsidebox/texturas/pkg/texturas/stoplist"
)

// Pipeline orchestrates the full analysis flow over a fixed set of
// lexical resources. All methods are pure computations; resources are
// read-only queries.
type Pipeline struct {
	tokenizer *ingest.Tokenizer
	stops     *stoplist.Manager
	pos       *lexres.Tagger
	lem       *lexres.Lemmatizer
	syn       *lexres.Graph
	sent      *lexres.Scorer
	act       *activation.Engine
}

// Options configures a pipeline. Nil resources are replaced with fresh
// unloaded instances so every query degrades instead of panicking.
type Options struct {
	Stoplist   *stoplist.Manager
	POS        *lexres.Tagger
	Lemmatizer *lexres.Lemmatizer
	Synsets    *lexres.Graph
	Sentiment  *lexres.Scorer
}

// NewPipeline creates a pipeline with the given resources.
func NewPipeline(opts Options) *Pipeline {
	if opts.Stoplist == nil {
		opts.Stoplist = stoplist.NewManager()
	}
	if opts.POS == nil {
		opts.POS = lexres.NewTagger()
	}
	if opts.Lemmatizer == nil {
		opts.Lemmatizer = lexres.NewLemmatizer()
	}
	if opts.Synsets == nil {
		opts.Synsets = lexres.NewGraph()
	}
	if opts.Sentiment == nil {
		opts.Sentiment = lexres.NewScorer()
	}
	return &Pipeline{
		tokenizer: ingest.NewTokenizer(),
		stops:     opts.Stoplist,
		pos:       opts.POS,
		lem:       opts.Lemmatizer,
		syn:       opts.Synsets,
		sent:      opts.Sentiment,
		act:       activation.New(opts.Synsets, opts.POS),
	}
}

// Activation exposes the pipeline's traversal engine for callers that
// need pairwise activation or synset distance (weave aggregation).
func (p *Pipeline) Activation() *activation.Engine {
	return p.act
}

// Synsets exposes the synset graph the pipeline traverses.
func (p *Pipeline) Synsets() *lexres.Graph {
	return p.syn
}

// POS exposes the part of speech tagger.
func (p *Pipeline) POS() *lexres.Tagger {
	return p.pos
}

// Analyze runs Stage 1 and Stage 2 in sequence. The single entry point
// for whole-document analysis.
func (p *Pipeline) Analyze(text string, topN, window, depth int, decay float64, flow activation.Flow) (*Result, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("top-n must be positive: %w", internalerr.ErrInvalidInput)
	}
	if decay <= 0 || decay >= 1 {
		return nil, fmt.Errorf("decay must be in (0,1): %w", internalerr.ErrInvalidInput)
	}
	s1 := p.Stage1(text, topN, window)
	return p.Stage2(s1, depth, decay, flow), nil
}

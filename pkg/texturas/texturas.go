// Package texturas is the semantic text analysis engine facade: it wires
// the lexical resources, the two-stage pipeline, the document store and
// the weave and fibras computations behind one API.
package texturas

import (
	"context"
	"fmt"

	"github.com/epsidebox/texturas/pkg/texturas/analyze"
	"github.com/epsidebox/texturas/pkg/texturas/config"
	"github.com/epsidebox/texturas/pkg/texturas/docstore"
	"github.com/epsidebox/texturas/pkg/texturas/fibras"
	"github.com/epsidebox/texturas/pkg/texturas/internalerr"
	"github.com/epsidebox/texturas/pkg/texturas/lexres"
	"github.com/epsidebox/texturas/pkg/texturas/stoplist"
	"github.com/epsidebox/texturas/pkg/texturas/weave"
)

// Resources bundles the lexical resources an engine runs on. Nil fields
// are replaced with fresh unloaded instances; every query then degrades
// gracefully instead of failing.
type Resources struct {
	Stoplist   *stoplist.Manager
	POS        *lexres.Tagger
	Lemmatizer *lexres.Lemmatizer
	Synsets    *lexres.Graph
	Sentiment  *lexres.Scorer
	Embeddings *lexres.Table
}

// Options configures an Engine.
type Options struct {
	Resources Resources
	Params    config.Params
}

// Engine is the main analysis facade.
type Engine struct {
	pipeline *analyze.Pipeline
	store    *docstore.Store
	vec      *lexres.Table
	params   config.Params
}

// New creates an engine. Zero-valued params are replaced with defaults.
func New(opts Options) (*Engine, error) {
	if opts.Params == (config.Params{}) {
		opts.Params = config.Default()
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if opts.Resources.Embeddings == nil {
		opts.Resources.Embeddings = lexres.NewTable()
	}
	return &Engine{
		pipeline: analyze.NewPipeline(analyze.Options{
			Stoplist:   opts.Resources.Stoplist,
			POS:        opts.Resources.POS,
			Lemmatizer: opts.Resources.Lemmatizer,
			Synsets:    opts.Resources.Synsets,
			Sentiment:  opts.Resources.Sentiment,
		}),
		store:  docstore.New(),
		vec:    opts.Resources.Embeddings,
		params: opts.Params,
	}, nil
}

// Params returns the engine's parameter set.
func (e *Engine) Params() config.Params {
	return e.params
}

// Analyze runs the full pipeline over a text. A panic from a malformed
// lexical resource is converted into ErrResourceContract instead of
// taking the caller down.
func (e *Engine) Analyze(ctx context.Context, text string) (res *analyze.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("analysis panic: %v: %w", r, internalerr.ErrResourceContract)
		}
	}()

	flow, err := e.params.ParseFlow()
	if err != nil {
		return nil, err
	}
	return e.pipeline.Analyze(text, e.params.TopN, e.params.WindowRadius,
		e.params.SynsetDepth, e.params.Decay, flow)
}

// AddDocument stores a text, analyzes it and caches the result.
func (e *Engine) AddDocument(ctx context.Context, title, text string) (string, error) {
	res, err := e.Analyze(ctx, text)
	if err != nil {
		return "", err
	}
	id, err := e.store.Add(ctx, title, text)
	if err != nil {
		return "", err
	}
	if err := e.store.SetResult(ctx, id, res); err != nil {
		return "", err
	}
	return id, nil
}

// Document returns a stored document with its cached analysis.
func (e *Engine) Document(ctx context.Context, id string) (docstore.Doc, error) {
	return e.store.Get(ctx, id)
}

// Documents lists all stored documents in insertion order.
func (e *Engine) Documents(ctx context.Context) []docstore.Doc {
	return e.store.List(ctx)
}

// RemoveDocument deletes a stored document.
func (e *Engine) RemoveDocument(ctx context.Context, id string) error {
	return e.store.Remove(ctx, id)
}

// Weave computes the seed-expansion matrices for one stored document.
func (e *Engine) Weave(ctx context.Context, docID string, seeds []string) (*weave.Weave, error) {
	doc, err := e.store.Get(ctx, docID)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seed words: %w", internalerr.ErrInvalidInput)
	}
	return e.weaveFor(doc, seeds), nil
}

func (e *Engine) weaveFor(doc docstore.Doc, seeds []string) *weave.Weave {
	res := doc.Result
	flow, _ := e.params.ParseFlow()
	groups := weave.ExpandSeeds(seeds, e.pipeline.Synsets(), e.pipeline.POS(),
		res.Frequencies, e.params.SynsetDepth)
	return weave.Compute(groups, res.ContentLemmas, res.Frequencies,
		e.pipeline.Activation(), e.params.SynsetDepth, e.params.Decay, flow,
		e.params.WindowRadius)
}

// StackWeave computes the cross-document weave over every stored
// document.
func (e *Engine) StackWeave(ctx context.Context, seeds []string) (*weave.Stack, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seed words: %w", internalerr.ErrInvalidInput)
	}
	docs := e.store.List(ctx)
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents loaded: %w", internalerr.ErrNotFound)
	}

	perDoc := make(map[string]*weave.Weave, len(docs))
	for _, doc := range docs {
		if doc.Result == nil {
			continue
		}
		perDoc[doc.ID] = e.weaveFor(doc, seeds)
	}
	terms := weave.UnionTerms(perDoc)
	return weave.ComputeStack(perDoc, terms, len(docs)), nil
}

// Passages finds evidence snippets for a term pair in a stored document.
func (e *Engine) Passages(ctx context.Context, docID, wordA, wordB string) ([][]weave.PassageToken, error) {
	doc, err := e.store.Get(ctx, docID)
	if err != nil {
		return nil, err
	}
	return weave.FindPassages(doc.Result.Enriched, wordA, wordB, e.params.WindowRadius), nil
}

// Fibras runs the narrative-thread engine over a stored document.
func (e *Engine) Fibras(ctx context.Context, docID string, seeds []string) (*fibras.Result, error) {
	doc, err := e.store.Get(ctx, docID)
	if err != nil {
		return nil, err
	}
	mode, err := e.params.ParseMode()
	if err != nil {
		return nil, err
	}
	sortMode, err := e.params.ParseSortMode()
	if err != nil {
		return nil, err
	}
	res := doc.Result
	return fibras.Compute(res.Enriched, res.Frequencies, res.Relevance, e.vec,
		seeds, e.params.SegmentCount, mode, e.params.TopN, e.params.Decay,
		sortMode), nil
}

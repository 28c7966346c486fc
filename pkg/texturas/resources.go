package texturas

import (
	"fmt"

	"github.com/epsidebox/texturas/pkg/texturas/lexres"
	"github.com/epsidebox/texturas/pkg/texturas/stoplist"
)

// ResourcePaths points at the lexical resource files. Every path is
// optional; missing resources leave the engine in its degraded mode for
// that concern.
type ResourcePaths struct {
	POS       string
	Lemmas    string
	Synsets   string
	Sentiment string
	Vectors   string
}

// LoadResources reads the resource files and returns a bundle ready for
// New. The stoplist always starts from the built-in Spanish lists.
func LoadResources(paths ResourcePaths) (Resources, error) {
	res := Resources{Stoplist: stoplist.NewManager()}

	var err error
	if paths.POS != "" {
		if res.POS, err = lexres.LoadTagger(paths.POS); err != nil {
			return Resources{}, fmt.Errorf("resources: %w", err)
		}
	}
	if paths.Lemmas != "" {
		if res.Lemmatizer, err = lexres.LoadLemmatizer(paths.Lemmas); err != nil {
			return Resources{}, fmt.Errorf("resources: %w", err)
		}
	}
	if paths.Synsets != "" {
		if res.Synsets, err = lexres.LoadGraph(paths.Synsets); err != nil {
			return Resources{}, fmt.Errorf("resources: %w", err)
		}
	}
	if paths.Sentiment != "" {
		if res.Sentiment, err = lexres.LoadScorer(paths.Sentiment); err != nil {
			return Resources{}, fmt.Errorf("resources: %w", err)
		}
	}
	if paths.Vectors != "" {
		if res.Embeddings, err = lexres.LoadTableText(paths.Vectors); err != nil {
			return Resources{}, fmt.Errorf("resources: %w", err)
		}
	}
	return res, nil
}

// Package config holds the analysis parameter set with its YAML loader
// and validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/epsidebox/texturas/pkg/texturas/activation"
	"github.com/epsidebox/texturas/pkg/texturas/fibras"
	"github.com/epsidebox/texturas/pkg/texturas/internalerr"
)

// Params is the tunable parameter set of an analysis run.
type Params struct {
	TopN          int     `yaml:"top_n"`
	SynsetDepth   int     `yaml:"synset_depth"`
	Decay         float64 `yaml:"decay"`
	Flow          string  `yaml:"flow"`
	WindowRadius  int     `yaml:"window_radius"`
	SegmentCount  int     `yaml:"segment_count"`
	SelectionMode string  `yaml:"selection_mode"`
	SortMode      string  `yaml:"sort_mode"`
}

// Default returns the standard parameter set.
func Default() Params {
	return Params{
		TopN:          25,
		SynsetDepth:   2,
		Decay:         0.5,
		Flow:          "bidirectional",
		WindowRadius:  5,
		SegmentCount:  10,
		SelectionMode: "recurrent",
		SortMode:      "frequency",
	}
}

// Load reads a parameter file. Fields absent from the file keep their
// default values.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.TopN <= 0 {
		return fmt.Errorf("top_n must be positive: %w", internalerr.ErrInvalidConfig)
	}
	if p.SynsetDepth < 1 {
		return fmt.Errorf("synset_depth must be at least 1: %w", internalerr.ErrInvalidConfig)
	}
	if p.Decay <= 0 || p.Decay >= 1 {
		return fmt.Errorf("decay must be in (0,1): %w", internalerr.ErrInvalidConfig)
	}
	if p.WindowRadius < 1 {
		return fmt.Errorf("window_radius must be at least 1: %w", internalerr.ErrInvalidConfig)
	}
	if p.SegmentCount < 1 {
		return fmt.Errorf("segment_count must be at least 1: %w", internalerr.ErrInvalidConfig)
	}
	if _, err := p.ParseFlow(); err != nil {
		return err
	}
	if _, err := p.ParseMode(); err != nil {
		return err
	}
	if _, err := p.ParseSortMode(); err != nil {
		return err
	}
	return nil
}

// ParseFlow resolves the flow name to a traversal direction.
func (p Params) ParseFlow() (activation.Flow, error) {
	switch p.Flow {
	case "up":
		return activation.Up, nil
	case "down":
		return activation.Down, nil
	case "bidirectional", "":
		return activation.Bidirectional, nil
	}
	return 0, fmt.Errorf("unknown flow %q: %w", p.Flow, internalerr.ErrInvalidConfig)
}

// ParseMode resolves the word selection mode.
func (p Params) ParseMode() (fibras.Mode, error) {
	switch p.SelectionMode {
	case "seeds":
		return fibras.ModeSeeds, nil
	case "recurrent", "":
		return fibras.ModeRecurrent, nil
	case "persistent":
		return fibras.ModePersistent, nil
	}
	return 0, fmt.Errorf("unknown selection_mode %q: %w", p.SelectionMode, internalerr.ErrInvalidConfig)
}

// ParseSortMode resolves the ranking metric.
func (p Params) ParseSortMode() (fibras.SortMode, error) {
	switch p.SortMode {
	case "frequency", "":
		return fibras.ByFrequency, nil
	case "relevance":
		return fibras.ByRelevance, nil
	}
	return 0, fmt.Errorf("unknown sort_mode %q: %w", p.SortMode, internalerr.ErrInvalidConfig)
}

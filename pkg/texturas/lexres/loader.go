package lexres

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML file shapes for the lexical resource tables. These are thin
// interface-level loaders; asset fetching and caching live with the host.

type posFile struct {
	Tags map[string]string `yaml:"tags"`
}

type lemmaFile struct {
	Lemmas map[string]string `yaml:"lemmas"`
}

type synsetFile struct {
	Entries map[string]Relations `yaml:"entries"`
}

type sentimentFile struct {
	EmoLex    map[string][]string           `yaml:"emolex"`
	Intensity map[string]map[string]float64 `yaml:"intensity"`
	VAD       map[string]VAD                `yaml:"vad"`
	SWN       map[string]SWN                `yaml:"swn"`
}

// LoadTagger reads a POS lookup table from a YAML file.
func LoadTagger(path string) (*Tagger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pos lexicon: %w", err)
	}
	var f posFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load pos lexicon: %w", err)
	}
	t := NewTagger()
	t.Load(f.Tags)
	return t, nil
}

// LoadLemmatizer reads a lemma lookup table from a YAML file.
func LoadLemmatizer(path string) (*Lemmatizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lemma table: %w", err)
	}
	var f lemmaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load lemma table: %w", err)
	}
	l := NewLemmatizer()
	l.Load(f.Lemmas)
	return l, nil
}

// LoadGraph reads the synset graph from a YAML file keyed by "lemma#pos".
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load synset graph: %w", err)
	}
	var f synsetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load synset graph: %w", err)
	}
	g := NewGraph()
	g.Load(f.Entries)
	return g, nil
}

// LoadScorer reads the sentiment lexicons from a single YAML file. Any
// subset of the four sections may be present.
func LoadScorer(path string) (*Scorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sentiment lexicons: %w", err)
	}
	var f sentimentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load sentiment lexicons: %w", err)
	}
	s := NewScorer()
	if f.EmoLex != nil {
		emolex := make(map[string]EmotionSet, len(f.EmoLex))
		for lemma, names := range f.EmoLex {
			set := make(EmotionSet, len(names))
			for _, n := range names {
				set[n] = true
			}
			emolex[lemma] = set
		}
		s.LoadEmoLex(emolex)
	}
	if f.Intensity != nil {
		s.LoadIntensity(f.Intensity)
	}
	if f.VAD != nil {
		s.LoadVAD(f.VAD)
	}
	if f.SWN != nil {
		s.LoadSentiWordNet(f.SWN)
	}
	return s, nil
}

// LoadTableText reads embeddings in word2vec text format: one word per
// line followed by its vector components, whitespace separated. The
// dimensionality is taken from the first line.
func LoadTableText(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load embeddings: %w", err)
	}
	defer f.Close()

	vecs := make(map[string][]float32)
	dim := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if dim == 0 {
			dim = len(fields) - 1
		}
		if len(fields)-1 != dim {
			return nil, fmt.Errorf("load embeddings: inconsistent dimension for %q", fields[0])
		}
		vec := make([]float32, dim)
		for i, fv := range fields[1:] {
			v, err := strconv.ParseFloat(fv, 32)
			if err != nil {
				return nil, fmt.Errorf("load embeddings: word %q: %w", fields[0], err)
			}
			vec[i] = float32(v)
		}
		vecs[fields[0]] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load embeddings: %w", err)
	}
	t := NewTable()
	t.Load(dim, vecs)
	return t, nil
}

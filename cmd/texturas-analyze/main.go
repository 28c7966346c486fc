package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/epsidebox/texturas/pkg/texturas"
	"github.com/epsidebox/texturas/pkg/texturas/config"
)

type wordJSON struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Relevance float64 `json:"relevance"`
	Community int     `json:"community"`
}

type report struct {
	TotalWords   int        `json:"total_words"`
	ContentWords int        `json:"content_words"`
	Paragraphs   int        `json:"paragraphs"`
	TopWords     []wordJSON `json:"top_words"`
	Bigrams      []string   `json:"bigrams"`
	Trigrams     []string   `json:"trigrams"`
}

func main() {
	// A .env file can preset the resource paths.
	_ = godotenv.Load()

	var (
		input     = flag.String("input", "", "Path to UTF-8 text file (required)")
		paramsCfg = flag.String("params", "", "Optional params YAML file")
		posPath   = flag.String("pos", os.Getenv("TEXTURAS_POS"), "POS lexicon YAML")
		lemPath   = flag.String("lemmas", os.Getenv("TEXTURAS_LEMMAS"), "Lemma table YAML")
		synPath   = flag.String("synsets", os.Getenv("TEXTURAS_SYNSETS"), "Synset graph YAML")
		sentPath  = flag.String("sentiment", os.Getenv("TEXTURAS_SENTIMENT"), "Sentiment lexicons YAML")
		vecPath   = flag.String("vectors", os.Getenv("TEXTURAS_VECTORS"), "Embeddings in word2vec text format")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	params := config.Default()
	if *paramsCfg != "" {
		var err error
		if params, err = config.Load(*paramsCfg); err != nil {
			log.Fatalf("load params: %v", err)
		}
	}

	resources, err := texturas.LoadResources(texturas.ResourcePaths{
		POS:       *posPath,
		Lemmas:    *lemPath,
		Synsets:   *synPath,
		Sentiment: *sentPath,
		Vectors:   *vecPath,
	})
	if err != nil {
		log.Fatalf("load resources: %v", err)
	}

	text, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	eng, err := texturas.New(texturas.Options{Resources: resources, Params: params})
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}

	res, err := eng.Analyze(context.Background(), string(text))
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	rep := report{
		TotalWords:   res.TotalWords,
		ContentWords: len(res.ContentLemmas),
		Paragraphs:   len(res.Paragraphs),
	}
	for _, wc := range res.TopWords {
		comm := -1
		if id, ok := res.Communities[wc.Word]; ok {
			comm = id
		}
		rep.TopWords = append(rep.TopWords, wordJSON{
			Word:      wc.Word,
			Count:     wc.Count,
			Relevance: res.Relevance[wc.Word],
			Community: comm,
		})
	}
	for _, ng := range res.Bigrams {
		rep.Bigrams = append(rep.Bigrams, fmt.Sprintf("%s (%d)", ng.Word, ng.Count))
	}
	for _, ng := range res.Trigrams {
		rep.Trigrams = append(rep.Trigrams, fmt.Sprintf("%s (%d)", ng.Word, ng.Count))
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

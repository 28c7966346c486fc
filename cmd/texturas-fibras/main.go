package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/epsidebox/texturas/pkg/texturas"
	"github.com/epsidebox/texturas/pkg/texturas/config"
)

type threadJSON struct {
	Word     string    `json:"word"`
	Cluster  int       `json:"cluster"`
	Presence []float64 `json:"presence"`
}

type report struct {
	Segments int          `json:"segments"`
	Threads  []threadJSON `json:"threads"`
	Polarity []float64    `json:"segment_polarity"`
	Arousal  []float64    `json:"segment_arousal"`
}

func main() {
	_ = godotenv.Load()

	var (
		input     = flag.String("input", "", "Path to UTF-8 text file (required)")
		seedList  = flag.String("seeds", "", "Comma-separated seed words (for seeds mode)")
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

	var seeds []string
	for _, s := range strings.Split(*seedList, ",") {
		if s = strings.TrimSpace(s); s != "" {
			seeds = append(seeds, strings.ToLower(s))
		}
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

	eng, err := texturas.New(texturas.Options{Resources: resources, Params: params})
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}

	ctx := context.Background()
	text, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	id, err := eng.AddDocument(ctx, *input, string(text))
	if err != nil {
		log.Fatalf("add document: %v", err)
	}

	fib, err := eng.Fibras(ctx, id, seeds)
	if err != nil {
		log.Fatalf("fibras: %v", err)
	}

	rep := report{
		Segments: len(fib.Segments),
		Polarity: fib.SegPolarity,
		Arousal:  fib.SegArousal,
	}
	for _, w := range fib.Words {
		presence := make([]float64, len(fib.SegData))
		for i, row := range fib.SegData {
			presence[i] = row[w].Act
		}
		rep.Threads = append(rep.Threads, threadJSON{
			Word:     w,
			Cluster:  fib.Clusters[w],
			Presence: presence,
		})
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

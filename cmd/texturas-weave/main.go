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

type termJSON struct {
	Word     string `json:"word"`
	Parent   string `json:"parent,omitempty"`
	Relation string `json:"relation"`
	Distance int    `json:"distance"`
}

type cellJSON struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Cooc       int     `json:"cooc"`
	Activation float64 `json:"activation"`
	Proximity  float64 `json:"proximity"`
}

type report struct {
	Docs  int        `json:"docs"`
	Terms []termJSON `json:"terms"`
	Cells []cellJSON `json:"cells"`
}

func main() {
	_ = godotenv.Load()

	var (
		seedList  = flag.String("seeds", "", "Comma-separated seed words (required)")
		paramsCfg = flag.String("params", "", "Optional params YAML file")
		posPath   = flag.String("pos", os.Getenv("TEXTURAS_POS"), "POS lexicon YAML")
		lemPath   = flag.String("lemmas", os.Getenv("TEXTURAS_LEMMAS"), "Lemma table YAML")
		synPath   = flag.String("synsets", os.Getenv("TEXTURAS_SYNSETS"), "Synset graph YAML")
		sentPath  = flag.String("sentiment", os.Getenv("TEXTURAS_SENTIMENT"), "Sentiment lexicons YAML")
	)
	flag.Parse()

	if *seedList == "" {
		log.Fatal("--seeds required")
	}
	if flag.NArg() == 0 {
		log.Fatal("at least one input text file required")
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
	})
	if err != nil {
		log.Fatalf("load resources: %v", err)
	}

	eng, err := texturas.New(texturas.Options{Resources: resources, Params: params})
	if err != nil {
		log.Fatalf("create engine: %v", err)
	}

	ctx := context.Background()
	for _, path := range flag.Args() {
		text, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		if _, err := eng.AddDocument(ctx, path, string(text)); err != nil {
			log.Fatalf("add %s: %v", path, err)
		}
	}

	stack, err := eng.StackWeave(ctx, seeds)
	if err != nil {
		log.Fatalf("weave: %v", err)
	}

	rep := report{Docs: stack.DocCount}
	words := make([]string, 0, len(stack.Terms))
	for _, tm := range stack.Terms {
		words = append(words, tm.Word)
		rep.Terms = append(rep.Terms, termJSON{
			Word:     tm.Word,
			Parent:   tm.Parent,
			Relation: tm.Relation.String(),
			Distance: tm.Distance,
		})
	}
	for i, a := range words {
		for _, b := range words[i+1:] {
			cell := stack.Cells[a][b]
			if cell.Cooc == 0 && cell.Activation == 0 && cell.Proximity == 0 {
				continue
			}
			rep.Cells = append(rep.Cells, cellJSON{
				A: a, B: b,
				Cooc:       cell.Cooc,
				Activation: cell.Activation,
				Proximity:  cell.Proximity,
			})
		}
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

package lexres

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Tracked emotion labels (NRC EmoLex, Plutchik's eight).
var Emotions = []string{
	"anger", "anticipation", "disgust", "fear",
	"joy", "sadness", "surprise", "trust",
}

// EmotionSet flags which emotions a lemma evokes.
type EmotionSet map[string]bool

// VAD is a valence-arousal-dominance triple, each component in [0,1].
type VAD struct {
	Valence   float64 `yaml:"v"`
	Arousal   float64 `yaml:"a"`
	Dominance float64 `yaml:"d"`
}

// SWN is a SentiWordNet positive/negative score pair.
type SWN struct {
	Positive float64 `yaml:"pos"`
	Negative float64 `yaml:"neg"`
}

// Score is the full sentiment annotation for one lemma#pos pair. Pointer
// fields are nil when the backing lexicon has no entry.
type Score struct {
	Lemma     string
	POS       string
	Polarity  *float64
	Arousal   *float64
	Emotions  EmotionSet
	Intensity map[string]float64
	SWN       *SWN
	Found     bool
}

// Bound on the per-session score cache. Lookups repeat heavily within one
// analysis run, far below this limit for realistic documents.
const scoreCacheSize = 1 << 16

// Scorer resolves sentiment annotations from up to four lexicons, with a
// session-lifetime cache keyed by "lemma#pos". The scorer is ready as soon
// as any one lexicon is loaded.
type Scorer struct {
	emolex    map[string]EmotionSet
	intensity map[string]map[string]float64
	vad       map[string]VAD
	swn       map[string]SWN
	cache     *lru.Cache[string, Score]
}

// NewScorer creates a scorer with no lexicons loaded.
func NewScorer() *Scorer {
	cache, _ := lru.New[string, Score](scoreCacheSize)
	return &Scorer{cache: cache}
}

// LoadEmoLex installs the emotion lexicon (lemma to flagged emotions).
func (s *Scorer) LoadEmoLex(d map[string]EmotionSet) { s.emolex = d; s.cache.Purge() }

// LoadIntensity installs the emotion-intensity lexicon.
func (s *Scorer) LoadIntensity(d map[string]map[string]float64) { s.intensity = d; s.cache.Purge() }

// LoadVAD installs the valence-arousal-dominance lexicon.
func (s *Scorer) LoadVAD(d map[string]VAD) { s.vad = d; s.cache.Purge() }

// LoadSentiWordNet installs the SentiWordNet table keyed by "lemma#pos".
func (s *Scorer) LoadSentiWordNet(d map[string]SWN) { s.swn = d; s.cache.Purge() }

// State is ready when at least one lexicon is loaded.
func (s *Scorer) State() State {
	if s.emolex != nil || s.intensity != nil || s.vad != nil || s.swn != nil {
		return StateReady
	}
	return StateUnloaded
}

// Score looks up the sentiment annotation for a lemma and POS tag.
// Polarity is derived from VAD valence: (valence − 0.5) × 2, mapping the
// 0..1 valence range onto −1..+1.
func (s *Scorer) Score(lemma, pos string) Score {
	key := lemma + "#" + pos
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	r := Score{Lemma: lemma, POS: pos}
	if flags, ok := s.emolex[lemma]; ok {
		r.Emotions = flags
	}
	if intens, ok := s.intensity[lemma]; ok {
		r.Intensity = intens
	}
	if vad, ok := s.vad[lemma]; ok {
		pol := (vad.Valence - 0.5) * 2
		aro := vad.Arousal
		r.Polarity = &pol
		r.Arousal = &aro
	}
	if swn, ok := s.swn[key]; ok {
		r.SWN = &swn
	} else if s.swn != nil {
		for _, p := range []string{TagNoun, TagVerb, TagAdjective, TagAdverb} {
			if swn, ok := s.swn[lemma+"#"+p]; ok {
				r.SWN = &swn
				break
			}
		}
	}
	r.Found = r.Emotions != nil || r.Intensity != nil || r.Polarity != nil || r.SWN != nil

	s.cache.Add(key, r)
	return r
}

// ClearCache drops all cached scores, for use after swapping lexicons.
func (s *Scorer) ClearCache() {
	s.cache.Purge()
}

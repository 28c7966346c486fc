package ingest

import (
	"regexp"
	"strings"
)

// Word characters for Spanish text: ASCII word characters plus accented
// vowels, ñ and ü in both cases, apostrophe and hyphen.
const wordClass = `0-9A-Za-z_áéíóúñüÁÉÍÓÚÑÜ'-`

var tokenRe = regexp.MustCompile(`([` + wordClass + `]+)|(\s+)|([^\s` + wordClass + `]+)`)

// Curly quotes are normalized to straight quotes before scanning so that
// apostrophes inside words tokenize consistently.
var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
)

// Tokenizer splits raw Spanish text into typed tokens.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Normalize applies the quote normalization the tokenizer performs before
// scanning. Exposed so callers can round-trip token surfaces against it.
func (t *Tokenizer) Normalize(text string) string {
	return quoteReplacer.Replace(text)
}

// Tokenize scans text into an ordered token list. No characters are
// dropped: the concatenation of all token surfaces equals Normalize(text).
func (t *Tokenizer) Tokenize(text string) []Token {
	normalized := t.Normalize(text)
	matches := tokenRe.FindAllStringSubmatchIndex(normalized, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		switch {
		case m[2] >= 0: // word run
			tokens = append(tokens, Token{Surface: normalized[m[2]:m[3]], Kind: Word})
		case m[4] >= 0: // whitespace run
			ws := normalized[m[4]:m[5]]
			kind := Separator
			if strings.Contains(ws, "\n\n") || strings.Contains(ws, "\r\n\r\n") {
				kind = ParagraphBreak
			}
			tokens = append(tokens, Token{Surface: ws, Kind: kind})
		default: // symbol run
			tokens = append(tokens, Token{Surface: normalized[m[6]:m[7]], Kind: Symbol})
		}
	}
	return tokens
}

package ingest

// Kind classifies a raw token produced by the tokenizer.
type Kind int

const (
	// Word is a run of Spanish word characters (letters, digits,
	// apostrophe, hyphen).
	Word Kind = iota
	// Separator is a whitespace run without a blank line.
	Separator
	// ParagraphBreak is a whitespace run containing a blank line.
	ParagraphBreak
	// Symbol is a run of punctuation or other non-word, non-space characters.
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Separator:
		return "separator"
	case ParagraphBreak:
		return "paragraph-break"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// Token is one raw token in document order. Surface preserves the exact
// characters of the normalized input, so concatenating all surfaces
// reproduces it.
type Token struct {
	Surface string
	Kind    Kind
}

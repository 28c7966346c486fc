package ingest

import (
	"strings"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer()
	tokens := tok.Tokenize("El gato come.")

	var words []string
	for _, tk := range tokens {
		if tk.Kind == Word {
			words = append(words, tk.Surface)
		}
	}
	want := []string{"El", "gato", "come"}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d: %v", len(words), len(want), words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, words[i], want[i])
		}
	}
	last := tokens[len(tokens)-1]
	if last.Kind != Symbol || last.Surface != "." {
		t.Errorf("trailing token = %+v, want symbol %q", last, ".")
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	tok := NewTokenizer()
	inputs := []string{
		"El gato come. El perro come.",
		"Primera línea.\n\nSegundo párrafo, con ñ y ü.",
		"«Cita» — guión… ¿qué?",
		"“comillas curvas” y ‘sencillas’",
		"",
		"   \t\n  ",
		"años,meses;días",
	}
	for _, in := range inputs {
		var sb strings.Builder
		for _, tk := range tok.Tokenize(in) {
			sb.WriteString(tk.Surface)
		}
		if got, want := sb.String(), tok.Normalize(in); got != want {
			t.Errorf("round trip failed:\n got %q\nwant %q", got, want)
		}
	}
}

func TestTokenizeParagraphBreak(t *testing.T) {
	tok := NewTokenizer()
	tokens := tok.Tokenize("uno\n\ndos\ntres")

	var kinds []Kind
	for _, tk := range tokens {
		if tk.Kind != Word {
			kinds = append(kinds, tk.Kind)
		}
	}
	if len(kinds) != 2 {
		t.Fatalf("got %d non-word tokens, want 2", len(kinds))
	}
	if kinds[0] != ParagraphBreak {
		t.Errorf("first break = %v, want paragraph break", kinds[0])
	}
	if kinds[1] != Separator {
		t.Errorf("second break = %v, want separator", kinds[1])
	}
}

func TestTokenizeCRLFParagraph(t *testing.T) {
	tok := NewTokenizer()
	tokens := tok.Tokenize("uno\r\n\r\ndos")
	for _, tk := range tokens {
		if tk.Kind == ParagraphBreak {
			return
		}
	}
	t.Error("CRLF blank line not classified as paragraph break")
}

func TestTokenizeAccentsAndHyphens(t *testing.T) {
	tok := NewTokenizer()
	tokens := tok.Tokenize("teórico-práctico sueño")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(tokens), tokens)
	}
	if tokens[0].Surface != "teórico-práctico" || tokens[0].Kind != Word {
		t.Errorf("hyphenated word split: %+v", tokens[0])
	}
}

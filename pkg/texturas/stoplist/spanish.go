package stoplist

// Spanish stop words in lemma form. Matched against lemmatized tokens, so
// one entry covers all conjugated/inflected forms the lemmatizer folds.
var spanishStops = []string{
	// Articles (including "uno": un/una/unos/unas lemmatize to it)
	"el", "la", "los", "las", "un", "una", "uno", "unos", "unas", "lo",
	// Prepositions
	"a", "ante", "bajo", "con", "contra", "de", "desde", "en", "entre",
	"hacia", "hasta", "para", "por", "según", "sin", "sobre", "tras",
	"durante", "mediante",
	// Conjunctions
	"y", "e", "o", "u", "ni", "que", "pero", "sino", "aunque", "porque",
	"pues", "como", "si", "cuando", "donde", "mientras",
	// Personal pronouns
	"yo", "tú", "él", "ella", "usted", "nosotros", "nosotras",
	"vosotros", "vosotras", "ellos", "ellas", "ustedes",
	"me", "te", "se", "nos", "os", "le", "les",
	"mí", "ti", "sí", "conmigo", "contigo", "consigo",
	// Demonstratives
	"este", "esta", "esto", "estos", "estas",
	"ese", "esa", "eso", "esos", "esas",
	"aquel", "aquella", "aquello", "aquellos", "aquellas",
	// Possessives
	"mi", "mis", "tu", "tus", "su", "sus",
	"nuestro", "nuestra", "nuestros", "nuestras",
	"vuestro", "vuestra", "vuestros", "vuestras",
	"suyo", "suya", "suyos", "suyas",
	"mío", "mía", "míos", "mías",
	"tuyo", "tuya", "tuyos", "tuyas",
	// Relatives / interrogatives
	"quien", "quienes", "cual", "cuales",
	"cuyo", "cuya", "cuyos", "cuyas",
	// Auxiliary / common verbs in lemma form
	"ser", "estar", "haber", "tener", "hacer", "poder", "ir",
	"decir", "dar", "saber", "querer", "deber", "poner", "parecer",
	"quedar", "creer", "llevar", "pasar", "seguir", "encontrar",
	"venir", "pensar", "salir", "volver", "tomar", "conocer",
	"vivir", "sentir", "tratar", "mirar", "contar", "empezar",
	"esperar", "buscar", "llamar", "hablar", "dejar", "recibir", "acabar",
	// Adverbs
	"no", "sí", "muy", "más", "menos", "ya", "también", "tampoco",
	"bien", "mal", "mucho", "poco", "bastante", "demasiado",
	"tan", "tanto", "así", "aquí", "ahí", "allí", "acá", "allá",
	"siempre", "nunca", "jamás", "todavía", "aún", "además",
	"entonces", "después", "antes", "luego", "ahora",
	"hoy", "ayer", "mañana", "pronto", "tarde",
	"cerca", "lejos", "dentro", "fuera", "arriba", "abajo",
	"encima", "debajo", "delante", "detrás",
	// Discourse markers
	"bueno", "claro", "vale", "verdad", "realmente",
	"básicamente", "literalmente", "simplemente",
	// Other high-frequency function words
	"otro", "otra", "otros", "otras", "todo", "toda", "todos", "todas",
	"mismo", "misma", "mismos", "mismas",
	"cada", "algo", "alguien", "alguno", "alguna", "algunos", "algunas",
	"nada", "nadie", "ninguno", "ninguna",
	"del", "al",
}

// Spanish negation markers in surface form. A negation opens a window that
// flips the polarity of the following content words.
var spanishNegations = []string{
	"no", "nunca", "jamás", "tampoco", "ni",
	"ninguno", "ninguna", "ningunos", "ningunas", "ningún",
	"nada", "nadie", "sin", "apenas", "ni siquiera",
}

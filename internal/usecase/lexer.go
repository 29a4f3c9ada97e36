package usecase

import (
	"strconv"
	"strings"

	"github.com/pantrycart/backend/internal/domain"
)

// TokenType classifies one lexeme of a raw ingredient line.
type TokenType string

const (
	TokenNumber   TokenType = "NUMBER"   // integer or decimal
	TokenFraction TokenType = "FRACTION" // vulgar fraction like 1/2 or ½
	TokenRange    TokenType = "RANGE"    // "-", "–", or "to" joining numbers
	TokenUnit     TokenType = "UNIT"     // resolved against the unit alias table
	TokenWord     TokenType = "WORD"
	TokenPunct    TokenType = "PUNCT"
)

// Token is one classified lexeme. Value is set for Number/Fraction tokens,
// Unit for Unit tokens.
type Token struct {
	Type  TokenType
	Text  string
	Value domain.Rational
	Unit  domain.Unit
}

// Lexer splits raw ingredient text into classified tokens. It is a pure
// function of its input plus the immutable unit table, so it is safe to
// share across goroutines.
type Lexer struct {
	units *UnitTable
}

// NewLexer creates a lexer bound to a unit vocabulary.
func NewLexer(units *UnitTable) *Lexer {
	return &Lexer{units: units}
}

// vulgarFractions maps unicode fraction runes onto ascii fractions. A space
// is prepended so "2½" splits into a number and a fraction token.
var vulgarFractions = map[rune]string{
	'¼': " 1/4", '½': " 1/2", '¾': " 3/4",
	'⅓': " 1/3", '⅔': " 2/3",
	'⅕': " 1/5", '⅖': " 2/5", '⅗': " 3/5", '⅘': " 4/5",
	'⅙': " 1/6", '⅚': " 5/6",
	'⅛': " 1/8", '⅜': " 3/8", '⅝': " 5/8", '⅞': " 7/8",
}

// Lex tokenizes one raw ingredient line.
func (l *Lexer) Lex(raw string) []Token {
	words := splitWords(raw)

	var tokens []Token
	for i := 0; i < len(words); {
		word := words[i]

		// Unit aliases first, longest match first, so "fluid ounces"
		// never lexes as a word followed by a weight ounce.
		if unit, consumed := l.units.MatchAlias(words[i:]); consumed > 0 && !looksNumeric(word) {
			// "to" only reads as a unit inside "to taste"; a bare "to"
			// between numbers is a range joiner handled below.
			tokens = append(tokens, Token{
				Type: TokenUnit,
				Text: strings.Join(words[i:i+consumed], " "),
				Unit: unit,
			})
			i += consumed
			continue
		}

		switch {
		case isRangeJoiner(word):
			if numericBefore(tokens) && numericAhead(words, i+1) {
				tokens = append(tokens, Token{Type: TokenRange, Text: word})
			} else {
				tokens = append(tokens, Token{Type: TokenWord, Text: word})
			}
			i++
		case looksNumeric(word):
			tokens = append(tokens, lexNumeric(word)...)
			i++
		case isPunct(word):
			tokens = append(tokens, Token{Type: TokenPunct, Text: word})
			i++
		default:
			tokens = append(tokens, Token{Type: TokenWord, Text: word})
			i++
		}
	}
	return tokens
}

// splitWords breaks the raw line into words, detaching punctuation and
// normalizing unicode fractions and dashes.
func splitWords(raw string) []string {
	var b strings.Builder
	b.Grow(len(raw) + 8)
	for _, r := range raw {
		switch {
		case vulgarFractions[r] != "":
			b.WriteString(vulgarFractions[r])
		case r == '–' || r == '—':
			b.WriteString("-")
		case r == ',' || r == ';' || r == '(' || r == ')':
			b.WriteString(" " + string(r) + " ")
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

func isPunct(word string) bool {
	return word == "," || word == ";" || word == "(" || word == ")"
}

func isRangeJoiner(word string) bool {
	return word == "-" || strings.EqualFold(word, "to")
}

func looksNumeric(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	return c >= '0' && c <= '9'
}

func isFractionWord(word string) bool {
	slash := strings.Index(word, "/")
	return slash > 0 && slash < len(word)-1 && looksNumeric(word)
}

// parseFractionWord parses "1/2" into an exact rational.
func parseFractionWord(word string) (domain.Rational, bool) {
	parts := strings.SplitN(word, "/", 2)
	num, err1 := strconv.ParseInt(parts[0], 10, 64)
	den, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil || den == 0 {
		return domain.Rational{}, false
	}
	return domain.NewRational(num, den), true
}

// maxDecimalDigits bounds the fractional part of a decimal quantity.
const maxDecimalDigits = 9

// parseDecimal parses "2" or "2.5" into an exact rational.
func parseDecimal(word string) (domain.Rational, bool) {
	dot := strings.Index(word, ".")
	if dot < 0 {
		n, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return domain.Rational{}, false
		}
		return domain.NewInt(n), true
	}
	whole, frac := word[:dot], word[dot+1:]
	if whole == "" {
		whole = "0"
	}
	// Cap fraction digits so the 10^n denominator stays far from int64
	// range; no recipe needs more precision than this.
	if frac == "" || len(frac) > maxDecimalDigits {
		return domain.Rational{}, false
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return domain.Rational{}, false
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return domain.Rational{}, false
	}
	den := int64(1)
	for range frac {
		den *= 10
	}
	return domain.NewInt(w).Add(domain.NewRational(f, den)), true
}

// lexNumeric handles number words, including attached ranges like "1-2".
func lexNumeric(word string) []Token {
	if isFractionWord(word) {
		if value, ok := parseFractionWord(word); ok {
			return []Token{{Type: TokenFraction, Text: word, Value: value}}
		}
		return []Token{{Type: TokenWord, Text: word}}
	}
	if dash := strings.Index(word, "-"); dash > 0 && dash < len(word)-1 {
		lo, okLo := parseDecimal(word[:dash])
		hi, okHi := parseDecimal(word[dash+1:])
		if okLo && okHi {
			return []Token{
				{Type: TokenNumber, Text: word[:dash], Value: lo},
				{Type: TokenRange, Text: "-"},
				{Type: TokenNumber, Text: word[dash+1:], Value: hi},
			}
		}
	}
	if value, ok := parseDecimal(word); ok {
		return []Token{{Type: TokenNumber, Text: word, Value: value}}
	}
	return []Token{{Type: TokenWord, Text: word}}
}

func numericBefore(tokens []Token) bool {
	if len(tokens) == 0 {
		return false
	}
	t := tokens[len(tokens)-1].Type
	return t == TokenNumber || t == TokenFraction
}

func numericAhead(words []string, i int) bool {
	return i < len(words) && looksNumeric(words[i])
}

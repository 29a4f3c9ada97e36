package usecase

import (
	"strings"

	"github.com/pantrycart/backend/internal/domain"
)

// Confidence penalties. A line parsed with quantity, unit, and an
// unambiguous name scores 1.0; each missing or ambiguous piece subtracts.
const (
	penaltyMissingUnit     = 0.10 // quantity present, no unit word
	penaltyMissingQuantity = 0.20 // defaulted to 1
	penaltyAmbiguousSpan   = 0.15 // more than one plausible name span
	penaltyLeftoverTokens  = 0.05 // trailing tokens that fit no slot
)

// descriptorWords are adjectival preparation words excluded from the
// ingredient name span and retained as descriptors.
var descriptorWords = map[string]bool{
	// Preparation
	"diced": true, "chopped": true, "minced": true, "sliced": true,
	"grated": true, "shredded": true, "crushed": true, "ground": true,
	"peeled": true, "seeded": true, "pitted": true, "trimmed": true,
	"halved": true, "quartered": true, "cubed": true, "julienned": true,
	"melted": true, "softened": true, "beaten": true, "sifted": true,
	"toasted": true, "roasted": true, "cooked": true, "uncooked": true,
	"drained": true, "rinsed": true, "packed": true, "divided": true,
	// State
	"fresh": true, "frozen": true, "dried": true, "raw": true,
	"ripe": true, "cold": true, "warm": true,
	"boneless": true, "skinless": true, "lean": true,
	// Size
	"large": true, "medium": true, "small": true, "thin": true,
	"thick": true, "baby": true, "jumbo": true,
	// Adverbs that precede preparation words
	"finely": true, "coarsely": true, "thinly": true, "thickly": true,
	"roughly": true, "freshly": true, "lightly": true, "heaping": true,
	"level": true, "loosely": true,
	// Other
	"optional": true,
}

// LineParser turns token sequences into structured ingredient lines.
// Grammar: [Quantity] [Unit]? [Descriptors]* IngredientName [, Descriptors]*
type LineParser struct {
	lexer *Lexer
	units *UnitTable
}

// NewLineParser creates a parser bound to a unit vocabulary.
func NewLineParser(units *UnitTable) *LineParser {
	return &LineParser{
		lexer: NewLexer(units),
		units: units,
	}
}

// Parse decomposes one raw ingredient line. On success the returned line
// carries StatusParsed and a confidence in [0,1]; on failure the second
// return value describes why, with the raw text preserved for manual entry.
func (p *LineParser) Parse(raw string) (domain.ParsedIngredientLine, *domain.ParseFailure) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.ParsedIngredientLine{}, &domain.ParseFailure{
			RawText: raw,
			Reason:  "empty line",
		}
	}

	tokens := p.lexer.Lex(trimmed)
	confidence := 1.0

	i := 0

	// Leading articles read as an implicit quantity of one: "a pinch of salt".
	impliedOne := false
	if i < len(tokens) && tokens[i].Type == TokenWord {
		w := strings.ToLower(tokens[i].Text)
		if w == "a" || w == "an" {
			impliedOne = true
			i++
		}
	}

	quantity, hasQuantity, next := parseQuantity(tokens, i)
	i = next
	if !hasQuantity {
		quantity = domain.NewQuantity(1, 1)
		if !impliedOne {
			confidence -= penaltyMissingQuantity
		}
	}

	// Optional unit, then a connective "of" ("2 cups of flour").
	unit := p.units.CountUnit()
	hasUnit := false
	if i < len(tokens) && tokens[i].Type == TokenUnit {
		unit = tokens[i].Unit
		hasUnit = true
		i++
	}
	if i < len(tokens) && tokens[i].Type == TokenWord && strings.EqualFold(tokens[i].Text, "of") {
		i++
	}
	unitPenalized := false
	if !hasUnit && (hasQuantity || impliedOne) {
		confidence -= penaltyMissingUnit
		unitPenalized = true
	}

	name, descriptors, spans, leftovers := p.scanNameAndDescriptors(tokens[i:])

	// A trailing "to taste" unit can follow the name: "salt to taste".
	if trailing := trailingUnit(tokens[i:]); !hasUnit && trailing.Dimension == domain.DimensionUnitless {
		unit = trailing
		if unitPenalized {
			confidence += penaltyMissingUnit
		}
	}

	if name == "" {
		return domain.ParsedIngredientLine{}, &domain.ParseFailure{
			RawText: raw,
			Reason:  "no ingredient name span found",
		}
	}

	if spans > 1 {
		confidence -= penaltyAmbiguousSpan
	}
	if leftovers {
		confidence -= penaltyLeftoverTokens
	}
	if confidence < 0 {
		confidence = 0
	}

	return domain.ParsedIngredientLine{
		Quantity:       quantity,
		Unit:           unit,
		IngredientText: name,
		Descriptors:    descriptors,
		RawText:        raw,
		Confidence:     confidence,
		Status:         domain.StatusParsed,
	}, nil
}

// Render produces a canonical text form of a parsed line, suitable for
// re-parsing: quantity, unit, name, then comma-joined descriptors.
func (p *LineParser) Render(line domain.ParsedIngredientLine) string {
	var parts []string
	parts = append(parts, line.Quantity.String())
	if line.Unit.Dimension != domain.DimensionCount || line.Unit.Name != "each" {
		parts = append(parts, line.Unit.Name)
	}
	parts = append(parts, line.IngredientText)
	out := strings.Join(parts, " ")
	if len(line.Descriptors) > 0 {
		out += ", " + strings.Join(line.Descriptors, " ")
	}
	return out
}

// parseQuantity reads an optional quantity starting at tokens[i]: a number,
// a fraction, a mixed number ("2 1/2"), or a range of any of those.
func parseQuantity(tokens []Token, i int) (domain.Quantity, bool, int) {
	lo, ok, next := parseNumber(tokens, i)
	if !ok {
		return domain.Quantity{}, false, i
	}
	i = next

	if i < len(tokens) && tokens[i].Type == TokenRange {
		hi, ok, next := parseNumber(tokens, i+1)
		if ok {
			return domain.NewQuantityRange(lo, hi), true, next
		}
	}
	return domain.Quantity{Value: lo}, true, i
}

// parseNumber reads a plain number, fraction, or mixed number.
func parseNumber(tokens []Token, i int) (domain.Rational, bool, int) {
	if i >= len(tokens) {
		return domain.Rational{}, false, i
	}
	switch tokens[i].Type {
	case TokenNumber:
		value := tokens[i].Value
		if i+1 < len(tokens) && tokens[i+1].Type == TokenFraction {
			return value.Add(tokens[i+1].Value), true, i + 2
		}
		return value, true, i + 1
	case TokenFraction:
		return tokens[i].Value, true, i + 1
	default:
		return domain.Rational{}, false, i
	}
}

// scanNameAndDescriptors walks the tokens after quantity/unit. The first
// contiguous non-descriptor word run becomes the name; descriptor words and
// everything after the first comma become descriptors. Parenthesized
// content is kept as descriptors, never as part of the name. spans counts
// distinct non-descriptor word runs before the comma, for ambiguity scoring.
func (p *LineParser) scanNameAndDescriptors(tokens []Token) (string, []string, int, bool) {
	var nameWords, descriptors []string
	spans := 0
	leftovers := false
	afterComma := false
	parenDepth := 0
	inRun := false

	for _, tok := range tokens {
		if tok.Type == TokenPunct {
			switch tok.Text {
			case "(":
				parenDepth++
			case ")":
				if parenDepth > 0 {
					parenDepth--
				}
			case ",", ";":
				afterComma = true
			}
			inRun = false
			continue
		}

		if parenDepth > 0 {
			descriptors = append(descriptors, tok.Text)
			inRun = false
			continue
		}

		switch tok.Type {
		case TokenWord:
			word := strings.ToLower(tok.Text)
			if afterComma || descriptorWords[word] {
				descriptors = append(descriptors, word)
				inRun = false
				continue
			}
			if word == "of" && len(nameWords) == 0 {
				continue
			}
			if !inRun {
				spans++
				inRun = true
			}
			if spans == 1 {
				nameWords = append(nameWords, word)
			} else {
				descriptors = append(descriptors, word)
			}
		case TokenUnit:
			// A unit after the name is either "to taste" (handled by the
			// caller) or noise like "2 sticks butter, 1 cup melted".
			if tok.Unit.Dimension != domain.DimensionUnitless {
				leftovers = true
			}
			inRun = false
		default:
			// Stray numbers after the name span fit no grammar slot.
			leftovers = true
			inRun = false
		}
	}

	return strings.Join(nameWords, " "), descriptors, spans, leftovers
}

// trailingUnit returns the last unitless unit token, if any ("to taste").
func trailingUnit(tokens []Token) domain.Unit {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Type == TokenUnit && tokens[i].Unit.Dimension == domain.DimensionUnitless {
			return tokens[i].Unit
		}
	}
	return domain.Unit{}
}

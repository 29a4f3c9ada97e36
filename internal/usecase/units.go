package usecase

import (
	"strings"

	"github.com/pantrycart/backend/internal/domain"
)

// UnitTable holds the fixed unit vocabulary and its alias map. Factors are
// exact rationals against the dimension base (milliliter, gram, one item);
// US customary volumes derive from the legal definition of the gallon
// (3.785411784 L) so conversions inside the dimension stay exact.
type UnitTable struct {
	units         map[string]domain.Unit
	aliases       map[string]string
	maxAliasWords int
}

// ratio is shorthand for building exact unit factors.
func ratio(num, den int64) domain.Rational {
	return domain.NewRational(num, den)
}

// unitDef declares one canonical unit plus its accepted aliases.
type unitDef struct {
	name      string
	dimension domain.Dimension
	factor    domain.Rational
	aliases   []string
}

var builtinUnits = []unitDef{
	// Volume, base milliliter
	{"ml", domain.DimensionVolume, ratio(1, 1),
		[]string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"}},
	{"l", domain.DimensionVolume, ratio(1000, 1),
		[]string{"l", "liter", "liters", "litre", "litres"}},
	{"tsp", domain.DimensionVolume, ratio(3785411784, 768000000),
		[]string{"tsp", "tsps", "teaspoon", "teaspoons"}},
	{"tbsp", domain.DimensionVolume, ratio(3785411784, 256000000),
		[]string{"tbsp", "tbs", "tbsps", "tablespoon", "tablespoons", "tbl"}},
	{"fl oz", domain.DimensionVolume, ratio(3785411784, 128000000),
		[]string{"fl oz", "floz", "fluid ounce", "fluid ounces"}},
	{"cup", domain.DimensionVolume, ratio(3785411784, 16000000),
		[]string{"cup", "cups"}},
	{"pint", domain.DimensionVolume, ratio(3785411784, 8000000),
		[]string{"pint", "pints", "pt"}},
	{"quart", domain.DimensionVolume, ratio(3785411784, 4000000),
		[]string{"quart", "quarts", "qt", "qts"}},
	{"gallon", domain.DimensionVolume, ratio(3785411784, 1000000),
		[]string{"gallon", "gallons", "gal"}},
	{"pinch", domain.DimensionVolume, ratio(3785411784, 12288000000),
		[]string{"pinch", "pinches"}},
	{"dash", domain.DimensionVolume, ratio(3785411784, 6144000000),
		[]string{"dash", "dashes"}},

	// Weight, base gram
	{"g", domain.DimensionWeight, ratio(1, 1),
		[]string{"g", "gram", "grams", "gr"}},
	{"kg", domain.DimensionWeight, ratio(1000, 1),
		[]string{"kg", "kilogram", "kilograms", "kilo", "kilos"}},
	{"mg", domain.DimensionWeight, ratio(1, 1000),
		[]string{"mg", "milligram", "milligrams"}},
	{"oz", domain.DimensionWeight, ratio(28349523125, 1000000000),
		[]string{"oz", "ounce", "ounces"}},
	{"lb", domain.DimensionWeight, ratio(45359237, 100000),
		[]string{"lb", "lbs", "pound", "pounds"}},

	// Count, base one item. The item itself is the only real base; named
	// count units exist so "2 cloves garlic" keeps its phrasing.
	{"each", domain.DimensionCount, ratio(1, 1),
		[]string{"each", "ea", "piece", "pieces", "item", "items"}},
	{"clove", domain.DimensionCount, ratio(1, 1),
		[]string{"clove", "cloves"}},
	{"slice", domain.DimensionCount, ratio(1, 1),
		[]string{"slice", "slices"}},
	{"can", domain.DimensionCount, ratio(1, 1),
		[]string{"can", "cans"}},
	{"head", domain.DimensionCount, ratio(1, 1),
		[]string{"head", "heads"}},
	{"bunch", domain.DimensionCount, ratio(1, 1),
		[]string{"bunch", "bunches"}},
	{"stick", domain.DimensionCount, ratio(1, 1),
		[]string{"stick", "sticks"}},
	{"stalk", domain.DimensionCount, ratio(1, 1),
		[]string{"stalk", "stalks"}},
	{"sprig", domain.DimensionCount, ratio(1, 1),
		[]string{"sprig", "sprigs"}},
	{"dozen", domain.DimensionCount, ratio(12, 1),
		[]string{"dozen"}},

	// Unitless, used for quantity-free phrasing
	{"to taste", domain.DimensionUnitless, ratio(1, 1),
		[]string{"to taste"}},
}

// NewUnitTable builds the table from the builtin vocabulary.
func NewUnitTable() *UnitTable {
	t := &UnitTable{
		units:   make(map[string]domain.Unit, len(builtinUnits)),
		aliases: make(map[string]string),
	}
	for _, def := range builtinUnits {
		t.units[def.name] = domain.Unit{
			Name:      def.name,
			Dimension: def.dimension,
			Factor:    def.factor,
		}
		for _, alias := range def.aliases {
			t.aliases[strings.ToLower(alias)] = def.name
			if n := len(strings.Fields(alias)); n > t.maxAliasWords {
				t.maxAliasWords = n
			}
		}
	}
	return t
}

// Resolve maps any accepted alias (case-insensitive, plural or abbreviated)
// to its canonical unit.
func (t *UnitTable) Resolve(alias string) (domain.Unit, bool) {
	name, ok := t.aliases[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return domain.Unit{}, false
	}
	return t.units[name], true
}

// MatchAlias tries to match a unit alias starting at words[0], preferring
// the longest alias so "fluid ounces" wins over a bare "ounces" reading.
// It returns the unit and how many words were consumed, or consumed == 0.
func (t *UnitTable) MatchAlias(words []string) (domain.Unit, int) {
	max := t.maxAliasWords
	if len(words) < max {
		max = len(words)
	}
	for n := max; n >= 1; n-- {
		candidate := strings.ToLower(strings.Join(words[:n], " "))
		if name, ok := t.aliases[candidate]; ok {
			return t.units[name], n
		}
	}
	return domain.Unit{}, 0
}

// Convert re-expresses a quantity in another unit of the same dimension.
// Cross-dimension conversion is physically meaningless here and fails with
// ErrIncompatibleDimension; callers keep such quantities on separate lines.
func (t *UnitTable) Convert(q domain.Quantity, from, to domain.Unit) (domain.Quantity, error) {
	if from.IsZero() || to.IsZero() {
		return domain.Quantity{}, domain.ErrUnknownUnit
	}
	if from.Dimension != to.Dimension {
		return domain.Quantity{}, domain.ErrIncompatibleDimension
	}
	if from.Name == to.Name {
		return q, nil
	}
	return q.Scale(from.Factor.Div(to.Factor)), nil
}

// BaseUnit returns the dimension's base unit.
func (t *UnitTable) BaseUnit(d domain.Dimension) domain.Unit {
	switch d {
	case domain.DimensionVolume:
		return t.units["ml"]
	case domain.DimensionWeight:
		return t.units["g"]
	case domain.DimensionCount:
		return t.units["each"]
	default:
		return t.units["to taste"]
	}
}

// CountUnit returns the default unit for quantity-only lines ("2 eggs").
func (t *UnitTable) CountUnit() domain.Unit {
	return t.units["each"]
}

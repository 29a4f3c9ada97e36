package usecase

import (
	"github.com/pantrycart/backend/internal/domain"
)

// ServingsRatio returns the exact ratio targetServings/baseServings.
func ServingsRatio(baseServings, targetServings int) (domain.Rational, error) {
	if baseServings <= 0 || targetServings <= 0 {
		return domain.Rational{}, domain.ErrInvalidServings
	}
	return domain.NewRational(int64(targetServings), int64(baseServings)), nil
}

// ScaleQuantity adjusts a quantity by a servings ratio using exact rational
// arithmetic, so scale-then-aggregate sequences never accumulate rounding
// drift. Ranges scale both bounds.
func ScaleQuantity(q domain.Quantity, baseServings, targetServings int) (domain.Quantity, error) {
	ratio, err := ServingsRatio(baseServings, targetServings)
	if err != nil {
		return domain.Quantity{}, err
	}
	return q.Scale(ratio), nil
}

// ScaleLine returns a copy of the line with its quantity scaled. The source
// line is never mutated; shopping lists stay regenerable from their inputs.
func ScaleLine(line domain.ParsedIngredientLine, baseServings, targetServings int) (domain.ParsedIngredientLine, error) {
	scaled, err := ScaleQuantity(line.Quantity, baseServings, targetServings)
	if err != nil {
		return domain.ParsedIngredientLine{}, err
	}
	out := line
	out.Quantity = scaled
	if len(line.Descriptors) > 0 {
		out.Descriptors = append([]string(nil), line.Descriptors...)
	}
	return out, nil
}

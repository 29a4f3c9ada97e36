package usecase

import (
	"sort"

	"github.com/pantrycart/backend/internal/domain"
)

// LineContribution is one scaled, canonicalized quantity feeding the
// shopping list: the atom the aggregator reduces over.
type LineContribution struct {
	IngredientID string
	DisplayName  string
	Category     string
	Unit         domain.Unit
	Quantity     domain.Quantity
	RecipeID     string
	NeedsReview  bool
}

// Aggregator merges contributions from many planned meals into consolidated
// shopping list lines. Grouping is by (ingredient, unit dimension): "1
// onion" and "200 g onion" are different pieces of information and are kept
// on separate lines rather than force-merged. The reduction is commutative
// and associative over exact rationals, so the output is independent of the
// order meals are supplied.
type Aggregator struct {
	units       *UnitTable
	categorizer *Categorizer
}

// NewAggregator creates an aggregator over the given unit vocabulary.
func NewAggregator(units *UnitTable, categorizer *Categorizer) *Aggregator {
	return &Aggregator{units: units, categorizer: categorizer}
}

type aggregateGroup struct {
	ingredientID string
	displayName  string
	category     string
	dimension    domain.Dimension
	members      []LineContribution
}

// Aggregate reduces contributions into sorted shopping list lines.
func (a *Aggregator) Aggregate(contributions []LineContribution) []domain.ShoppingListLine {
	groups := make(map[string]*aggregateGroup)
	var order []string

	for _, contrib := range contributions {
		key := contrib.IngredientID + "|" + string(contrib.Unit.Dimension)
		group, ok := groups[key]
		if !ok {
			group = &aggregateGroup{
				ingredientID: contrib.IngredientID,
				displayName:  contrib.DisplayName,
				category:     contrib.Category,
				dimension:    contrib.Unit.Dimension,
			}
			groups[key] = group
			order = append(order, key)
		}
		group.members = append(group.members, contrib)
	}

	lines := make([]domain.ShoppingListLine, 0, len(groups))
	for _, key := range order {
		lines = append(lines, a.reduceGroup(groups[key]))
	}

	// Sort by category walk order, then name, then dimension so output is
	// deterministic regardless of input permutation.
	sort.Slice(lines, func(i, j int) bool {
		ri, rj := a.categorizer.DisplayRank(lines[i].Category), a.categorizer.DisplayRank(lines[j].Category)
		if ri != rj {
			return ri < rj
		}
		if lines[i].DisplayName != lines[j].DisplayName {
			return lines[i].DisplayName < lines[j].DisplayName
		}
		return lines[i].Unit.Dimension < lines[j].Unit.Dimension
	})
	return lines
}

// reduceGroup folds one (ingredient, dimension) group into a single line.
// When member units differ, each quantity converts into the group's most
// granular unit (smallest base factor, name as tiebreak) before summing;
// conversion inside a dimension is always defined, but any failure falls
// back to the dimension base unit.
func (a *Aggregator) reduceGroup(group *aggregateGroup) domain.ShoppingListLine {
	target := a.targetUnit(group)

	total := domain.NewQuantity(0, 1)
	needsReview := false
	recipeSet := make(map[string]bool)

	for _, member := range group.members {
		converted, err := a.units.Convert(member.Quantity, member.Unit, target)
		if err != nil {
			// Shouldn't happen inside one dimension; keep the line usable
			// and flag it instead of dropping the quantity.
			converted = member.Quantity
			needsReview = true
		}
		total = total.Add(converted)
		needsReview = needsReview || member.NeedsReview
		if member.RecipeID != "" {
			recipeSet[member.RecipeID] = true
		}
	}

	recipeIDs := make([]string, 0, len(recipeSet))
	for id := range recipeSet {
		recipeIDs = append(recipeIDs, id)
	}
	sort.Strings(recipeIDs)

	// Unitless lines ("to taste") carry no meaningful amount: two recipes
	// both seasoning to taste is still one "salt, to taste" entry.
	if target.Dimension == domain.DimensionUnitless {
		total = domain.NewQuantity(1, 1)
	}

	return domain.ShoppingListLine{
		CanonicalIngredientID: group.ingredientID,
		DisplayName:           group.displayName,
		Unit:                  target,
		Quantity:              total,
		SourceRecipeIDs:       recipeIDs,
		Category:              group.category,
		NeedsReview:           needsReview,
	}
}

// targetUnit picks the unit the group sums in: the members' shared unit if
// they agree, otherwise the most granular member unit.
func (a *Aggregator) targetUnit(group *aggregateGroup) domain.Unit {
	target := group.members[0].Unit
	uniform := true
	for _, member := range group.members[1:] {
		if member.Unit.Name != target.Name {
			uniform = false
		}
		if moreGranular(member.Unit, target) {
			target = member.Unit
		}
	}
	if uniform {
		return group.members[0].Unit
	}
	return target
}

// moreGranular reports whether a should be preferred over b as the group
// target: smaller base factor wins, name breaks ties deterministically.
func moreGranular(a, b domain.Unit) bool {
	switch a.Factor.Cmp(b.Factor) {
	case -1:
		return true
	case 1:
		return false
	default:
		return a.Name < b.Name
	}
}

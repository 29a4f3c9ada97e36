package domain

import "time"

// ParseStatus tracks the lifecycle of an ingredient line:
// Raw -> Parsed -> Normalized, or Raw -> Failed. A Failed line is never
// dropped; it surfaces for manual entry with its raw text intact.
type ParseStatus string

const (
	StatusRaw        ParseStatus = "RAW"
	StatusParsed     ParseStatus = "PARSED"
	StatusNormalized ParseStatus = "NORMALIZED"
	StatusFailed     ParseStatus = "FAILED"
)

// ParsedIngredientLine is the structured form of one raw ingredient line.
// RawText is always preserved verbatim for audit and fallback display.
// Instances are immutable once produced; scaling returns a new value.
type ParsedIngredientLine struct {
	Quantity       Quantity    `json:"quantity"`
	Unit           Unit        `json:"unit"`
	IngredientText string      `json:"ingredientText"`
	Descriptors    []string    `json:"descriptors,omitempty"`
	RawText        string      `json:"rawText"`
	Confidence     float64     `json:"confidence"` // 0.0-1.0
	Status         ParseStatus `json:"status"`
}

// ParseFailure records a line that could not be decomposed. It is a value,
// not an error: callers branch on it rather than unwind.
type ParseFailure struct {
	RawText string `json:"rawText"`
	Reason  string `json:"reason"`
}

// CanonicalIngredient is the deduplicated identity a free-text ingredient
// name resolves to. Synonyms map many-to-one onto ID.
type CanonicalIngredient struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Category    string    `json:"category"`
	Synonyms    []string  `json:"synonyms,omitempty"`
	NeedsReview bool      `json:"needsReview"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// PlannedMeal is one entry of a meal plan: a recipe's raw ingredient lines
// plus the servings scaling to apply to them.
type PlannedMeal struct {
	RecipeID       string   `json:"recipeId"`
	RawLines       []string `json:"rawLines"`
	BaseServings   int      `json:"baseServings"`
	TargetServings int      `json:"targetServings"`
}

// ShoppingListLine is one consolidated entry of a shopping list. All
// quantities folded into a line share the unit's dimension; incompatible
// dimensions for the same ingredient stay on separate lines.
type ShoppingListLine struct {
	CanonicalIngredientID string   `json:"canonicalIngredientId"`
	DisplayName           string   `json:"displayName"`
	Unit                  Unit     `json:"unit"`
	Quantity              Quantity `json:"quantity"`
	SourceRecipeIDs       []string `json:"sourceRecipeIds"`
	Category              string   `json:"category"`
	NeedsReview           bool     `json:"needsReview"`
}

// ShoppingList is the aggregated output for a whole meal plan.
type ShoppingList struct {
	Lines            []ShoppingListLine `json:"lines"`
	TotalLines       int                `json:"totalLines"`
	NeedsReviewCount int                `json:"needsReviewCount"`
}

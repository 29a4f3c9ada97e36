package domain

// Grocery categories used to order shopping list display.
const (
	CategoryProduce     = "produce"
	CategoryDairy       = "dairy"
	CategoryMeatSeafood = "meat & seafood"
	CategoryBakery      = "bakery"
	CategoryPantry      = "pantry"
	CategorySpices      = "spices"
	CategoryFrozen      = "frozen"
	CategoryOther       = "other"
)

package usecase

import (
	"strings"

	"github.com/pantrycart/backend/internal/domain"
)

// categoryOrder fixes the display ordering of shopping list sections.
var categoryOrder = []string{
	domain.CategoryProduce,
	domain.CategoryMeatSeafood,
	domain.CategoryDairy,
	domain.CategoryBakery,
	domain.CategoryPantry,
	domain.CategorySpices,
	domain.CategoryFrozen,
	domain.CategoryOther,
}

// ingredientCategories is the curated ingredient-to-category table, keyed
// by normalized ingredient name.
var ingredientCategories = map[string]string{
	// Produce
	"onion": domain.CategoryProduce, "yellow onion": domain.CategoryProduce,
	"red onion": domain.CategoryProduce, "green onion": domain.CategoryProduce,
	"garlic": domain.CategoryProduce, "shallot": domain.CategoryProduce,
	"carrot": domain.CategoryProduce, "celery": domain.CategoryProduce,
	"tomato": domain.CategoryProduce, "potato": domain.CategoryProduce,
	"bell pepper": domain.CategoryProduce, "jalapeno": domain.CategoryProduce,
	"lettuce": domain.CategoryProduce, "spinach": domain.CategoryProduce,
	"kale": domain.CategoryProduce, "broccoli": domain.CategoryProduce,
	"cauliflower": domain.CategoryProduce, "zucchini": domain.CategoryProduce,
	"cucumber": domain.CategoryProduce, "mushroom": domain.CategoryProduce,
	"avocado": domain.CategoryProduce, "lemon": domain.CategoryProduce,
	"lime": domain.CategoryProduce, "apple": domain.CategoryProduce,
	"banana": domain.CategoryProduce, "orange": domain.CategoryProduce,
	"ginger": domain.CategoryProduce, "cilantro": domain.CategoryProduce,
	"parsley": domain.CategoryProduce, "basil": domain.CategoryProduce,
	"thyme": domain.CategoryProduce, "rosemary": domain.CategoryProduce,
	"scallion": domain.CategoryProduce, "sweet potato": domain.CategoryProduce,

	// Meat & seafood
	"chicken breast": domain.CategoryMeatSeafood, "chicken thigh": domain.CategoryMeatSeafood,
	"chicken": domain.CategoryMeatSeafood, "ground beef": domain.CategoryMeatSeafood,
	"beef": domain.CategoryMeatSeafood, "pork": domain.CategoryMeatSeafood,
	"bacon": domain.CategoryMeatSeafood, "sausage": domain.CategoryMeatSeafood,
	"ham": domain.CategoryMeatSeafood, "turkey": domain.CategoryMeatSeafood,
	"salmon": domain.CategoryMeatSeafood, "shrimp": domain.CategoryMeatSeafood,
	"tuna": domain.CategoryMeatSeafood, "cod": domain.CategoryMeatSeafood,

	// Dairy
	"milk": domain.CategoryDairy, "whole milk": domain.CategoryDairy,
	"butter": domain.CategoryDairy, "egg": domain.CategoryDairy,
	"cheese": domain.CategoryDairy, "cheddar cheese": domain.CategoryDairy,
	"parmesan cheese": domain.CategoryDairy, "mozzarella cheese": domain.CategoryDairy,
	"cream cheese": domain.CategoryDairy, "sour cream": domain.CategoryDairy,
	"heavy cream": domain.CategoryDairy, "yogurt": domain.CategoryDairy,
	"greek yogurt": domain.CategoryDairy, "buttermilk": domain.CategoryDairy,

	// Bakery
	"bread": domain.CategoryBakery, "tortilla": domain.CategoryBakery,
	"bun": domain.CategoryBakery, "bagel": domain.CategoryBakery,
	"pita": domain.CategoryBakery,

	// Pantry / dry goods
	"flour": domain.CategoryPantry, "all purpose flour": domain.CategoryPantry,
	"sugar": domain.CategoryPantry, "brown sugar": domain.CategoryPantry,
	"powdered sugar": domain.CategoryPantry, "rice": domain.CategoryPantry,
	"pasta": domain.CategoryPantry, "spaghetti": domain.CategoryPantry,
	"oat": domain.CategoryPantry, "quinoa": domain.CategoryPantry,
	"olive oil": domain.CategoryPantry, "vegetable oil": domain.CategoryPantry,
	"canola oil": domain.CategoryPantry, "sesame oil": domain.CategoryPantry,
	"soy sauce": domain.CategoryPantry, "vinegar": domain.CategoryPantry,
	"balsamic vinegar": domain.CategoryPantry, "honey": domain.CategoryPantry,
	"maple syrup": domain.CategoryPantry, "peanut butter": domain.CategoryPantry,
	"baking powder": domain.CategoryPantry, "baking soda": domain.CategoryPantry,
	"yeast": domain.CategoryPantry, "cornstarch": domain.CategoryPantry,
	"chicken broth": domain.CategoryPantry, "chicken stock": domain.CategoryPantry,
	"vegetable broth": domain.CategoryPantry, "beef broth": domain.CategoryPantry,
	"tomato paste": domain.CategoryPantry, "tomato sauce": domain.CategoryPantry,
	"crushed tomato": domain.CategoryPantry, "coconut milk": domain.CategoryPantry,
	"black bean": domain.CategoryPantry, "chickpea": domain.CategoryPantry,
	"kidney bean": domain.CategoryPantry, "lentil": domain.CategoryPantry,
	"chocolate chip": domain.CategoryPantry, "vanilla extract": domain.CategoryPantry,
	"ketchup": domain.CategoryPantry, "mustard": domain.CategoryPantry,
	"mayonnaise": domain.CategoryPantry, "worcestershire sauce": domain.CategoryPantry,

	// Spices
	"salt": domain.CategorySpices, "black pepper": domain.CategorySpices,
	"pepper": domain.CategorySpices, "paprika": domain.CategorySpices,
	"cumin": domain.CategorySpices, "chili powder": domain.CategorySpices,
	"cayenne pepper": domain.CategorySpices, "oregano": domain.CategorySpices,
	"dried oregano": domain.CategorySpices, "dried basil": domain.CategorySpices,
	"cinnamon": domain.CategorySpices, "nutmeg": domain.CategorySpices,
	"turmeric": domain.CategorySpices, "curry powder": domain.CategorySpices,
	"garlic powder": domain.CategorySpices, "onion powder": domain.CategorySpices,
	"red pepper flake": domain.CategorySpices, "bay leaf": domain.CategorySpices,

	// Frozen
	"frozen pea": domain.CategoryFrozen, "frozen corn": domain.CategoryFrozen,
	"frozen spinach": domain.CategoryFrozen, "ice cream": domain.CategoryFrozen,
	"frozen berry": domain.CategoryFrozen,
}

// Categorizer assigns grocery categories to canonical ingredient names.
// Unmapped ingredients fall back to Other; callers flag the line for
// review rather than failing list generation.
type Categorizer struct {
	table map[string]string
	rank  map[string]int
}

// NewCategorizer builds a categorizer over the curated table.
func NewCategorizer() *Categorizer {
	rank := make(map[string]int, len(categoryOrder))
	for i, cat := range categoryOrder {
		rank[cat] = i
	}
	return &Categorizer{table: ingredientCategories, rank: rank}
}

// Categorize looks up the category for a normalized ingredient name. The
// second return value reports whether the name was in the curated table;
// on a miss the category is Other.
func (c *Categorizer) Categorize(name string) (string, bool) {
	key := strings.TrimSpace(strings.ToLower(name))
	if cat, ok := c.table[key]; ok {
		return cat, true
	}
	// Fall back to the last word so "minced garlic" still lands in produce.
	words := strings.Fields(key)
	if len(words) > 1 {
		if cat, ok := c.table[words[len(words)-1]]; ok {
			return cat, true
		}
	}
	return domain.CategoryOther, false
}

// DisplayRank orders categories for shopping list rendering. Unknown
// categories sort last.
func (c *Categorizer) DisplayRank(category string) int {
	if r, ok := c.rank[category]; ok {
		return r
	}
	return len(categoryOrder)
}

package registry

import "github.com/pantrycart/backend/internal/domain"

// DefaultIngredients is the curated starter registry: common ingredients
// with stable slug ids, their grocery category, and the synonyms recipe
// text actually uses for them. Entries created at runtime get uuid ids and
// a review flag instead.
func DefaultIngredients() []domain.CanonicalIngredient {
	return []domain.CanonicalIngredient{
		// Pantry
		{ID: "flour", DisplayName: "flour", Category: domain.CategoryPantry,
			Synonyms: []string{"all purpose flour", "all-purpose flour", "plain flour", "ap flour"}},
		{ID: "sugar", DisplayName: "sugar", Category: domain.CategoryPantry,
			Synonyms: []string{"granulated sugar", "white sugar", "caster sugar"}},
		{ID: "brown-sugar", DisplayName: "brown sugar", Category: domain.CategoryPantry,
			Synonyms: []string{"light brown sugar", "dark brown sugar"}},
		{ID: "rice", DisplayName: "rice", Category: domain.CategoryPantry,
			Synonyms: []string{"white rice", "long grain rice", "jasmine rice", "basmati rice"}},
		{ID: "olive-oil", DisplayName: "olive oil", Category: domain.CategoryPantry,
			Synonyms: []string{"extra virgin olive oil", "evoo"}},
		{ID: "vegetable-oil", DisplayName: "vegetable oil", Category: domain.CategoryPantry,
			Synonyms: []string{"canola oil", "neutral oil"}},
		{ID: "soy-sauce", DisplayName: "soy sauce", Category: domain.CategoryPantry,
			Synonyms: []string{"shoyu", "tamari"}},
		{ID: "chicken-broth", DisplayName: "chicken broth", Category: domain.CategoryPantry,
			Synonyms: []string{"chicken stock"}},
		{ID: "pasta", DisplayName: "pasta", Category: domain.CategoryPantry,
			Synonyms: []string{"spaghetti", "penne", "macaroni"}},
		{ID: "honey", DisplayName: "honey", Category: domain.CategoryPantry},
		{ID: "vanilla-extract", DisplayName: "vanilla extract", Category: domain.CategoryPantry,
			Synonyms: []string{"vanilla"}},
		{ID: "baking-powder", DisplayName: "baking powder", Category: domain.CategoryPantry},
		{ID: "baking-soda", DisplayName: "baking soda", Category: domain.CategoryPantry,
			Synonyms: []string{"bicarbonate of soda", "sodium bicarbonate"}},
		{ID: "tomato-paste", DisplayName: "tomato paste", Category: domain.CategoryPantry,
			Synonyms: []string{"tomato puree"}},
		{ID: "black-bean", DisplayName: "black bean", Category: domain.CategoryPantry,
			Synonyms: []string{"black beans"}},
		{ID: "chickpea", DisplayName: "chickpea", Category: domain.CategoryPantry,
			Synonyms: []string{"garbanzo bean", "garbanzo beans"}},

		// Produce
		{ID: "onion", DisplayName: "onion", Category: domain.CategoryProduce,
			Synonyms: []string{"yellow onion", "white onion", "brown onion"}},
		{ID: "red-onion", DisplayName: "red onion", Category: domain.CategoryProduce},
		{ID: "green-onion", DisplayName: "green onion", Category: domain.CategoryProduce,
			Synonyms: []string{"scallion", "spring onion"}},
		{ID: "garlic", DisplayName: "garlic", Category: domain.CategoryProduce,
			Synonyms: []string{"garlic clove"}},
		{ID: "carrot", DisplayName: "carrot", Category: domain.CategoryProduce},
		{ID: "celery", DisplayName: "celery", Category: domain.CategoryProduce,
			Synonyms: []string{"celery stalk", "celery rib"}},
		{ID: "tomato", DisplayName: "tomato", Category: domain.CategoryProduce,
			Synonyms: []string{"roma tomato", "plum tomato", "cherry tomato"}},
		{ID: "potato", DisplayName: "potato", Category: domain.CategoryProduce,
			Synonyms: []string{"russet potato", "yukon gold potato"}},
		{ID: "bell-pepper", DisplayName: "bell pepper", Category: domain.CategoryProduce,
			Synonyms: []string{"red bell pepper", "green bell pepper", "capsicum"}},
		{ID: "cilantro", DisplayName: "cilantro", Category: domain.CategoryProduce,
			Synonyms: []string{"coriander leaves", "fresh coriander"}},
		{ID: "parsley", DisplayName: "parsley", Category: domain.CategoryProduce,
			Synonyms: []string{"flat leaf parsley", "italian parsley"}},
		{ID: "basil", DisplayName: "basil", Category: domain.CategoryProduce},
		{ID: "ginger", DisplayName: "ginger", Category: domain.CategoryProduce,
			Synonyms: []string{"ginger root"}},
		{ID: "lemon", DisplayName: "lemon", Category: domain.CategoryProduce},
		{ID: "lime", DisplayName: "lime", Category: domain.CategoryProduce},
		{ID: "spinach", DisplayName: "spinach", Category: domain.CategoryProduce,
			Synonyms: []string{"baby spinach"}},
		{ID: "mushroom", DisplayName: "mushroom", Category: domain.CategoryProduce,
			Synonyms: []string{"cremini mushroom", "button mushroom", "white mushroom"}},
		{ID: "avocado", DisplayName: "avocado", Category: domain.CategoryProduce},

		// Dairy
		{ID: "milk", DisplayName: "milk", Category: domain.CategoryDairy,
			Synonyms: []string{"whole milk", "skim milk", "2% milk"}},
		{ID: "butter", DisplayName: "butter", Category: domain.CategoryDairy,
			Synonyms: []string{"unsalted butter", "salted butter"}},
		{ID: "egg", DisplayName: "egg", Category: domain.CategoryDairy,
			Synonyms: []string{"large egg", "egg yolk", "egg white"}},
		{ID: "cheddar-cheese", DisplayName: "cheddar cheese", Category: domain.CategoryDairy,
			Synonyms: []string{"sharp cheddar", "cheddar"}},
		{ID: "parmesan-cheese", DisplayName: "parmesan cheese", Category: domain.CategoryDairy,
			Synonyms: []string{"parmesan", "parmigiano reggiano", "parmigiano-reggiano"}},
		{ID: "mozzarella-cheese", DisplayName: "mozzarella cheese", Category: domain.CategoryDairy,
			Synonyms: []string{"mozzarella"}},
		{ID: "heavy-cream", DisplayName: "heavy cream", Category: domain.CategoryDairy,
			Synonyms: []string{"heavy whipping cream", "double cream"}},
		{ID: "sour-cream", DisplayName: "sour cream", Category: domain.CategoryDairy},
		{ID: "greek-yogurt", DisplayName: "greek yogurt", Category: domain.CategoryDairy,
			Synonyms: []string{"plain greek yogurt"}},

		// Meat & seafood
		{ID: "chicken-breast", DisplayName: "chicken breast", Category: domain.CategoryMeatSeafood,
			Synonyms: []string{"boneless skinless chicken breast", "chicken breasts"}},
		{ID: "chicken-thigh", DisplayName: "chicken thigh", Category: domain.CategoryMeatSeafood,
			Synonyms: []string{"boneless chicken thigh", "chicken thighs"}},
		{ID: "ground-beef", DisplayName: "ground beef", Category: domain.CategoryMeatSeafood,
			Synonyms: []string{"minced beef", "beef mince", "hamburger meat"}},
		{ID: "bacon", DisplayName: "bacon", Category: domain.CategoryMeatSeafood},
		{ID: "salmon", DisplayName: "salmon", Category: domain.CategoryMeatSeafood,
			Synonyms: []string{"salmon fillet"}},
		{ID: "shrimp", DisplayName: "shrimp", Category: domain.CategoryMeatSeafood,
			Synonyms: []string{"prawn", "prawns"}},

		// Bakery
		{ID: "bread", DisplayName: "bread", Category: domain.CategoryBakery,
			Synonyms: []string{"sandwich bread", "white bread", "sourdough bread"}},
		{ID: "tortilla", DisplayName: "tortilla", Category: domain.CategoryBakery,
			Synonyms: []string{"flour tortilla", "corn tortilla"}},

		// Spices
		{ID: "salt", DisplayName: "salt", Category: domain.CategorySpices,
			Synonyms: []string{"kosher salt", "sea salt", "table salt"}},
		{ID: "black-pepper", DisplayName: "black pepper", Category: domain.CategorySpices,
			Synonyms: []string{"ground black pepper", "cracked black pepper", "pepper"}},
		{ID: "cumin", DisplayName: "cumin", Category: domain.CategorySpices,
			Synonyms: []string{"ground cumin"}},
		{ID: "paprika", DisplayName: "paprika", Category: domain.CategorySpices,
			Synonyms: []string{"smoked paprika", "sweet paprika"}},
		{ID: "oregano", DisplayName: "oregano", Category: domain.CategorySpices,
			Synonyms: []string{"dried oregano"}},
		{ID: "cinnamon", DisplayName: "cinnamon", Category: domain.CategorySpices,
			Synonyms: []string{"ground cinnamon"}},
		{ID: "chili-powder", DisplayName: "chili powder", Category: domain.CategorySpices},
		{ID: "red-pepper-flake", DisplayName: "red pepper flake", Category: domain.CategorySpices,
			Synonyms: []string{"red pepper flakes", "crushed red pepper"}},
		{ID: "bay-leaf", DisplayName: "bay leaf", Category: domain.CategorySpices,
			Synonyms: []string{"bay leaves"}},

		// Frozen
		{ID: "frozen-pea", DisplayName: "frozen pea", Category: domain.CategoryFrozen,
			Synonyms: []string{"frozen peas", "peas"}},
		{ID: "frozen-corn", DisplayName: "frozen corn", Category: domain.CategoryFrozen,
			Synonyms: []string{"corn kernels"}},
	}
}

package models

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int      `json:"price"` // whole currency units
	IsVeg       bool     `json:"is_veg"`
	PrepTime    PrepTier `json:"prep_time"`
	Available   bool     `json:"available"`
	Description string   `json:"description"`
	// Derived from the recipe book; nil when the item is available.
	MissingIngredients []string `json:"missing_ingredients,omitempty"`
}

// RecipeBook maps a menu item name to the ingredient ids it consumes.
// Items absent from the book have no stock dependency and are always available.
type RecipeBook map[string][]string

package engine

import "github.com/skylark-hq/skylark/internal/models"

// ResolveAvailability recomputes the derived availability view of the menu
// from current ingredient stock. It returns a new menu slice and touches only
// Available and MissingIngredients; price, name, category, description and
// prep tier pass through untouched. The function is idempotent: resolving
// twice over unchanged input yields identical output.
//
// An item whose name has no entry in the recipe book is always available. The
// missing-ingredient list follows the recipe's declared order.
func ResolveAvailability(menu []models.MenuItem, ingredients []models.Ingredient, recipes models.RecipeBook) []models.MenuItem {
	stock := make(map[string]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		stock[ing.ID] = ing
	}

	next := make([]models.MenuItem, 0, len(menu))
	for _, item := range menu {
		recipe, ok := recipes[item.Name]
		if !ok {
			item.Available = true
			item.MissingIngredients = nil
			next = append(next, item)
			continue
		}

		var missing []string
		for _, ingID := range recipe {
			ing, known := stock[ingID]
			if known && !ing.InStock {
				missing = append(missing, ing.Name)
			}
		}
		item.Available = len(missing) == 0
		item.MissingIngredients = missing
		next = append(next, item)
	}
	return next
}

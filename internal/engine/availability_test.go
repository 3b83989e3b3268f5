package engine

import (
	"testing"

	"github.com/skylark-hq/skylark/internal/models"
	"github.com/stretchr/testify/assert"
)

func availabilityFixture() ([]models.MenuItem, []models.Ingredient, models.RecipeBook) {
	menu := []models.MenuItem{
		{ID: "omelette", Name: "Masala Omelette", Price: 80, PrepTime: models.PrepQuick, Description: "Three-egg omelette"},
		{ID: "chai", Name: "Masala Chai", Price: 30, PrepTime: models.PrepQuick},
		{ID: "room", Name: "Deluxe Room", Category: models.CategoryStay, Price: 2500, PrepTime: models.PrepQuick},
	}
	ingredients := []models.Ingredient{
		{ID: "eggs", Name: "Eggs", Category: models.IngredientProteins, InStock: true},
		{ID: "onion", Name: "Onion", Category: models.IngredientVegetables, InStock: true},
		{ID: "milk", Name: "Milk", Category: models.IngredientDairy, InStock: true},
		{ID: "tea", Name: "Tea Leaves", Category: models.IngredientPantry, InStock: true},
	}
	recipes := models.RecipeBook{
		"Masala Omelette": {"eggs", "onion"},
		"Masala Chai":     {"milk", "tea"},
	}
	return menu, ingredients, recipes
}

func TestResolveAvailabilityAllInStock(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()

	got := ResolveAvailability(menu, ingredients, recipes)

	for _, item := range got {
		assert.True(t, item.Available, item.Name)
		assert.Nil(t, item.MissingIngredients, item.Name)
	}
}

func TestResolveAvailabilityMissingIngredients(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()
	ingredients[0].InStock = false // eggs
	ingredients[1].InStock = false // onion

	got := ResolveAvailability(menu, ingredients, recipes)

	assert.False(t, got[0].Available)
	// names follow the recipe's declared ingredient order
	assert.Equal(t, []string{"Eggs", "Onion"}, got[0].MissingIngredients)

	assert.True(t, got[1].Available)
	assert.Nil(t, got[1].MissingIngredients)
}

func TestResolveAvailabilityNoRecipeIsAlwaysAvailable(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()
	for i := range ingredients {
		ingredients[i].InStock = false
	}

	got := ResolveAvailability(menu, ingredients, recipes)

	// the room has no recipe, so it never goes out of stock
	assert.True(t, got[2].Available)
	assert.Nil(t, got[2].MissingIngredients)
	assert.False(t, got[0].Available)
	assert.False(t, got[1].Available)
}

func TestResolveAvailabilityUnknownIngredientIDIgnored(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()
	recipes["Masala Chai"] = []string{"milk", "ghost-ingredient"}

	got := ResolveAvailability(menu, ingredients, recipes)

	assert.True(t, got[1].Available)
}

func TestResolveAvailabilityIdempotent(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()
	ingredients[2].InStock = false // milk

	once := ResolveAvailability(menu, ingredients, recipes)
	twice := ResolveAvailability(once, ingredients, recipes)

	assert.Equal(t, once, twice)
}

func TestResolveAvailabilityPreservesOtherFields(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()
	ingredients[0].InStock = false

	got := ResolveAvailability(menu, ingredients, recipes)

	assert.Equal(t, "Masala Omelette", got[0].Name)
	assert.Equal(t, 80, got[0].Price)
	assert.Equal(t, models.PrepQuick, got[0].PrepTime)
	assert.Equal(t, "Three-egg omelette", got[0].Description)

	// input menu is untouched
	assert.True(t, menu[0].Available == false && menu[0].MissingIngredients == nil)
}

func TestResolveAvailabilityRestockFlipsBack(t *testing.T) {
	menu, ingredients, recipes := availabilityFixture()
	ingredients[3].InStock = false // tea

	out := ResolveAvailability(menu, ingredients, recipes)
	assert.False(t, out[1].Available)

	ingredients[3].InStock = true
	back := ResolveAvailability(out, ingredients, recipes)
	assert.True(t, back[1].Available)
	assert.Nil(t, back[1].MissingIngredients)
}

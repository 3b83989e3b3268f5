// Package catalog holds the Skylark guesthouse seed data: the master
// ingredient list, the recipe book, and the menu builder. The data is static
// input to the engine, not logic; the menu editor and CSV import mutate the
// running copy, never this seed.
package catalog

import (
	"github.com/lucsky/cuid"
	"github.com/skylark-hq/skylark/internal/models"
)

const defaultDescription = "A delicious blend of flavors"

// Ingredients returns the master ingredient list, everything in stock.
func Ingredients() []models.Ingredient {
	return []models.Ingredient{
		{ID: "milk", Name: "Milk", Category: models.IngredientDairy, InStock: true},
		{ID: "curd", Name: "Curd (Dahi)", Category: models.IngredientDairy, InStock: true},
		{ID: "paneer", Name: "Paneer", Category: models.IngredientDairy, InStock: true},
		{ID: "butter", Name: "Butter", Category: models.IngredientDairy, InStock: true},
		{ID: "cheese_slice", Name: "Cheese Slices", Category: models.IngredientDairy, InStock: true},
		{ID: "mozzarella", Name: "Mozzarella Cheese", Category: models.IngredientDairy, InStock: true},
		{ID: "cream", Name: "Fresh Cream", Category: models.IngredientDairy, InStock: true},
		{ID: "ice_cream", Name: "Vanilla Ice Cream", Category: models.IngredientDairy, InStock: true},
		{ID: "onion", Name: "Onion", Category: models.IngredientVegetables, InStock: true},
		{ID: "tomato", Name: "Tomato", Category: models.IngredientVegetables, InStock: true},
		{ID: "capsicum", Name: "Capsicum", Category: models.IngredientVegetables, InStock: true},
		{ID: "cucumber", Name: "Cucumber", Category: models.IngredientVegetables, InStock: true},
		{ID: "potato", Name: "Potato", Category: models.IngredientVegetables, InStock: true},
		{ID: "mushroom", Name: "Mushroom", Category: models.IngredientVegetables, InStock: true},
		{ID: "corn", Name: "Sweet Corn", Category: models.IngredientVegetables, InStock: true},
		{ID: "peas", Name: "Green Peas", Category: models.IngredientVegetables, InStock: true},
		{ID: "cauliflower", Name: "Cauliflower (Gobhi)", Category: models.IngredientVegetables, InStock: true},
		{ID: "lemon", Name: "Lemon", Category: models.IngredientVegetables, InStock: true},
		{ID: "coriander", Name: "Coriander/Mint", Category: models.IngredientVegetables, InStock: true},
		{ID: "garlic", Name: "Garlic", Category: models.IngredientVegetables, InStock: true},
		{ID: "ginger", Name: "Ginger", Category: models.IngredientVegetables, InStock: true},
		{ID: "banana", Name: "Banana", Category: models.IngredientVegetables, InStock: true},
		{ID: "papaya", Name: "Papaya", Category: models.IngredientVegetables, InStock: true},
		{ID: "chicken", Name: "Chicken", Category: models.IngredientProteins, InStock: true},
		{ID: "mutton", Name: "Mutton", Category: models.IngredientProteins, InStock: true},
		{ID: "egg", Name: "Eggs", Category: models.IngredientProteins, InStock: true},
		{ID: "maggi", Name: "Maggi Noodles", Category: models.IngredientPantry, InStock: true},
		{ID: "pasta_penne", Name: "Penne Pasta", Category: models.IngredientPantry, InStock: true},
		{ID: "rice", Name: "Basmati Rice", Category: models.IngredientPantry, InStock: true},
		{ID: "noodles", Name: "Hakka Noodles", Category: models.IngredientPantry, InStock: true},
		{ID: "fries_frozen", Name: "Frozen Fries", Category: models.IngredientPantry, InStock: true},
		{ID: "momos_wrapper", Name: "Momos Wrapper/Flour", Category: models.IngredientPantry, InStock: true},
		{ID: "chocolate", Name: "Chocolate/Cocoa", Category: models.IngredientPantry, InStock: true},
		{ID: "oreo", Name: "Oreo Biscuits", Category: models.IngredientPantry, InStock: true},
		{ID: "kitkat", Name: "KitKat", Category: models.IngredientPantry, InStock: true},
		{ID: "burger_bun", Name: "Burger Buns", Category: models.IngredientBreads, InStock: true},
		{ID: "bread", Name: "Bread Slices", Category: models.IngredientBreads, InStock: true},
		{ID: "pizza_base", Name: "Pizza Base", Category: models.IngredientBreads, InStock: true},
		{ID: "atta", Name: "Atta (Wheat Flour)", Category: models.IngredientBreads, InStock: true},
		{ID: "maida", Name: "Maida (Refined Flour)", Category: models.IngredientBreads, InStock: true},
		{ID: "coffee_powder", Name: "Coffee Powder", Category: models.IngredientBeverages, InStock: true},
		{ID: "tea_leaves", Name: "Tea Leaves", Category: models.IngredientBeverages, InStock: true},
		{ID: "sugar", Name: "Sugar/Syrup", Category: models.IngredientBeverages, InStock: true},
		{ID: "soda", Name: "Soda Water", Category: models.IngredientBeverages, InStock: true},
		{ID: "coconut_water", Name: "Coconut Water", Category: models.IngredientBeverages, InStock: true},
		{ID: "syrup_blue", Name: "Blue Curacao Syrup", Category: models.IngredientBeverages, InStock: true},
		{ID: "syrup_mint", Name: "Mint Syrup", Category: models.IngredientBeverages, InStock: true},
		{ID: "syrup_mango", Name: "Mango Syrup", Category: models.IngredientBeverages, InStock: true},
	}
}

// Recipes maps menu item names to the ingredient ids they consume. Items not
// listed here have no stock dependency.
func Recipes() models.RecipeBook {
	return models.RecipeBook{
		"Hot Coffee":              {"milk", "coffee_powder", "sugar"},
		"Masala Chai":             {"milk", "tea_leaves", "sugar", "ginger"},
		"Cold Coffee":             {"milk", "coffee_powder", "sugar", "ice_cream"},
		"Blue Crushers":           {"syrup_blue", "soda", "lemon"},
		"Mint Mojito":             {"syrup_mint", "soda", "lemon", "coriander"},
		"Spicy Mango Soda":        {"syrup_mango", "soda", "lemon"},
		"Fresh Lime Soda":         {"lemon", "soda", "sugar"},
		"Coconut Water":           {"coconut_water"},
		"Banana Shake":            {"milk", "banana", "sugar"},
		"Papaya Shake":            {"milk", "papaya", "sugar"},
		"Oreo Shake":              {"milk", "oreo", "ice_cream"},
		"KitKat Shake":            {"milk", "kitkat", "ice_cream"},
		"Chocobar Shake":          {"milk", "chocolate", "ice_cream"},
		"Sweet Lassi":             {"curd", "sugar"},
		"Plain Maggi":             {"maggi"},
		"Vegetable Maggi":         {"maggi", "onion", "tomato", "capsicum"},
		"Cheese Maggi":            {"maggi", "cheese_slice"},
		"Egg Maggi":               {"maggi", "egg"},
		"Chicken Maggi":           {"maggi", "chicken"},
		"Veg Fried Momos":         {"momos_wrapper", "onion", "capsicum"},
		"Paneer Fried Momos":      {"momos_wrapper", "paneer"},
		"Chicken Fried Momos":     {"momos_wrapper", "chicken"},
		"Nutella Sandwich":        {"bread", "chocolate"},
		"Corn Masala Sandwich":    {"bread", "corn", "butter"},
		"Cheese Chutney Sandwich": {"bread", "cheese_slice", "coriander"},
		"Egg Sandwich":            {"bread", "egg", "butter"},
		"Veg Burger":              {"burger_bun", "potato", "onion"},
		"Veg Cheese Burger":       {"burger_bun", "potato", "cheese_slice"},
		"Chicken Burger":          {"burger_bun", "chicken", "onion"},
		"French Fries":            {"fries_frozen"},
		"Cheese Fries":            {"fries_frozen", "cheese_slice"},
		"Margherita Pizza":        {"pizza_base", "mozzarella", "tomato"},
		"Onion Pizza":             {"pizza_base", "mozzarella", "onion"},
		"Sweet Corn Pizza":        {"pizza_base", "mozzarella", "corn"},
		"Red Sauce Pasta":         {"pasta_penne", "tomato", "garlic"},
		"White Sauce Pasta":       {"pasta_penne", "milk", "cream", "garlic"},
		"Tomato Soup":             {"tomato", "cream", "butter"},
		"Mix Veg Salad":           {"cucumber", "onion", "tomato", "lemon"},
		"Plain Dahi":              {"curd"},
		"Boondi Raita":            {"curd", "coriander"},
		"Ice Cream":               {"ice_cream"},
		"Sizzling Brownie":        {"chocolate", "ice_cream"},
		"Chilly Paneer":           {"paneer", "onion", "capsicum", "garlic"},
		"Veg Fried Rice":          {"rice", "onion", "capsicum", "peas"},
		"Egg Fried Rice":          {"rice", "egg", "onion"},
		"Chicken Fried Rice":      {"rice", "chicken", "onion"},
		"Veg Fried Noodles":       {"noodles", "onion", "capsicum"},
		"Butter Toast":            {"bread", "butter"},
		"Cheese Toast":            {"bread", "cheese_slice", "butter"},
		"Aloo Paratha":            {"atta", "potato", "butter"},
		"Gobhi Paratha":           {"atta", "cauliflower", "butter"},
		"Paneer Paratha":          {"atta", "paneer", "butter"},
		"Omelette Plain":          {"egg", "onion"},
		"Omelette Cheese":         {"egg", "cheese_slice"},
		"Egg Bhurji":              {"egg", "onion", "tomato"},
		"Egg Curry":               {"egg", "onion", "tomato", "ginger"},
		"Paneer Butter":           {"paneer", "butter", "cream", "tomato"},
		"Kadai Paneer":            {"paneer", "capsicum", "onion", "tomato"},
		"Shahi Paneer":            {"paneer", "cream", "tomato"},
		"Mutter Paneer":           {"paneer", "peas", "tomato"},
		"Mix Veg":                 {"potato", "peas", "cauliflower", "capsicum"},
		"Plain Rice":              {"rice"},
		"Jeera Rice":              {"rice", "butter"},
		"Mushroom Tikka":          {"mushroom", "curd", "ginger"},
		"Chicken Curry":           {"chicken", "onion", "tomato", "ginger"},
		"Lemon Chicken":           {"chicken", "lemon", "garlic"},
		"Mutton Curry":            {"mutton", "onion", "tomato", "ginger"},
		"Mutton Rogan Josh":       {"mutton", "curd", "onion", "garlic"},
	}
}

type rawItem struct {
	name  string
	price int
	prep  models.PrepTier
	desc  string
}

type rawCategory struct {
	cat   string
	isVeg bool
	items []rawItem
}

var rawMenu = []rawCategory{
	{cat: models.CategoryStay, isVeg: true, items: []rawItem{
		{"Room - Accommodates up to 3", 1800, models.PrepSlow, "1 Double Bed | Attached Washroom | Cozy & Comfortable"},
		{"Room - Accommodates up to 8", 3500, models.PrepSlow, "2 Double Beds | Attached Bathroom | Spacious & Family Friendly"},
	}},
	{cat: "Beverages (Hot)", isVeg: true, items: []rawItem{
		{"Hot Coffee", 160, models.PrepQuick, ""},
		{"Masala Chai", 50, models.PrepQuick, ""},
	}},
	{cat: "Beverages (Cold)", isVeg: true, items: []rawItem{
		{"Blue Crushers", 200, models.PrepQuick, ""},
		{"Mint Mojito", 240, models.PrepQuick, ""},
		{"Spicy Mango Soda", 200, models.PrepQuick, ""},
		{"Fresh Lime Soda", 160, models.PrepQuick, ""},
		{"Coconut Water", 120, models.PrepQuick, ""},
		{"Cold Coffee", 240, models.PrepQuick, ""},
	}},
	{cat: "Shakes/Lassi", isVeg: true, items: []rawItem{
		{"Banana Shake", 200, models.PrepQuick, ""},
		{"Chocobar Shake", 240, models.PrepQuick, ""},
		{"Papaya Shake", 200, models.PrepQuick, ""},
		{"Oreo Shake", 240, models.PrepQuick, ""},
		{"KitKat Shake", 240, models.PrepQuick, ""},
		{"Sweet Lassi", 160, models.PrepQuick, ""},
	}},
	{cat: "Maggi", isVeg: true, items: []rawItem{
		{"Plain Maggi", 80, models.PrepQuick, ""},
		{"Vegetable Maggi", 100, models.PrepQuick, ""},
		{"Cheese Maggi", 120, models.PrepQuick, ""},
	}},
	{cat: "Momos", isVeg: true, items: []rawItem{
		{"Veg Fried Momos", 160, models.PrepQuick, ""},
		{"Paneer Fried Momos", 200, models.PrepMedium, ""},
	}},
	{cat: "Sandwiches", isVeg: true, items: []rawItem{
		{"Nutella Sandwich", 160, models.PrepQuick, ""},
		{"Corn Masala Sandwich", 160, models.PrepQuick, ""},
		{"Cheese Chutney Sandwich", 200, models.PrepQuick, ""},
	}},
	{cat: "Burgers", isVeg: true, items: []rawItem{
		{"Veg Burger", 130, models.PrepMedium, ""},
		{"Veg Cheese Burger", 150, models.PrepMedium, ""},
	}},
	{cat: "Fries/Sides", isVeg: true, items: []rawItem{
		{"French Fries", 160, models.PrepQuick, ""},
		{"Cheese Fries", 240, models.PrepQuick, ""},
	}},
	{cat: "Pizza", isVeg: true, items: []rawItem{
		{"Margherita Pizza", 200, models.PrepMedium, ""},
		{"Onion Pizza", 260, models.PrepMedium, ""},
		{"Sweet Corn Pizza", 260, models.PrepMedium, ""},
	}},
	{cat: "Pasta", isVeg: true, items: []rawItem{
		{"Red Sauce Pasta", 200, models.PrepMedium, ""},
		{"White Sauce Pasta", 300, models.PrepMedium, ""},
	}},
	{cat: "Soups", isVeg: true, items: []rawItem{
		{"Tomato Soup", 160, models.PrepMedium, ""},
	}},
	{cat: "Salad/Raita", isVeg: true, items: []rawItem{
		{"Mix Veg Salad", 100, models.PrepQuick, ""},
		{"Plain Dahi", 80, models.PrepQuick, ""},
		{"Boondi Raita", 120, models.PrepQuick, ""},
	}},
	{cat: "Desserts", isVeg: true, items: []rawItem{
		{"Ice Cream", 160, models.PrepQuick, ""},
		{"Gulab Jamun", 120, models.PrepQuick, ""},
		{"Sizzling Brownie", 300, models.PrepMedium, ""},
	}},
	{cat: "Chinese", isVeg: true, items: []rawItem{
		{"Chilly Paneer", 360, models.PrepMedium, ""},
		{"Veg Fried Rice", 240, models.PrepMedium, ""},
		{"Veg Fried Noodles", 240, models.PrepMedium, ""},
	}},
	{cat: "Breakfast (Indian)", isVeg: true, items: []rawItem{
		{"Butter Toast", 80, models.PrepQuick, ""},
		{"Cheese Toast", 120, models.PrepQuick, ""},
		{"Aloo Paratha", 100, models.PrepMedium, ""},
		{"Gobhi Paratha", 120, models.PrepMedium, ""},
		{"Paneer Paratha", 140, models.PrepMedium, ""},
	}},
	{cat: "Veg Main Course", isVeg: true, items: []rawItem{
		{"Paneer Butter", 400, models.PrepSlow, ""},
		{"Kadai Paneer", 400, models.PrepSlow, ""},
		{"Shahi Paneer", 420, models.PrepSlow, ""},
		{"Mutter Paneer", 360, models.PrepSlow, ""},
		{"Mix Veg", 300, models.PrepSlow, ""},
		{"Dal Fry", 240, models.PrepSlow, ""},
	}},
	{cat: "Rice (Indian)", isVeg: true, items: []rawItem{
		{"Plain Rice", 120, models.PrepMedium, ""},
		{"Jeera Rice", 160, models.PrepMedium, ""},
	}},
	{cat: "Tandoor Starters", isVeg: true, items: []rawItem{
		{"Mushroom Tikka", 400, models.PrepSlow, ""},
		{"Tandoori Aloo", 280, models.PrepMedium, ""},
	}},
	{cat: "Breakfast (Non-Veg)", isVeg: false, items: []rawItem{
		{"Egg Sandwich", 140, models.PrepQuick, ""},
		{"Omelette Plain", 100, models.PrepQuick, ""},
		{"Omelette Cheese", 140, models.PrepQuick, ""},
	}},
	{cat: "Maggi (Non-Veg)", isVeg: false, items: []rawItem{
		{"Egg Maggi", 140, models.PrepQuick, ""},
		{"Chicken Maggi", 200, models.PrepQuick, ""},
	}},
	{cat: "Momos (Non-Veg)", isVeg: false, items: []rawItem{
		{"Chicken Fried Momos", 220, models.PrepMedium, ""},
	}},
	{cat: "Burgers (Non-Veg)", isVeg: false, items: []rawItem{
		{"Chicken Burger", 200, models.PrepMedium, ""},
	}},
	{cat: "Egg Dishes", isVeg: false, items: []rawItem{
		{"Egg Bhurji", 160, models.PrepMedium, ""},
		{"Egg Curry", 200, models.PrepMedium, ""},
	}},
	{cat: "Chinese (Non-Veg)", isVeg: false, items: []rawItem{
		{"Egg Fried Rice", 280, models.PrepMedium, ""},
		{"Chicken Fried Rice", 320, models.PrepMedium, ""},
	}},
	{cat: "Chicken Main", isVeg: false, items: []rawItem{
		{"Chicken Curry", 440, models.PrepSlow, ""},
		{"Lemon Chicken", 480, models.PrepSlow, ""},
	}},
	{cat: "Mutton Main", isVeg: false, items: []rawItem{
		{"Mutton Rogan Josh", 600, models.PrepSlow, ""},
		{"Mutton Curry", 560, models.PrepSlow, ""},
	}},
}

// Menu builds the seed menu with fresh ids; every item starts available and
// availability is re-derived by the engine against ingredient stock.
func Menu() []models.MenuItem {
	var menu []models.MenuItem
	for _, group := range rawMenu {
		for _, item := range group.items {
			desc := item.desc
			if desc == "" {
				desc = defaultDescription
			}
			menu = append(menu, models.MenuItem{
				ID:          cuid.Slug(),
				Name:        item.name,
				Category:    group.cat,
				Price:       item.price,
				IsVeg:       group.isVeg,
				PrepTime:    item.prep,
				Available:   true,
				Description: desc,
			})
		}
	}
	return menu
}

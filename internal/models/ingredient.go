package models

type Ingredient struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category IngredientCategory `json:"category"`
	InStock  bool               `json:"in_stock"`
}

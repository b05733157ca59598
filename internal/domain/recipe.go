package domain

import "time"

// Recipe represents a dish with a sale price and portion count.
type Recipe struct {
	ID          string    `json:"recipe_id"`
	Title       string    `json:"title"`
	Portions    int       `json:"portions"`      // >= 1
	SalePriceHT float64   `json:"sale_price_ht"` // excl. tax, >= 0
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// RecipeIngredient is one line of a recipe: a required quantity of an
// ingredient expressed in the unit the recipe author used, which is not
// necessarily the unit the ingredient is priced in.
type RecipeIngredient struct {
	RecipeID         string  `json:"recipe_id"`
	IngredientID     string  `json:"ingredient_id"`
	RequiredQuantity float64 `json:"required_quantity"` // > 0
	RequiredUnit     Unit    `json:"required_unit"`
}

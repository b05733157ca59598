package domain

import "time"

// Ingredient represents a purchasable ingredient priced per Unit.
type Ingredient struct {
	ID        string  `json:"ingredient_id"`
	Name      string  `json:"name"`
	Unit      Unit    `json:"unit"`
	UnitPrice float64 `json:"unit_price"` // currency per Unit, >= 0

	// ConditioningQuantity is the count of base units inside the priced
	// package (e.g. a carton of 90 eggs priced as one "unite" pack).
	// Zero or one means the price already applies to a single base unit.
	ConditioningQuantity float64 `json:"conditioning_quantity,omitempty"`

	SupplierID string    `json:"supplier_id,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// EffectiveUnitPrice returns the price of one base unit, dividing out the
// conditioning quantity when the ingredient is bought in bulk packages.
func (i Ingredient) EffectiveUnitPrice() float64 {
	if i.ConditioningQuantity > 1 {
		return i.UnitPrice / i.ConditioningQuantity
	}
	return i.UnitPrice
}

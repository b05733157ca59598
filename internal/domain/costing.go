package domain

import "math"

// WarningLevel classifies a recipe's food-cost rate.
type WarningLevel string

const (
	WarningLevelOK      WarningLevel = "ok"
	WarningLevelWarning WarningLevel = "warning"
	WarningLevelDanger  WarningLevel = "danger"
)

// Food-cost classification thresholds. These are a business rule shared
// by every computation of the rate, not a presentation concern.
// Comparisons are strict: a rate of exactly 0.25 is still ok.
const (
	FoodCostWarningThreshold = 0.25
	FoodCostDangerThreshold  = 0.30
)

// ClassifyFoodCostRate maps a food-cost rate to its warning level.
func ClassifyFoodCostRate(rate float64) WarningLevel {
	switch {
	case rate > FoodCostDangerThreshold:
		return WarningLevelDanger
	case rate > FoodCostWarningThreshold:
		return WarningLevelWarning
	default:
		return WarningLevelOK
	}
}

// RecipeCostSummary is the computed cost picture of a single recipe.
// It is never persisted.
type RecipeCostSummary struct {
	TotalCost    float64      `json:"total_cost"`
	GrossMargin  float64      `json:"gross_margin"`
	FoodCostRate float64      `json:"food_cost_rate"`
	WarningLevel WarningLevel `json:"warning_level"`
}

// LineCost is the per-line outcome of a recipe costing run. Incompatible
// lines (cross-dimension unit conversions) carry zero cost so callers can
// surface a warning instead of silently losing the line.
type LineCost struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Cost           float64 `json:"cost"`
	Incompatible   bool    `json:"incompatible,omitempty"`
}

// RoundCurrency rounds to 2 decimals for presentation boundaries.
// Internal computations keep full float precision.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package analytics turns already-loaded collections of records into
// decision-grade rankings and trends. Every function is pure: callers
// pass the data in, nothing is persisted, and "now" is an explicit
// argument wherever a trailing window is involved.
package analytics

import (
	"sort"

	"github.com/pfortier/BistroCore_Go/internal/costing"
	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// RecipeCostRow is one recipe of the catalog-wide costing report.
type RecipeCostRow struct {
	RecipeID     string              `json:"recipe_id"`
	Title        string              `json:"title"`
	SalePriceHT  float64             `json:"sale_price_ht"`
	TotalCost    float64             `json:"total_cost"`
	GrossMargin  float64             `json:"gross_margin"`
	FoodCostRate float64             `json:"food_cost_rate"`
	WarningLevel domain.WarningLevel `json:"warning_level"`
	Breakdown    []domain.LineCost   `json:"breakdown"`
}

// ComputeAllRecipeCosts runs the costing calculator across the whole
// catalog. Rows come back sorted by food-cost rate descending; recipe ID
// ascending breaks ties so the order is deterministic. Each row's
// breakdown is sorted by descending line cost.
func ComputeAllRecipeCosts(recipes []domain.Recipe, links []domain.RecipeIngredient, ingredients []domain.Ingredient) []RecipeCostRow {
	ingredientsByID := make(map[string]domain.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		ingredientsByID[ing.ID] = ing
	}

	linksByRecipe := make(map[string][]domain.RecipeIngredient, len(recipes))
	for _, link := range links {
		linksByRecipe[link.RecipeID] = append(linksByRecipe[link.RecipeID], link)
	}

	rows := make([]RecipeCostRow, 0, len(recipes))
	for _, r := range recipes {
		res := costing.ComputeRecipeCost(linksByRecipe[r.ID], ingredientsByID, r.SalePriceHT)
		rows = append(rows, RecipeCostRow{
			RecipeID:     r.ID,
			Title:        r.Title,
			SalePriceHT:  r.SalePriceHT,
			TotalCost:    res.Summary.TotalCost,
			GrossMargin:  res.Summary.GrossMargin,
			FoodCostRate: res.Summary.FoodCostRate,
			WarningLevel: res.Summary.WarningLevel,
			Breakdown:    res.Breakdown,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FoodCostRate != rows[j].FoodCostRate {
			return rows[i].FoodCostRate > rows[j].FoodCostRate
		}
		return rows[i].RecipeID < rows[j].RecipeID
	})

	return rows
}

// IngredientSpend aggregates one ingredient's cost across the catalog.
type IngredientSpend struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	TotalCost      float64 `json:"total_cost"`
	RecipeCount    int     `json:"recipe_count"`
}

// AggregateIngredientSpend rolls up per-ingredient cost across the
// supplied rows, counting the distinct recipes that use each ingredient.
// Sorted by total cost descending, truncated to topN (topN <= 0 keeps
// everything). Incompatible lines carry zero cost and are skipped.
func AggregateIngredientSpend(rows []RecipeCostRow, topN int) []IngredientSpend {
	byID := make(map[string]*IngredientSpend)
	order := make([]string, 0)

	for _, row := range rows {
		seenInRow := make(map[string]bool, len(row.Breakdown))
		for _, line := range row.Breakdown {
			if line.Incompatible {
				continue
			}
			agg, ok := byID[line.IngredientID]
			if !ok {
				agg = &IngredientSpend{IngredientID: line.IngredientID, IngredientName: line.IngredientName}
				byID[line.IngredientID] = agg
				order = append(order, line.IngredientID)
			}
			agg.TotalCost += line.Cost
			// Distinct recipes, not lines: the same ingredient can appear
			// on several lines of one recipe.
			if !seenInRow[line.IngredientID] {
				seenInRow[line.IngredientID] = true
				agg.RecipeCount++
			}
		}
	}

	result := make([]IngredientSpend, 0, len(byID))
	for _, id := range order {
		result = append(result, *byID[id])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCost > result[j].TotalCost
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}

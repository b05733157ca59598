package costing

import (
	"sort"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// Result bundles the recipe summary with its per-line costs. Lines flagged
// Incompatible contributed zero to TotalCost; Breakdown keeps them so
// callers can surface the dropped line to the user.
type Result struct {
	Summary   domain.RecipeCostSummary `json:"summary"`
	Breakdown []domain.LineCost        `json:"breakdown"`
}

// LineCost computes the cost of a single recipe line against its
// ingredient. The required quantity is converted into the ingredient's
// priced unit, then multiplied by the effective per-base-unit price.
func LineCost(line domain.RecipeIngredient, ing domain.Ingredient) (domain.LineCost, error) {
	converted, err := Convert(line.RequiredQuantity, line.RequiredUnit, ing.Unit)
	if err != nil {
		return domain.LineCost{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Incompatible:   true,
		}, err
	}

	return domain.LineCost{
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		Cost:           converted * ing.EffectiveUnitPrice(),
	}, nil
}

// ComputeRecipeCost runs all lines of one recipe against the ingredient
// lookup and classifies the result. Lines whose ingredient is missing or
// whose unit pairing is cross-dimension contribute zero cost; the recipe
// as a whole never fails. Totals keep full float precision - rounding is
// a presentation concern (domain.RoundCurrency).
func ComputeRecipeCost(lines []domain.RecipeIngredient, ingredients map[string]domain.Ingredient, salePriceHT float64) Result {
	breakdown := make([]domain.LineCost, 0, len(lines))
	total := 0.0

	for _, line := range lines {
		ing, ok := ingredients[line.IngredientID]
		if !ok {
			// Unknown ingredient: degrade like an incompatible line.
			breakdown = append(breakdown, domain.LineCost{
				IngredientID: line.IngredientID,
				Incompatible: true,
			})
			continue
		}

		// A conversion error marks the line incompatible with zero cost;
		// the error itself carries no extra information here.
		lc, _ := LineCost(line, ing)
		breakdown = append(breakdown, lc)
		total += lc.Cost
	}

	// Most expensive lines first.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Cost > breakdown[j].Cost
	})

	return Result{
		Summary:   Summarize(total, salePriceHT),
		Breakdown: breakdown,
	}
}

// Summarize derives margin, food-cost rate and warning level from a total
// cost and sale price. The rate is 0 whenever the sale price is not
// positive, regardless of cost.
func Summarize(totalCost, salePriceHT float64) domain.RecipeCostSummary {
	rate := 0.0
	if salePriceHT > 0 {
		rate = totalCost / salePriceHT
	}

	return domain.RecipeCostSummary{
		TotalCost:    totalCost,
		GrossMargin:  salePriceHT - totalCost,
		FoodCostRate: rate,
		WarningLevel: domain.ClassifyFoodCostRate(rate),
	}
}

package handler

import (
	"net/http"

	"github.com/pfortier/BistroCore_Go/internal/costing"
	"github.com/pfortier/BistroCore_Go/internal/domain"
	"github.com/pfortier/BistroCore_Go/internal/logger"
	"github.com/pfortier/BistroCore_Go/internal/metrics"
)

// CostLineInput is one recipe line of a costing request
type CostLineInput struct {
	IngredientID string  `json:"ingredient_id" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
	Unit         string  `json:"unit" validate:"required,unit"`
}

// IngredientInput carries the pricing data the costing runs against
type IngredientInput struct {
	IngredientID         string  `json:"ingredient_id" validate:"required"`
	Name                 string  `json:"name"`
	Unit                 string  `json:"unit" validate:"required,unit"`
	UnitPrice            float64 `json:"unit_price" validate:"gte=0"`
	ConditioningQuantity float64 `json:"conditioning_quantity" validate:"gte=0"`
}

// CostRecipeRequest represents the request to cost a recipe
type CostRecipeRequest struct {
	SalePriceHT float64           `json:"sale_price_ht" validate:"gte=0"`
	Lines       []CostLineInput   `json:"lines" validate:"required,min=1,dive"`
	Ingredients []IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
}

// CostRecipeResponse represents the computed cost picture
type CostRecipeResponse struct {
	Summary   domain.RecipeCostSummary `json:"summary"`
	Breakdown []domain.LineCost        `json:"breakdown"`
}

// HandleCostRecipe computes the cost, margin and food-cost classification of a recipe
// @Summary Cost a recipe
// @Description Computes total cost, gross margin and food-cost warning level from recipe lines and ingredient prices
// @Tags costing
// @Accept json
// @Produce json
// @Param request body CostRecipeRequest true "Recipe lines and ingredient prices"
// @Success 200 {object} CostRecipeResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipes/cost [post]
func HandleCostRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CostRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cost recipe"); err != nil {
			return
		}

		lines := make([]domain.RecipeIngredient, 0, len(req.Lines))
		for _, l := range req.Lines {
			unit, _ := domain.ParseUnit(l.Unit)
			lines = append(lines, domain.RecipeIngredient{
				IngredientID:     l.IngredientID,
				RequiredQuantity: l.Quantity,
				RequiredUnit:     unit,
			})
		}

		ingredients := make(map[string]domain.Ingredient, len(req.Ingredients))
		for _, in := range req.Ingredients {
			unit, _ := domain.ParseUnit(in.Unit)
			ingredients[in.IngredientID] = domain.Ingredient{
				ID:                   in.IngredientID,
				Name:                 in.Name,
				Unit:                 unit,
				UnitPrice:            in.UnitPrice,
				ConditioningQuantity: in.ConditioningQuantity,
			}
		}

		result := costing.ComputeRecipeCost(lines, ingredients, req.SalePriceHT)

		metrics.RecipesCosted.Inc()
		for _, lc := range result.Breakdown {
			if lc.Incompatible {
				metrics.IncompatibleLines.Inc()
			}
		}

		log.Debug("Recipe costed",
			"lines", len(req.Lines),
			"total_cost", result.Summary.TotalCost,
			"warning_level", result.Summary.WarningLevel)

		respondJSON(w, http.StatusOK, CostRecipeResponse{
			Summary:   result.Summary,
			Breakdown: result.Breakdown,
		})
	}
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

func catalogFixture() ([]domain.Recipe, []domain.RecipeIngredient, []domain.Ingredient) {
	recipes := []domain.Recipe{
		{ID: "r1", Title: "Quiche lorraine", Portions: 6, SalePriceHT: 10},
		{ID: "r2", Title: "Salade verte", Portions: 1, SalePriceHT: 5},
		{ID: "r3", Title: "Tarte au citron", Portions: 8, SalePriceHT: 10},
	}
	links := []domain.RecipeIngredient{
		{RecipeID: "r1", IngredientID: "flour", RequiredQuantity: 500, RequiredUnit: domain.UnitGram},  // 0.60
		{RecipeID: "r1", IngredientID: "cream", RequiredQuantity: 0.5, RequiredUnit: domain.UnitLiter}, // 2.25
		{RecipeID: "r2", IngredientID: "flour", RequiredQuantity: 100, RequiredUnit: domain.UnitGram},  // 0.12
		{RecipeID: "r3", IngredientID: "flour", RequiredQuantity: 500, RequiredUnit: domain.UnitGram},  // 0.60
		{RecipeID: "r3", IngredientID: "cream", RequiredQuantity: 0.5, RequiredUnit: domain.UnitLiter}, // 2.25
	}
	ingredients := []domain.Ingredient{
		{ID: "flour", Name: "Farine", Unit: domain.UnitKilogram, UnitPrice: 1.20},
		{ID: "cream", Name: "Creme", Unit: domain.UnitLiter, UnitPrice: 4.50},
	}
	return recipes, links, ingredients
}

func TestComputeAllRecipeCosts_SortedByRateWithIDTiebreak(t *testing.T) {
	recipes, links, ingredients := catalogFixture()

	rows := ComputeAllRecipeCosts(recipes, links, ingredients)

	require.Len(t, rows, 3)
	// r1 and r3 both cost 2.85 on a 10.00 sale price (rate 0.285); the ID
	// tiebreak keeps r1 first. r2 has rate 0.024 and comes last.
	assert.Equal(t, "r1", rows[0].RecipeID)
	assert.Equal(t, "r3", rows[1].RecipeID)
	assert.Equal(t, "r2", rows[2].RecipeID)

	assert.InDelta(t, 0.285, rows[0].FoodCostRate, 1e-9)
	assert.Equal(t, domain.WarningLevelWarning, rows[0].WarningLevel)
	assert.Equal(t, domain.WarningLevelOK, rows[2].WarningLevel)

	// Breakdown sorted by descending cost: cream before flour.
	require.Len(t, rows[0].Breakdown, 2)
	assert.Equal(t, "cream", rows[0].Breakdown[0].IngredientID)
}

func TestComputeAllRecipeCosts_RecipeWithoutLines(t *testing.T) {
	recipes := []domain.Recipe{{ID: "r1", Title: "Eau", SalePriceHT: 2}}

	rows := ComputeAllRecipeCosts(recipes, nil, nil)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].TotalCost)
	assert.Zero(t, rows[0].FoodCostRate)
	assert.Empty(t, rows[0].Breakdown)
}

func TestAggregateIngredientSpend(t *testing.T) {
	recipes, links, ingredients := catalogFixture()
	rows := ComputeAllRecipeCosts(recipes, links, ingredients)

	spend := AggregateIngredientSpend(rows, 0)

	require.Len(t, spend, 2)
	// Cream: 2.25 x 2 recipes = 4.50; flour: 0.60+0.12+0.60 = 1.32.
	assert.Equal(t, "cream", spend[0].IngredientID)
	assert.InDelta(t, 4.50, spend[0].TotalCost, 1e-9)
	assert.Equal(t, 2, spend[0].RecipeCount)

	assert.Equal(t, "flour", spend[1].IngredientID)
	assert.InDelta(t, 1.32, spend[1].TotalCost, 1e-9)
	assert.Equal(t, 3, spend[1].RecipeCount)
}

func TestAggregateIngredientSpend_TopN(t *testing.T) {
	recipes, links, ingredients := catalogFixture()
	rows := ComputeAllRecipeCosts(recipes, links, ingredients)

	spend := AggregateIngredientSpend(rows, 1)

	require.Len(t, spend, 1)
	assert.Equal(t, "cream", spend[0].IngredientID)
}

func TestAggregateIngredientSpend_SkipsIncompatibleLines(t *testing.T) {
	rows := []RecipeCostRow{{
		RecipeID: "r1",
		Breakdown: []domain.LineCost{
			{IngredientID: "a", Cost: 2},
			{IngredientID: "b", Incompatible: true},
		},
	}}

	spend := AggregateIngredientSpend(rows, 0)

	require.Len(t, spend, 1)
	assert.Equal(t, "a", spend[0].IngredientID)
}

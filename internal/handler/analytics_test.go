package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

func TestHandleRecipeCosts_SortsWorstFirst(t *testing.T) {
	body := RecipeCostsRequest{
		Recipes: []domain.Recipe{
			{ID: "r-cheap", Title: "Salade", SalePriceHT: 10},
			{ID: "r-dear", Title: "Steak", SalePriceHT: 10},
		},
		Links: []domain.RecipeIngredient{
			{RecipeID: "r-cheap", IngredientID: "ing-1", RequiredQuantity: 500, RequiredUnit: domain.UnitGram},
			{RecipeID: "r-dear", IngredientID: "ing-1", RequiredQuantity: 2, RequiredUnit: domain.UnitKilogram},
		},
		Ingredients: []domain.Ingredient{
			{ID: "ing-1", Name: "Boeuf", Unit: domain.UnitKilogram, UnitPrice: 2},
		},
	}

	w := postJSON(t, HandleRecipeCosts(), "/api/v1/analytics/recipe-costs", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp RecipeCostsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "r-dear", resp.Rows[0].RecipeID)
	assert.Equal(t, domain.WarningLevelDanger, resp.Rows[0].WarningLevel)
	assert.Equal(t, "r-cheap", resp.Rows[1].RecipeID)
}

func TestHandleRecipeCosts_EmptyCatalogRejected(t *testing.T) {
	w := postJSON(t, HandleRecipeCosts(), "/api/v1/analytics/recipe-costs", RecipeCostsRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleIngredientSpend(t *testing.T) {
	body := IngredientSpendRequest{
		Recipes: []domain.Recipe{{ID: "r-1", Title: "Soupe", SalePriceHT: 10}},
		Links: []domain.RecipeIngredient{
			{RecipeID: "r-1", IngredientID: "ing-1", RequiredQuantity: 1, RequiredUnit: domain.UnitKilogram},
		},
		Ingredients: []domain.Ingredient{
			{ID: "ing-1", Name: "Carotte", Unit: domain.UnitKilogram, UnitPrice: 3},
		},
		TopN: 5,
	}

	w := postJSON(t, HandleIngredientSpend(), "/api/v1/analytics/ingredient-spend", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp IngredientSpendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ing-1", resp.Items[0].IngredientID)
	assert.InDelta(t, 3.0, resp.Items[0].TotalCost, 1e-9)
}

func TestHandleIngredientSpend_TopNQueryOverride(t *testing.T) {
	body := IngredientSpendRequest{
		Recipes: []domain.Recipe{{ID: "r-1", Title: "Ragout", SalePriceHT: 20}},
		Links: []domain.RecipeIngredient{
			{RecipeID: "r-1", IngredientID: "ing-1", RequiredQuantity: 2, RequiredUnit: domain.UnitKilogram},
			{RecipeID: "r-1", IngredientID: "ing-2", RequiredQuantity: 1, RequiredUnit: domain.UnitKilogram},
		},
		Ingredients: []domain.Ingredient{
			{ID: "ing-1", Name: "Boeuf", Unit: domain.UnitKilogram, UnitPrice: 9},
			{ID: "ing-2", Name: "Oignon", Unit: domain.UnitKilogram, UnitPrice: 1},
		},
	}

	w := postJSON(t, HandleIngredientSpend(), "/api/v1/analytics/ingredient-spend?top_n=1", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp IngredientSpendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ing-1", resp.Items[0].IngredientID)
}

func TestHandleMonthlySpend_DefaultsWindow(t *testing.T) {
	body := MonthlySpendRequest{
		Invoices: []domain.Invoice{
			{ID: "inv-1", IssuedAt: time.Now(), TotalHT: 120},
		},
	}

	w := postJSON(t, HandleMonthlySpend(), "/api/v1/analytics/monthly-spend", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp MonthlySpendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Series, DefaultTrailingMonths)

	// current month is the last bucket and carries the invoice
	last := resp.Series[len(resp.Series)-1]
	assert.InDelta(t, 120.0, last.TotalHT, 1e-9)
	assert.Equal(t, 1, last.InvoiceCount)
}

func TestHandleMonthlySpend_QueryOverridesWindow(t *testing.T) {
	w := postJSON(t, HandleMonthlySpend(), "/api/v1/analytics/monthly-spend?months=3", MonthlySpendRequest{})

	require.Equal(t, http.StatusOK, w.Code)

	var resp MonthlySpendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Series, 3)
}

func TestHandleMonthlySpend_BadMonthsParam(t *testing.T) {
	w := postJSON(t, HandleMonthlySpend(), "/api/v1/analytics/monthly-spend?months=zero", MonthlySpendRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVolatility(t *testing.T) {
	body := VolatilityRequest{
		Histories: []domain.PriceHistory{
			{ItemName: "Beurre", Supplier: "metro", AveragePrice: 10, MinPrice: 8, MaxPrice: 14},
			{ItemName: "Sel", Supplier: "metro", AveragePrice: 1, MinPrice: 1, MaxPrice: 1},
		},
		ThresholdPct: 10,
		TopN:         5,
	}

	w := postJSON(t, HandleVolatility(), "/api/v1/analytics/volatility", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp VolatilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Beurre", resp.Items[0].ItemName)
	assert.InDelta(t, 60.0, resp.Items[0].VariationPct, 1e-9)
}

func TestHandleVolatility_ThresholdQueryOverride(t *testing.T) {
	body := VolatilityRequest{
		Histories: []domain.PriceHistory{
			{ItemName: "Beurre", Supplier: "metro", AveragePrice: 10, MinPrice: 8, MaxPrice: 14}, // 60%
		},
	}

	// Query threshold above the item's variation filters it out.
	w := postJSON(t, HandleVolatility(), "/api/v1/analytics/volatility?threshold_pct=70", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp VolatilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestHandleVolatility_BadThresholdParam(t *testing.T) {
	w := postJSON(t, HandleVolatility(), "/api/v1/analytics/volatility?threshold_pct=dix", VolatilityRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleComplianceTrend_ZeroFillsWindow(t *testing.T) {
	body := ComplianceTrendRequest{
		Records: []domain.TemperatureRecord{
			{EquipmentID: "eq-1", Temperature: 4, RecordedAt: time.Now(), IsCompliant: true},
		},
		Days: 3,
	}

	w := postJSON(t, HandleComplianceTrend(), "/api/v1/analytics/compliance", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ComplianceTrendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Series, 3)

	today := resp.Series[len(resp.Series)-1]
	assert.Equal(t, 1, today.TotalCount)
	assert.Equal(t, 100, today.RatePct)
}

func TestHandleEquipmentBreakdown(t *testing.T) {
	body := EquipmentBreakdownRequest{
		Equipment: []domain.Equipment{
			{ID: "eq-1", Name: "Frigo", Type: "fridge", MinTemp: 0, MaxTemp: 4},
		},
		Records: []domain.TemperatureRecord{
			{EquipmentID: "eq-1", Temperature: 8, RecordedAt: time.Now(), IsCompliant: false},
		},
		Days: 7,
	}

	w := postJSON(t, HandleEquipmentBreakdown(), "/api/v1/analytics/equipment", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp EquipmentBreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "eq-1", resp.Items[0].EquipmentID)
	assert.Equal(t, 1, resp.Items[0].AnomalyCount)
	assert.Equal(t, 0, resp.Items[0].CompliancePct)
}

func TestHandleEquipmentBreakdown_NoEquipmentRejected(t *testing.T) {
	w := postJSON(t, HandleEquipmentBreakdown(), "/api/v1/analytics/equipment", EquipmentBreakdownRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pfortier/BistroCore_Go/internal/analytics"
	"github.com/pfortier/BistroCore_Go/internal/domain"
	"github.com/pfortier/BistroCore_Go/internal/logger"
)

// Default window and list sizes for the analytics endpoints
const (
	DefaultTrailingMonths = 6
	DefaultTrailingDays   = 7
	DefaultEquipmentDays  = 30
	DefaultTopN           = 5
	DefaultVolatilityPct  = 10.0
)

// RecipeCostsRequest carries the catalog snapshot the report runs against
type RecipeCostsRequest struct {
	Recipes     []domain.Recipe           `json:"recipes" validate:"required,min=1"`
	Links       []domain.RecipeIngredient `json:"links"`
	Ingredients []domain.Ingredient       `json:"ingredients"`
}

// RecipeCostsResponse lists all recipes costed, worst food-cost rate first
type RecipeCostsResponse struct {
	Rows []analytics.RecipeCostRow `json:"rows"`
}

// HandleRecipeCosts costs the whole recipe catalog in one pass
// @Summary Cost all recipes
// @Description Computes cost, margin and warning level for every recipe, sorted worst food-cost rate first
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body RecipeCostsRequest true "Catalog snapshot"
// @Success 200 {object} RecipeCostsResponse
// @Failure 400 {object} ErrorResponse
// @Router /analytics/recipe-costs [post]
func HandleRecipeCosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RecipeCostsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Recipe costs report"); err != nil {
			return
		}

		rows := analytics.ComputeAllRecipeCosts(req.Recipes, req.Links, req.Ingredients)

		log.Debug("Recipe costs computed", "recipes", len(rows))

		respondJSON(w, http.StatusOK, RecipeCostsResponse{Rows: rows})
	}
}

// Window and list sizes ride in the request body; a query parameter of
// the same name overrides the body value, so report pages can retune a
// saved payload without rebuilding it.

// IngredientSpendRequest asks for the biggest cost drivers of the catalog.
// TopN <= 0 keeps every ingredient.
type IngredientSpendRequest struct {
	Recipes     []domain.Recipe           `json:"recipes" validate:"required,min=1"`
	Links       []domain.RecipeIngredient `json:"links"`
	Ingredients []domain.Ingredient       `json:"ingredients"`
	TopN        int                       `json:"top_n"`
}

// IngredientSpendResponse lists ingredients by total catalog spend, descending
type IngredientSpendResponse struct {
	Items []analytics.IngredientSpend `json:"items"`
}

// HandleIngredientSpend aggregates per-ingredient spend across the catalog
// @Summary Top ingredients by spend
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body IngredientSpendRequest true "Catalog snapshot"
// @Success 200 {object} IngredientSpendResponse
// @Failure 400 {object} ErrorResponse
// @Router /analytics/ingredient-spend [post]
func HandleIngredientSpend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IngredientSpendRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Ingredient spend report"); err != nil {
			return
		}

		topN, ok := GetOptionalIntParam(r, w, "top_n", req.TopN)
		if !ok {
			return
		}

		rows := analytics.ComputeAllRecipeCosts(req.Recipes, req.Links, req.Ingredients)
		items := analytics.AggregateIngredientSpend(rows, topN)

		respondJSON(w, http.StatusOK, IngredientSpendResponse{Items: items})
	}
}

// MonthlySpendRequest carries the invoices to bucket into a trailing series
type MonthlySpendRequest struct {
	Invoices []domain.Invoice `json:"invoices"`
	Months   int              `json:"months"`
}

// MonthlySpendResponse is the zero-filled trailing month series, oldest first
type MonthlySpendResponse struct {
	Series []domain.MonthlySpend `json:"series"`
}

// HandleMonthlySpend buckets invoice totals into trailing calendar months
// @Summary Monthly spend series
// @Description Sums invoice totals per month over a trailing window, zero-filling empty months
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body MonthlySpendRequest true "Invoices and window size"
// @Success 200 {object} MonthlySpendResponse
// @Failure 400 {object} ErrorResponse
// @Router /analytics/monthly-spend [post]
func HandleMonthlySpend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MonthlySpendRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Monthly spend report"); err != nil {
			return
		}

		months := req.Months
		if months <= 0 {
			months = DefaultTrailingMonths
		}
		months, ok := GetOptionalIntParam(r, w, "months", months)
		if !ok {
			return
		}

		series := analytics.ComputeMonthlySpend(req.Invoices, months, time.Now())

		respondJSON(w, http.StatusOK, MonthlySpendResponse{Series: series})
	}
}

// VolatilityRequest carries precomputed price histories to rank
type VolatilityRequest struct {
	Histories    []domain.PriceHistory `json:"histories"`
	ThresholdPct float64               `json:"threshold_pct"`
	TopN         int                   `json:"top_n"`
}

// VolatilityResponse lists items whose price variation exceeds the threshold
type VolatilityResponse struct {
	Items []domain.VolatileItem `json:"items"`
}

// HandleVolatility ranks supplier items by price variation
// @Summary Top volatile items
// @Description Ranks items by (max-min)/avg price variation above a percentage threshold
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body VolatilityRequest true "Price histories"
// @Success 200 {object} VolatilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /analytics/volatility [post]
func HandleVolatility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VolatilityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Volatility report"); err != nil {
			return
		}

		threshold := req.ThresholdPct
		if threshold <= 0 {
			threshold = DefaultVolatilityPct
		}
		if raw := GetOptionalQueryParam(r, "threshold_pct", ""); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v <= 0 {
				http.Error(w, "Invalid threshold_pct parameter", http.StatusBadRequest)
				return
			}
			threshold = v
		}
		topN := req.TopN
		if topN <= 0 {
			topN = DefaultTopN
		}
		topN, ok := GetOptionalIntParam(r, w, "top_n", topN)
		if !ok {
			return
		}

		items := analytics.ComputeTopVolatileItems(req.Histories, threshold, topN)

		respondJSON(w, http.StatusOK, VolatilityResponse{Items: items})
	}
}

// ComplianceTrendRequest carries temperature readings for the daily trend
type ComplianceTrendRequest struct {
	Records []domain.TemperatureRecord `json:"records"`
	Days    int                        `json:"days"`
}

// ComplianceTrendResponse is the zero-filled daily series, oldest first
type ComplianceTrendResponse struct {
	Series []domain.ComplianceDay `json:"series"`
}

// HandleComplianceTrend computes the daily temperature compliance rate
// @Summary Daily compliance trend
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body ComplianceTrendRequest true "Temperature readings and window size"
// @Success 200 {object} ComplianceTrendResponse
// @Failure 400 {object} ErrorResponse
// @Router /analytics/compliance [post]
func HandleComplianceTrend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComplianceTrendRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Compliance trend report"); err != nil {
			return
		}

		days := req.Days
		if days <= 0 {
			days = DefaultTrailingDays
		}
		days, ok := GetOptionalIntParam(r, w, "days", days)
		if !ok {
			return
		}

		series := analytics.ComputeComplianceTrend(req.Records, days, time.Now())

		respondJSON(w, http.StatusOK, ComplianceTrendResponse{Series: series})
	}
}

// EquipmentBreakdownRequest carries equipment and readings for the rollup
type EquipmentBreakdownRequest struct {
	Equipment []domain.Equipment         `json:"equipment" validate:"required,min=1"`
	Records   []domain.TemperatureRecord `json:"records"`
	Days      int                        `json:"days"`
}

// EquipmentBreakdownResponse lists equipment worst-first
type EquipmentBreakdownResponse struct {
	Items []domain.EquipmentCompliance `json:"items"`
}

// HandleEquipmentBreakdown rolls temperature readings up per equipment
// @Summary Per-equipment compliance breakdown
// @Description Anomaly counts and compliance rates per equipment over a trailing window, worst first
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body EquipmentBreakdownRequest true "Equipment and readings"
// @Success 200 {object} EquipmentBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Router /analytics/equipment [post]
func HandleEquipmentBreakdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EquipmentBreakdownRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equipment breakdown report"); err != nil {
			return
		}

		days := req.Days
		if days <= 0 {
			days = DefaultEquipmentDays
		}
		days, ok := GetOptionalIntParam(r, w, "days", days)
		if !ok {
			return
		}

		items := analytics.ComputeEquipmentBreakdown(req.Equipment, req.Records, days, time.Now())

		respondJSON(w, http.StatusOK, EquipmentBreakdownResponse{Items: items})
	}
}

package handler

import (
	"net/http"

	"github.com/pfortier/BistroCore_Go/internal/logger"
	"github.com/pfortier/BistroCore_Go/internal/metrics"
	"github.com/pfortier/BistroCore_Go/internal/resolver"
)

// ResolveLineRequest represents one free-text supplier line to resolve
type ResolveLineRequest struct {
	SupplierID  string `json:"supplier_id" validate:"max=64"`
	SupplierSKU string `json:"supplier_sku" validate:"max=64"`
	Label       string `json:"label" validate:"required,max=200"`
}

// ResolveLineResponse wraps the resolution outcome. Resolution is null
// when no stage produced a confident match.
type ResolveLineResponse struct {
	Resolution *resolver.Resolution `json:"resolution"`
}

// UpsertMappingRequest creates or replaces one supplier-product mapping
type UpsertMappingRequest struct {
	SupplierID       string  `json:"supplier_id" validate:"max=64"`
	SupplierSKU      string  `json:"supplier_sku" validate:"max=64"`
	Label            string  `json:"label" validate:"max=200"`
	TemplateRecipeID string  `json:"template_recipe_id" validate:"required,max=64"`
	QuantityRatio    float64 `json:"quantity_ratio"`
	Confidence       float64 `json:"confidence"`
}

// HandleResolveLine resolves a supplier line against the recipe catalog
// @Summary Resolve a supplier line
// @Description Matches a supplier SKU or free-text label to a recipe template via exact or fuzzy matching
// @Tags resolver
// @Accept json
// @Produce json
// @Param request body ResolveLineRequest true "Supplier line"
// @Success 200 {object} ResolveLineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /supplier-lines/resolve [post]
func HandleResolveLine(svc resolver.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResolveLineRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve supplier line"); err != nil {
			return
		}

		res, err := svc.Resolve(r.Context(), resolver.Query{
			SupplierID:  req.SupplierID,
			SupplierSKU: req.SupplierSKU,
			Label:       req.Label,
		})
		if err != nil {
			respondServiceError(w, r, "Resolve supplier line", err)
			return
		}

		source := metrics.SourceNone
		if res != nil {
			source = string(res.Source)
		}
		metrics.LineResolutions.WithLabelValues(source).Inc()

		log.Debug("Supplier line resolution finished", "source", source)

		respondJSON(w, http.StatusOK, ResolveLineResponse{Resolution: res})
	}
}

// HandleUpsertMapping saves a confirmed supplier-product mapping
// @Summary Upsert a supplier mapping
// @Description Creates or replaces the mapping row keyed by SKU (preferred) or normalized label
// @Tags resolver
// @Accept json
// @Produce json
// @Param request body UpsertMappingRequest true "Mapping details"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /supplier-lines/mapping [post]
func HandleUpsertMapping(svc resolver.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertMappingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upsert mapping"); err != nil {
			return
		}

		err := svc.Upsert(r.Context(), resolver.UpsertRequest{
			SupplierID:       req.SupplierID,
			SupplierSKU:      req.SupplierSKU,
			Label:            req.Label,
			TemplateRecipeID: req.TemplateRecipeID,
			QuantityRatio:    req.QuantityRatio,
			Confidence:       req.Confidence,
		})
		if err != nil {
			respondServiceError(w, r, "Upsert mapping", err)
			return
		}

		metrics.MappingUpserts.Inc()

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Mapping saved successfully"})
	}
}

// CacheStatsResponse reports resolver cache effectiveness
type CacheStatsResponse struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// HandleResolverCacheStats exposes resolution cache counters
// @Summary Resolver cache statistics
// @Tags resolver
// @Produce json
// @Success 200 {object} CacheStatsResponse
// @Router /supplier-lines/cache-stats [get]
func HandleResolverCacheStats(svc resolver.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := svc.CacheStats()
		respondJSON(w, http.StatusOK, CacheStatsResponse{
			Hits:    stats.Hits,
			Misses:  stats.Misses,
			Entries: stats.Entries,
		})
	}
}

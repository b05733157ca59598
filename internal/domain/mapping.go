package domain

import "time"

// WildcardSupplierKey scopes a mapping to every supplier. Lookups try the
// specific supplier key first, then fall back to the wildcard.
const WildcardSupplierKey = "*"

// MinQuantityRatio is the floor applied to mapping quantity ratios on
// upsert. NaN input is clamped to this floor as well.
const MinQuantityRatio = 0.0001

// ResolutionSource tells callers which stage produced a resolution.
type ResolutionSource string

const (
	ResolutionSourceExact ResolutionSource = "exact"
	ResolutionSourceFuzzy ResolutionSource = "fuzzy"
)

// SupplierProductMapping links a supplier line item (by SKU or by
// normalized label) to a recipe template. Rows are written only through
// the resolver's upsert and never deleted by this module.
type SupplierProductMapping struct {
	SupplierKey      string    `json:"supplier_key"` // supplier ID or WildcardSupplierKey
	SupplierSKU      string    `json:"supplier_sku,omitempty"`
	LabelNormalized  string    `json:"label_normalized,omitempty"`
	TemplateRecipeID string    `json:"template_recipe_id"`
	QuantityRatio    float64   `json:"quantity_ratio"` // >= MinQuantityRatio
	Confidence       float64   `json:"confidence"`     // in [0,1]
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

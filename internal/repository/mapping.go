package repository

import (
	"context"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// Mapping defines the interface for supplier-product mapping persistence.
// It is the only mutable state the resolver touches. Lookups return
// (nil, nil) when no row matches; any store providing these four
// operations (in-memory map, embedded database, remote table) is
// interchangeable.
type Mapping interface {
	// GetBySKU looks up a mapping by (supplierKey, supplierSKU).
	GetBySKU(ctx context.Context, supplierKey, supplierSKU string) (*domain.SupplierProductMapping, error)
	// GetByLabel looks up a mapping by (supplierKey, normalized label).
	GetByLabel(ctx context.Context, supplierKey, labelNormalized string) (*domain.SupplierProductMapping, error)
	// ListRecipes returns the recipe catalog for the fuzzy fallback scan.
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	// Upsert writes or replaces the mapping row for its key. The key is
	// (SupplierKey, SupplierSKU) when the SKU is set, else
	// (SupplierKey, LabelNormalized).
	Upsert(ctx context.Context, m domain.SupplierProductMapping) error
}

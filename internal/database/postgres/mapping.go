package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// MappingRepository implements the supplier-product mapping store for PostgreSQL
type MappingRepository struct {
	db *pgxpool.Pool
}

// NewMappingRepository creates a new MappingRepository
func NewMappingRepository(db *pgxpool.Pool) *MappingRepository {
	return &MappingRepository{db: db}
}

const mappingColumns = `supplier_key, supplier_sku, label_normalized, template_recipe_id, quantity_ratio, confidence, updated_at`

// GetBySKU looks up a mapping by (supplierKey, supplierSKU).
// Returns (nil, nil) when no row matches.
func (r *MappingRepository) GetBySKU(ctx context.Context, supplierKey, supplierSKU string) (*domain.SupplierProductMapping, error) {
	query := `
		SELECT ` + mappingColumns + `
		FROM supplier_product_mappings
		WHERE supplier_key = $1 AND supplier_sku = $2
	`
	return r.getOne(ctx, query, supplierKey, supplierSKU)
}

// GetByLabel looks up a mapping by (supplierKey, normalized label).
// Only label-keyed rows (empty SKU) are considered.
// Returns (nil, nil) when no row matches.
func (r *MappingRepository) GetByLabel(ctx context.Context, supplierKey, labelNormalized string) (*domain.SupplierProductMapping, error) {
	query := `
		SELECT ` + mappingColumns + `
		FROM supplier_product_mappings
		WHERE supplier_key = $1 AND supplier_sku = '' AND label_normalized = $2
	`
	return r.getOne(ctx, query, supplierKey, labelNormalized)
}

func (r *MappingRepository) getOne(ctx context.Context, query string, args ...any) (*domain.SupplierProductMapping, error) {
	var m domain.SupplierProductMapping
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&m.SupplierKey,
		&m.SupplierSKU,
		&m.LabelNormalized,
		&m.TemplateRecipeID,
		&m.QuantityRatio,
		&m.Confidence,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get supplier mapping: %w", err)
	}
	return &m, nil
}

// ListRecipes returns the recipe catalog for the fuzzy fallback scan
func (r *MappingRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	query := `
		SELECT recipe_id, title, portions, sale_price_ht, created_at, updated_at
		FROM recipes
		ORDER BY recipe_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Portions, &rec.SalePriceHT, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// Upsert writes or replaces the mapping row for its key. SKU-keyed and
// label-keyed rows conflict on different partial unique indexes, so the
// statement is picked by key type. Last writer wins.
func (r *MappingRepository) Upsert(ctx context.Context, m domain.SupplierProductMapping) error {
	var query string
	if m.SupplierSKU != "" {
		query = `
			INSERT INTO supplier_product_mappings (` + mappingColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			ON CONFLICT (supplier_key, supplier_sku) WHERE supplier_sku <> ''
			DO UPDATE SET
				label_normalized = EXCLUDED.label_normalized,
				template_recipe_id = EXCLUDED.template_recipe_id,
				quantity_ratio = EXCLUDED.quantity_ratio,
				confidence = EXCLUDED.confidence,
				updated_at = NOW()
		`
	} else {
		query = `
			INSERT INTO supplier_product_mappings (` + mappingColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			ON CONFLICT (supplier_key, label_normalized) WHERE supplier_sku = ''
			DO UPDATE SET
				template_recipe_id = EXCLUDED.template_recipe_id,
				quantity_ratio = EXCLUDED.quantity_ratio,
				confidence = EXCLUDED.confidence,
				updated_at = NOW()
		`
	}

	_, err := r.db.Exec(ctx, query,
		m.SupplierKey,
		m.SupplierSKU,
		m.LabelNormalized,
		m.TemplateRecipeID,
		m.QuantityRatio,
		m.Confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert supplier mapping: %w", err)
	}
	return nil
}

package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Recipe Catalog

CREATE TABLE IF NOT EXISTS recipes (
    recipe_id VARCHAR(64) PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    portions INTEGER NOT NULL DEFAULT 1 CHECK (portions >= 1),
    sale_price_ht DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (sale_price_ht >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ingredients (
    ingredient_id VARCHAR(64) PRIMARY KEY,
    name VARCHAR(200) NOT NULL,
    unit VARCHAR(10) NOT NULL CHECK (unit IN ('kg', 'g', 'l', 'ml', 'unite')),
    unit_price DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
    conditioning_quantity DOUBLE PRECISION NOT NULL DEFAULT 1,
    supplier_id VARCHAR(64),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
    recipe_id VARCHAR(64) NOT NULL REFERENCES recipes(recipe_id) ON DELETE CASCADE,
    ingredient_id VARCHAR(64) NOT NULL REFERENCES ingredients(ingredient_id) ON DELETE CASCADE,
    required_quantity DOUBLE PRECISION NOT NULL CHECK (required_quantity > 0),
    required_unit VARCHAR(10) NOT NULL CHECK (required_unit IN ('kg', 'g', 'l', 'ml', 'unite')),
    PRIMARY KEY (recipe_id, ingredient_id)
);

-- Supplier Product Mappings
-- A row is keyed by (supplier_key, supplier_sku) when the SKU is set,
-- else by (supplier_key, label_normalized). The two partial unique
-- indexes keep the key spaces separate.

CREATE TABLE IF NOT EXISTS supplier_product_mappings (
    mapping_id SERIAL PRIMARY KEY,
    supplier_key VARCHAR(64) NOT NULL,
    supplier_sku VARCHAR(64) NOT NULL DEFAULT '',
    label_normalized VARCHAR(200) NOT NULL DEFAULT '',
    template_recipe_id VARCHAR(64) NOT NULL,
    quantity_ratio DOUBLE PRECISION NOT NULL CHECK (quantity_ratio > 0),
    confidence DOUBLE PRECISION NOT NULL CHECK (confidence >= 0 AND confidence <= 1),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_mappings_sku
    ON supplier_product_mappings (supplier_key, supplier_sku)
    WHERE supplier_sku <> '';

CREATE UNIQUE INDEX IF NOT EXISTS idx_mappings_label
    ON supplier_product_mappings (supplier_key, label_normalized)
    WHERE supplier_sku = '';
`

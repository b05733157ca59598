package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// MappingStore is an in-memory supplier-product mapping store for local
// development and tests. Maps are guarded by a single mutex.
type MappingStore struct {
	mu      sync.RWMutex
	bySKU   map[mappingKey]domain.SupplierProductMapping
	byLabel map[mappingKey]domain.SupplierProductMapping
	recipes []domain.Recipe
	now     func() time.Time
}

type mappingKey struct {
	supplierKey string
	value       string // SKU or normalized label
}

// NewMappingStore creates an empty store seeded with the given recipe catalog
func NewMappingStore(recipes []domain.Recipe) *MappingStore {
	return &MappingStore{
		bySKU:   make(map[mappingKey]domain.SupplierProductMapping),
		byLabel: make(map[mappingKey]domain.SupplierProductMapping),
		recipes: recipes,
		now:     time.Now,
	}
}

// GetBySKU looks up a mapping by (supplierKey, supplierSKU).
// Returns (nil, nil) when no row matches.
func (s *MappingStore) GetBySKU(_ context.Context, supplierKey, supplierSKU string) (*domain.SupplierProductMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.bySKU[mappingKey{supplierKey, supplierSKU}]; ok {
		return &m, nil
	}
	return nil, nil
}

// GetByLabel looks up a mapping by (supplierKey, normalized label).
// Returns (nil, nil) when no row matches.
func (s *MappingStore) GetByLabel(_ context.Context, supplierKey, labelNormalized string) (*domain.SupplierProductMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.byLabel[mappingKey{supplierKey, labelNormalized}]; ok {
		return &m, nil
	}
	return nil, nil
}

// ListRecipes returns the recipe catalog for the fuzzy fallback scan
func (s *MappingStore) ListRecipes(_ context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// SetRecipes replaces the recipe catalog
func (s *MappingStore) SetRecipes(recipes []domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = recipes
}

// Upsert writes or replaces the mapping row for its key. Last writer wins.
func (s *MappingStore) Upsert(_ context.Context, m domain.SupplierProductMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.UpdatedAt = s.now()
	if m.SupplierSKU != "" {
		s.bySKU[mappingKey{m.SupplierKey, m.SupplierSKU}] = m
	} else {
		s.byLabel[mappingKey{m.SupplierKey, m.LabelNormalized}] = m
	}
	return nil
}

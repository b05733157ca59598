package resolver

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// MockMappingRepository implements repository.Mapping for testing
type MockMappingRepository struct {
	mock.Mock
}

func (m *MockMappingRepository) GetBySKU(ctx context.Context, supplierKey, supplierSKU string) (*domain.SupplierProductMapping, error) {
	args := m.Called(ctx, supplierKey, supplierSKU)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierProductMapping), args.Error(1)
}

func (m *MockMappingRepository) GetByLabel(ctx context.Context, supplierKey, labelNormalized string) (*domain.SupplierProductMapping, error) {
	args := m.Called(ctx, supplierKey, labelNormalized)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierProductMapping), args.Error(1)
}

func (m *MockMappingRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockMappingRepository) Upsert(ctx context.Context, mapping domain.SupplierProductMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

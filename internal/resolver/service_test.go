package resolver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

func storedMapping() *domain.SupplierProductMapping {
	return &domain.SupplierProductMapping{
		SupplierKey:      "sup-1",
		SupplierSKU:      "SKU-42",
		TemplateRecipeID: "recipe-9",
		QuantityRatio:    2.5,
		Confidence:       0.95,
	}
}

func recipeCatalog() []domain.Recipe {
	return []domain.Recipe{
		{ID: "recipe-1", Title: "Tarte au citron"},
		{ID: "recipe-2", Title: "Boeuf bourguignon"},
		{ID: "recipe-3", Title: "Soupe a l'oignon"},
	}
}

func TestResolve_ExactSKUScoped(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetBySKU", ctx, "sup-1", "SKU-42").Return(storedMapping(), nil)

	res, err := svc.Resolve(ctx, Query{SupplierID: "sup-1", SupplierSKU: "SKU-42", Label: "Tarte au citron"})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "recipe-9", res.TemplateRecipeID)
	assert.Equal(t, domain.ResolutionSourceExact, res.Source)
	assert.Equal(t, 0.95, res.Confidence)
	assert.Equal(t, 2.5, res.QuantityRatio)

	// An exact SKU hit must win before any fuzzy scan happens, even when
	// the label would fuzzy-match a recipe title perfectly.
	mockRepo.AssertNotCalled(t, "ListRecipes", mock.Anything)
	mockRepo.AssertNotCalled(t, "GetByLabel", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_SKUFallsBackToWildcard(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	global := storedMapping()
	global.SupplierKey = domain.WildcardSupplierKey
	mockRepo.On("GetBySKU", ctx, "sup-1", "SKU-42").Return(nil, nil)
	mockRepo.On("GetBySKU", ctx, domain.WildcardSupplierKey, "SKU-42").Return(global, nil)

	res, err := svc.Resolve(ctx, Query{SupplierID: "sup-1", SupplierSKU: "SKU-42"})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "recipe-9", res.TemplateRecipeID)
	mockRepo.AssertExpectations(t)
}

func TestResolve_NormalizedLabelStage(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	byLabel := storedMapping()
	byLabel.SupplierSKU = ""
	byLabel.LabelNormalized = "tarte au citron"
	mockRepo.On("GetByLabel", ctx, "sup-1", "tarte au citron").Return(byLabel, nil)

	// No SKU in the query: stage 1 is skipped entirely.
	res, err := svc.Resolve(ctx, Query{SupplierID: "sup-1", Label: "TARTE au Citron!!"})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, domain.ResolutionSourceExact, res.Source)
	mockRepo.AssertNotCalled(t, "GetBySKU", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_FuzzyAccepted(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByLabel", ctx, domain.WildcardSupplierKey, mock.Anything).Return(nil, nil)
	mockRepo.On("ListRecipes", ctx).Return(recipeCatalog(), nil)

	res, err := svc.Resolve(ctx, Query{Label: "Tarte au citron maison"})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "recipe-1", res.TemplateRecipeID)
	assert.Equal(t, domain.ResolutionSourceFuzzy, res.Source)
	assert.Equal(t, "Tarte au citron", res.MatchedTitle)
	assert.GreaterOrEqual(t, res.Confidence, FuzzyConfidenceFloor)
	assert.LessOrEqual(t, res.Confidence, 1.0)
	assert.Equal(t, 1.0, res.QuantityRatio)
}

func TestResolve_FuzzyBelowThreshold(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByLabel", ctx, domain.WildcardSupplierKey, mock.Anything).Return(nil, nil)
	mockRepo.On("ListRecipes", ctx).Return(recipeCatalog(), nil)

	res, err := svc.Resolve(ctx, Query{Label: "completely unrelated gibberish"})

	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestResolve_EmptyQuery(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)

	res, err := svc.Resolve(context.Background(), Query{Label: "  --  "})

	require.NoError(t, err)
	assert.Nil(t, res)
	mockRepo.AssertNotCalled(t, "ListRecipes", mock.Anything)
}

func TestResolve_CachesResults(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetBySKU", ctx, "sup-1", "SKU-42").Return(storedMapping(), nil).Once()

	q := Query{SupplierID: "sup-1", SupplierSKU: "SKU-42"}
	first, err := svc.Resolve(ctx, q)
	require.NoError(t, err)
	second, err := svc.Resolve(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertExpectations(t) // Once() - second call served from cache

	stats := svc.CacheStats()
	assert.Equal(t, uint64(1), stats.Hits)
}

func TestUpsert_KeyedBySKU(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Upsert", ctx, mock.MatchedBy(func(m domain.SupplierProductMapping) bool {
		return m.SupplierKey == "sup-1" &&
			m.SupplierSKU == "SKU-42" &&
			m.LabelNormalized == "" &&
			m.TemplateRecipeID == "recipe-9" &&
			m.QuantityRatio == 2.5 &&
			m.Confidence == 0.95
	})).Return(nil)

	err := svc.Upsert(ctx, UpsertRequest{
		SupplierID:       "sup-1",
		SupplierSKU:      "SKU-42",
		Label:            "Tarte au citron", // ignored: SKU takes the key
		TemplateRecipeID: "recipe-9",
		QuantityRatio:    2.5,
		Confidence:       0.95,
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpsert_KeyedByNormalizedLabel(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Upsert", ctx, mock.MatchedBy(func(m domain.SupplierProductMapping) bool {
		return m.SupplierKey == domain.WildcardSupplierKey &&
			m.SupplierSKU == "" &&
			m.LabelNormalized == "creme fraiche"
	})).Return(nil)

	err := svc.Upsert(ctx, UpsertRequest{
		Label:            "Crème Fraîche",
		TemplateRecipeID: "recipe-9",
		QuantityRatio:    1,
		Confidence:       0.9,
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpsert_Clamps(t *testing.T) {
	tests := []struct {
		name          string
		ratio         float64
		confidence    float64
		expectedRatio float64
		expectedConf  float64
	}{
		{"zero ratio floored", 0, 0.5, domain.MinQuantityRatio, 0.5},
		{"negative ratio floored", -3, 0.5, domain.MinQuantityRatio, 0.5},
		{"nan ratio floored", math.NaN(), 0.5, domain.MinQuantityRatio, 0.5},
		{"confidence capped", 1, 1.7, 1, 1},
		{"negative confidence floored", 1, -0.2, 1, 0},
		{"nan confidence floored", 1, math.NaN(), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockMappingRepository{}
			svc := NewService(mockRepo)
			ctx := context.Background()

			mockRepo.On("Upsert", ctx, mock.MatchedBy(func(m domain.SupplierProductMapping) bool {
				return m.QuantityRatio == tt.expectedRatio && m.Confidence == tt.expectedConf
			})).Return(nil)

			err := svc.Upsert(ctx, UpsertRequest{
				SupplierSKU:      "SKU-1",
				TemplateRecipeID: "recipe-1",
				QuantityRatio:    tt.ratio,
				Confidence:       tt.confidence,
			})

			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpsert_EmptyLabelNoSKUIsNoOp(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)

	err := svc.Upsert(context.Background(), UpsertRequest{
		Label:            "  !!! ",
		TemplateRecipeID: "recipe-1",
		QuantityRatio:    1,
	})

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpsert_Idempotent(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	var seen []domain.SupplierProductMapping
	mockRepo.On("Upsert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		seen = append(seen, args.Get(1).(domain.SupplierProductMapping))
	}).Return(nil)

	req := UpsertRequest{SupplierID: "sup-1", SupplierSKU: "SKU-42", TemplateRecipeID: "recipe-9", QuantityRatio: 2, Confidence: 0.8}
	require.NoError(t, svc.Upsert(ctx, req))
	require.NoError(t, svc.Upsert(ctx, req))

	require.Len(t, seen, 2)
	// Same key, same payload: the second write replaces the first row.
	seen[0].UpdatedAt = seen[1].UpdatedAt
	assert.Equal(t, seen[0], seen[1])
}

func TestUpsert_PurgesResolutionCache(t *testing.T) {
	mockRepo := &MockMappingRepository{}
	svc := NewService(mockRepo)
	ctx := context.Background()

	// Prime the cache with a miss.
	mockRepo.On("GetByLabel", ctx, domain.WildcardSupplierKey, mock.Anything).Return(nil, nil)
	mockRepo.On("ListRecipes", ctx).Return([]domain.Recipe{}, nil)
	_, err := svc.Resolve(ctx, Query{Label: "nouvelle quiche"})
	require.NoError(t, err)

	mockRepo.On("Upsert", ctx, mock.Anything).Return(nil)
	require.NoError(t, svc.Upsert(ctx, UpsertRequest{
		Label: "nouvelle quiche", TemplateRecipeID: "recipe-5", QuantityRatio: 1, Confidence: 1,
	}))

	// The cached miss is gone: the store is consulted again.
	byLabel := &domain.SupplierProductMapping{TemplateRecipeID: "recipe-5", QuantityRatio: 1, Confidence: 1}
	mockRepo.ExpectedCalls = nil
	mockRepo.On("GetByLabel", ctx, domain.WildcardSupplierKey, "nouvelle quiche").Return(byLabel, nil)

	res, err := svc.Resolve(ctx, Query{Label: "nouvelle quiche"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "recipe-5", res.TemplateRecipeID)
}

package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pfortier/BistroCore_Go/internal/domain"
	"github.com/pfortier/BistroCore_Go/internal/logger"
	"github.com/pfortier/BistroCore_Go/internal/repository"
)

// FuzzyAcceptThreshold is the minimum blended score for a fuzzy hit.
const FuzzyAcceptThreshold = 0.80

// FuzzyConfidenceFloor is the lowest confidence a fuzzy hit reports even
// when the raw score sits just above the accept threshold.
const FuzzyConfidenceFloor = 0.70

// Query describes one free-text supplier line to resolve.
type Query struct {
	SupplierID  string `json:"supplier_id,omitempty"`
	SupplierSKU string `json:"supplier_sku,omitempty"`
	Label       string `json:"label"`
}

// Resolution is a successful match against the recipe catalog.
type Resolution struct {
	TemplateRecipeID string                  `json:"template_recipe_id"`
	QuantityRatio    float64                 `json:"quantity_ratio"`
	Confidence       float64                 `json:"confidence"`
	Source           domain.ResolutionSource `json:"source"`
	MatchedTitle     string                  `json:"matched_title,omitempty"`
}

// UpsertRequest creates or replaces one supplier-product mapping row.
type UpsertRequest struct {
	SupplierID       string  `json:"supplier_id,omitempty"`
	SupplierSKU      string  `json:"supplier_sku,omitempty"`
	Label            string  `json:"label,omitempty"`
	TemplateRecipeID string  `json:"template_recipe_id"`
	QuantityRatio    float64 `json:"quantity_ratio"`
	Confidence       float64 `json:"confidence"`
}

// Service defines the interface for supplier-line resolution
type Service interface {
	Resolve(ctx context.Context, q Query) (*Resolution, error)
	Upsert(ctx context.Context, req UpsertRequest) error
	CacheStats() CacheStats
}

type service struct {
	repo      repository.Mapping
	scorer    Scorer
	threshold float64
	cache     *resolutionCache
	now       func() time.Time
}

// Option customizes the resolver service.
type Option func(*service)

// WithScorer swaps the similarity strategy used by the fuzzy stage.
func WithScorer(sc Scorer) Option {
	return func(s *service) { s.scorer = sc }
}

// WithFuzzyThreshold overrides the fuzzy accept threshold.
func WithFuzzyThreshold(t float64) Option {
	return func(s *service) { s.threshold = t }
}

// WithCache overrides cache size and TTL.
func WithCache(size int, ttl time.Duration) Option {
	return func(s *service) { s.cache = newResolutionCache(size, ttl) }
}

// NewService creates a new resolver service
func NewService(repo repository.Mapping, opts ...Option) Service {
	s := &service{
		repo:      repo,
		scorer:    NewBlendedScorer(),
		threshold: FuzzyAcceptThreshold,
		cache:     newResolutionCache(defaultCacheSize, defaultCacheTTL),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve tries the stages in order and stops at the first hit:
// exact SKU (supplier then wildcard), exact normalized label (supplier
// then wildcard), fuzzy over recipe titles. Returns (nil, nil) when no
// stage clears its threshold.
func (s *service) Resolve(ctx context.Context, q Query) (*Resolution, error) {
	log := logger.FromContext(ctx)

	cacheKey := resolveCacheKey(q)
	if res, found := s.cache.Get(cacheKey); found {
		return res, nil
	}

	res, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, res)
	if res != nil {
		log.Debug("Supplier line resolved",
			"source", res.Source, "recipe_id", res.TemplateRecipeID, "confidence", res.Confidence)
	}
	return res, nil
}

func (s *service) resolve(ctx context.Context, q Query) (*Resolution, error) {
	// Stage 1: exact SKU, supplier scope then wildcard.
	if sku := strings.TrimSpace(q.SupplierSKU); sku != "" {
		m, err := s.lookupScoped(ctx, q.SupplierID, func(key string) (*domain.SupplierProductMapping, error) {
			return s.repo.GetBySKU(ctx, key, sku)
		})
		if err != nil {
			return nil, err
		}
		if m != nil {
			return exactResolution(m), nil
		}
	}

	// Stage 2: exact normalized label, supplier scope then wildcard.
	normalized := NormalizeLabel(q.Label)
	if normalized != "" {
		m, err := s.lookupScoped(ctx, q.SupplierID, func(key string) (*domain.SupplierProductMapping, error) {
			return s.repo.GetByLabel(ctx, key, normalized)
		})
		if err != nil {
			return nil, err
		}
		if m != nil {
			return exactResolution(m), nil
		}
	}

	// Stage 3: fuzzy over all known recipe titles.
	if normalized == "" {
		return nil, nil
	}
	return s.resolveFuzzy(ctx, normalized)
}

// lookupScoped models the two-level key duality: try the supplier
// specific key first, then fall back to the global wildcard key.
func (s *service) lookupScoped(ctx context.Context, supplierID string, lookup func(key string) (*domain.SupplierProductMapping, error)) (*domain.SupplierProductMapping, error) {
	if supplierID != "" {
		m, err := lookup(supplierID)
		if err != nil {
			return nil, fmt.Errorf("mapping lookup failed: %w", err)
		}
		if m != nil {
			return m, nil
		}
	}

	m, err := lookup(domain.WildcardSupplierKey)
	if err != nil {
		return nil, fmt.Errorf("mapping lookup failed: %w", err)
	}
	return m, nil
}

func (s *service) resolveFuzzy(ctx context.Context, normalized string) (*Resolution, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	bestScore := 0.0
	var best *domain.Recipe
	for i := range recipes {
		score := s.scorer.Score(normalized, NormalizeLabel(recipes[i].Title))
		if score > bestScore {
			bestScore = score
			best = &recipes[i]
		}
	}

	if best == nil || bestScore < s.threshold {
		return nil, nil
	}

	confidence := bestScore
	if confidence < FuzzyConfidenceFloor {
		confidence = FuzzyConfidenceFloor
	}
	if confidence > 1 {
		confidence = 1
	}

	return &Resolution{
		TemplateRecipeID: best.ID,
		QuantityRatio:    1,
		Confidence:       confidence,
		Source:           domain.ResolutionSourceFuzzy,
		MatchedTitle:     best.Title,
	}, nil
}

func exactResolution(m *domain.SupplierProductMapping) *Resolution {
	return &Resolution{
		TemplateRecipeID: m.TemplateRecipeID,
		QuantityRatio:    m.QuantityRatio,
		Confidence:       m.Confidence,
		Source:           domain.ResolutionSourceExact,
	}
}

// Upsert writes or updates the mapping row for the request's key:
// (supplier-or-wildcard, SKU) when a SKU is present, else
// (supplier-or-wildcard, normalized label). A request with neither a SKU
// nor a non-empty normalized label is a no-op. Idempotent per key; the
// lookup-then-upsert sequence is last-writer-wins under concurrency.
func (s *service) Upsert(ctx context.Context, req UpsertRequest) error {
	log := logger.FromContext(ctx)

	if req.TemplateRecipeID == "" {
		return fmt.Errorf("%w: template recipe id is required", domain.ErrInvalidInput)
	}

	sku := strings.TrimSpace(req.SupplierSKU)
	normalized := NormalizeLabel(req.Label)
	if sku == "" && normalized == "" {
		log.Debug("Mapping upsert skipped: no SKU and empty normalized label")
		return nil
	}

	m := domain.SupplierProductMapping{
		SupplierKey:      supplierKey(req.SupplierID),
		TemplateRecipeID: req.TemplateRecipeID,
		QuantityRatio:    clampQuantityRatio(req.QuantityRatio),
		Confidence:       clampConfidence(req.Confidence),
		UpdatedAt:        s.now().UTC(),
	}
	if sku != "" {
		m.SupplierSKU = sku
	} else {
		m.LabelNormalized = normalized
	}

	if err := s.repo.Upsert(ctx, m); err != nil {
		return fmt.Errorf("failed to upsert mapping: %w", err)
	}

	// Any mapping change can alter future resolutions, including cached
	// misses, so the cache is purged wholesale.
	s.cache.Purge()
	return nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}

func supplierKey(supplierID string) string {
	if supplierID == "" {
		return domain.WildcardSupplierKey
	}
	return supplierID
}

// clampQuantityRatio floors the ratio at domain.MinQuantityRatio. The
// negated comparison also catches NaN, which is clamped like any other
// out-of-range input.
func clampQuantityRatio(v float64) float64 {
	if !(v >= domain.MinQuantityRatio) {
		return domain.MinQuantityRatio
	}
	return v
}

func clampConfidence(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func resolveCacheKey(q Query) string {
	return q.SupplierID + "|" + q.SupplierSKU + "|" + NormalizeLabel(q.Label)
}

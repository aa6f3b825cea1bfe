package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/logger"
	"github.com/gadgetpasal/backend/internal/metrics"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/repository"
)

// MaxPageSize caps product listings.
const MaxPageSize = 100

// ProductSource is the backing product store.
type ProductSource interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

var categories = []model.Category{
	{
		Slug:        model.CategoryBrandNew,
		Title:       "Brand New Phones",
		Description: "Latest and greatest smartphones with full warranty and all original accessories.",
	},
	{
		Slug:        model.CategoryUsed,
		Title:       "Quality Used Phones",
		Description: "Pre-owned smartphones, thoroughly tested and certified for quality and performance.",
	},
	{
		Slug:        model.CategoryAccessories,
		Title:       "Phone Accessories",
		Description: "Enhance your smartphone experience with our range of premium accessories.",
	},
	{
		Slug:        model.CategoryLaptops,
		Title:       "Laptops & Computers",
		Description: "Powerful laptops for work, gaming, and everyday computing needs.",
	},
}

// IsCategory reports whether slug names a storefront category.
func IsCategory(slug string) bool {
	for _, c := range categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// CatalogSnapshot is an in-memory read copy of the catalog.
type CatalogSnapshot struct {
	mu       sync.RWMutex
	products []model.Product
	byID     map[uuid.UUID]model.Product
	loadedAt time.Time
}

func NewCatalogSnapshot() *CatalogSnapshot {
	return &CatalogSnapshot{}
}

// Replace swaps in a new product set.
func (s *CatalogSnapshot) Replace(products []model.Product) {
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	copied := append([]model.Product{}, products...)

	s.mu.Lock()
	s.products = copied
	s.byID = byID
	s.loadedAt = time.Now()
	s.mu.Unlock()
}

func (s *CatalogSnapshot) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loadedAt.IsZero()
}

func (s *CatalogSnapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *CatalogSnapshot) List(filter model.ProductFilter) []model.Product {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()
	return repository.FilterProducts(products, filter)
}

func (s *CatalogSnapshot) Get(id uuid.UUID) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// CatalogService serves product reads, preferring the snapshot once loaded.
type CatalogService struct {
	source   ProductSource
	snapshot *CatalogSnapshot
}

// NewCatalogService creates a CatalogService. A nil snapshot reads through
// to the source on every call.
func NewCatalogService(source ProductSource, snapshot *CatalogSnapshot) *CatalogService {
	return &CatalogService{source: source, snapshot: snapshot}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if filter.Category != "" && !IsCategory(filter.Category) {
		return nil, apperror.ValidationError("category", fmt.Sprintf("unknown category %q", filter.Category))
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, apperror.ValidationError("limit", "limit and offset must not be negative")
	}
	if filter.MinPrice != nil && filter.MinPrice.IsNegative() {
		return nil, apperror.ValidationError("minPrice", "minPrice must not be negative")
	}
	if filter.MaxPrice != nil && filter.MaxPrice.IsNegative() {
		return nil, apperror.ValidationError("maxPrice", "maxPrice must not be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, apperror.ValidationError("minPrice", "minPrice must not exceed maxPrice")
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}

	if s.snapshot != nil && s.snapshot.Loaded() {
		return s.snapshot.List(filter), nil
	}

	products, err := s.source.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// GetProduct returns a product. Snapshot misses fall through to the source so
// products created since the last refresh are visible.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.snapshot != nil {
		if p, ok := s.snapshot.Get(id); ok {
			return &p, nil
		}
	}

	product, err := s.source.GetByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, apperror.NotFound("product")
	}
	if err != nil {
		return nil, fmt.Errorf("getting product %s: %w", id, err)
	}
	return product, nil
}

// Brands returns the sorted distinct brands of a category, or of the whole
// catalog when category is empty. Other filters do not narrow the facet.
func (s *CatalogService) Brands(ctx context.Context, category string) ([]string, error) {
	if category != "" && !IsCategory(category) {
		return nil, apperror.NotFound("category")
	}

	filter := model.ProductFilter{Category: category}
	if s.snapshot != nil && s.snapshot.Loaded() {
		return repository.DistinctBrands(s.snapshot.List(filter)), nil
	}

	products, err := s.source.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}
	return repository.DistinctBrands(products), nil
}

func (s *CatalogService) Categories() []model.Category {
	return append([]model.Category{}, categories...)
}

// Refresh reloads the snapshot from the source.
func (s *CatalogService) Refresh(ctx context.Context) error {
	if s.snapshot == nil {
		return nil
	}

	products, err := s.source.List(ctx, model.ProductFilter{})
	metrics.CatalogRefresh.WithLabelValues(metrics.Status(err)).Inc()
	if err != nil {
		return fmt.Errorf("refreshing catalog: %w", err)
	}

	s.snapshot.Replace(products)
	logger.FromContext(ctx).Info("catalog snapshot refreshed", "products", len(products))
	return nil
}

package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/model"
)

// demoNamespace derives stable product IDs from product names so links to the
// demo catalog survive restarts.
var demoNamespace = uuid.MustParse("6f2b7c1e-4f4a-4b8e-9a53-2d1c7e0a9b10")

// DemoProductID returns the stable ID of a demo catalog product.
func DemoProductID(name string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(name))
}

// DemoProducts returns the storefront's seed catalog.
func DemoProducts() []model.Product {
	badge := func(s string) *string { return &s }
	type seed struct {
		name     string
		brand    string
		category string
		price    int64
		badge    *string
		featured bool
		stock    int
		image    string
	}
	seeds := []seed{
		{"iPhone 15 Pro Max", "Apple", model.CategoryBrandNew, 175000, badge("New Arrival"), true, 12, "photo-1695048133142-1a20484429be"},
		{"Samsung Galaxy S23 Ultra", "Samsung", model.CategoryBrandNew, 155000, badge("Best Seller"), true, 9, "photo-1676315115808-b2a583f6e809"},
		{"Google Pixel 8 Pro", "Google", model.CategoryBrandNew, 120000, nil, true, 6, "photo-1696348045798-288db4d4bd18"},
		{"OnePlus 12", "OnePlus", model.CategoryBrandNew, 100000, nil, false, 0, "photo-1676455981746-2146e00edf99"},
		{"iPhone 13 (Used)", "Apple", model.CategoryUsed, 80000, badge("Great Deal"), true, 4, "photo-1632633173522-47456de71b76"},
		{"Samsung Galaxy S22 (Used)", "Samsung", model.CategoryUsed, 65000, badge("Certified"), true, 3, "photo-1644501648643-444daf400d4b"},
		{"iPhone 12 Pro (Used)", "Apple", model.CategoryUsed, 70000, nil, false, 2, "photo-1603891128711-11b4b03bb138"},
		{"Google Pixel 7 (Used)", "Google", model.CategoryUsed, 60000, badge("Like New"), false, 5, "photo-1667006050229-8c9e7ae9e724"},
		{"Sony WH-1000XM4", "Sony", model.CategoryAccessories, 45000, nil, true, 15, "photo-1618366712010-f4ae9c647dcb"},
		{"AirPods Pro", "Apple", model.CategoryAccessories, 36000, badge("Popular"), false, 20, "photo-1590658268037-6bf12165a8df"},
		{"Samsung Galaxy Watch 6", "Samsung", model.CategoryAccessories, 40000, nil, false, 8, "photo-1579586337278-3befd40fd17a"},
		{"Anker PowerCore 26800", "Anker", model.CategoryAccessories, 8000, badge("Best Value"), false, 40, "photo-1609091839311-d5365f9ff1c5"},
		{"MacBook Pro M2", "Apple", model.CategoryLaptops, 250000, nil, true, 5, "photo-1517336714731-489689fd1ca8"},
		{"Dell XPS 15", "Dell", model.CategoryLaptops, 180000, nil, true, 4, "photo-1593642702821-c8da6771f0c6"},
	}

	type offer struct {
		colors      []string
		storage     []string
		original    int64
		discount    int
		rating      float64
		reviewCount int
	}
	offers := map[string]offer{
		"iPhone 15 Pro Max":         {[]string{"Natural Titanium", "Blue Titanium", "Black Titanium"}, []string{"128GB", "256GB", "512GB", "1TB"}, 190000, 8, 4.8, 124},
		"Samsung Galaxy S23 Ultra":  {[]string{"Phantom Black", "Cream", "Green", "Lavender"}, []string{"256GB", "512GB", "1TB"}, 165000, 6, 4.7, 98},
		"Google Pixel 8 Pro":        {[]string{"Obsidian", "Porcelain", "Bay"}, []string{"128GB", "256GB"}, 0, 0, 4.6, 41},
		"OnePlus 12":                {[]string{"Silky Black", "Flowy Emerald"}, []string{"256GB", "512GB"}, 0, 0, 4.5, 23},
		"iPhone 13 (Used)":          {[]string{"Blue", "Midnight", "Starlight"}, []string{"128GB", "256GB"}, 95000, 16, 4.4, 57},
		"Samsung Galaxy S22 (Used)": {[]string{"Phantom Black", "Phantom White", "Green"}, []string{"128GB", "256GB"}, 0, 0, 4.3, 36},
		"iPhone 12 Pro (Used)":      {[]string{"Graphite", "Pacific Blue"}, []string{"128GB", "256GB"}, 0, 0, 4.2, 19},
		"Google Pixel 7 (Used)":     {[]string{"Obsidian", "Snow", "Lemongrass"}, []string{"128GB"}, 0, 0, 4.1, 12},
		"Sony WH-1000XM4":           {[]string{"Black", "Silver"}, nil, 50000, 10, 4.7, 210},
		"AirPods Pro":               {nil, nil, 0, 0, 4.6, 188},
		"Samsung Galaxy Watch 6":    {[]string{"Graphite", "Gold"}, nil, 0, 0, 4.3, 44},
		"Anker PowerCore 26800":     {nil, nil, 0, 0, 4.5, 320},
		"MacBook Pro M2":            {[]string{"Space Gray", "Silver"}, []string{"256GB", "512GB", "1TB", "2TB"}, 265000, 5, 4.9, 87},
		"Dell XPS 15":               {[]string{"Platinum Silver"}, []string{"512GB", "1TB"}, 0, 0, 4.5, 33},
	}

	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	products := make([]model.Product, 0, len(seeds))
	for i, s := range seeds {
		ts := created.Add(time.Duration(len(seeds)-i) * time.Hour)
		o := offers[s.name]
		p := model.Product{
			ID:          DemoProductID(s.name),
			Name:        s.name,
			Brand:       s.brand,
			Badge:       s.badge,
			Price:       decimal.NewFromInt(s.price),
			Discount:    o.discount,
			Category:    s.category,
			ImageURL:    "https://images.unsplash.com/" + s.image + "?q=80&w=600&auto=format&fit=crop",
			Colors:      o.colors,
			Storage:     o.storage,
			Rating:      o.rating,
			ReviewCount: o.reviewCount,
			Featured:    s.featured,
			Stock:       s.stock,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
		if o.original > 0 {
			original := decimal.NewFromInt(o.original)
			p.OriginalPrice = &original
		}
		products = append(products, p)
	}
	return products
}

// MemoryProductRepository is a mutex guarded product store used when no
// database is configured.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]model.Product
	now      func() time.Time
}

func NewMemoryProductRepository(seed []model.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make(map[uuid.UUID]model.Product, len(seed)),
		now:      time.Now,
	}
	for _, p := range seed {
		r.products[p.ID] = p
	}
	return r
}

func (r *MemoryProductRepository) Create(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := r.now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) List(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	all := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	r.mu.RUnlock()

	return FilterProducts(all, filter), nil
}

func (r *MemoryProductRepository) Update(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return ErrProductNotFound
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = r.now()
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *MemoryProductRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// FilterProducts applies filter to products the way the SQL listing does:
// newest first, ties broken by name, then offset and limit.
func FilterProducts(products []model.Product, filter model.ProductFilter) []model.Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(filter.Brands) > 0 && !containsString(filter.Brands, p.Brand) {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.InStock && !p.InStock() {
			continue
		}
		if filter.Featured && !p.Featured {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []model.Product{}
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out
}

// DistinctBrands returns the sorted set of brands in products.
func DistinctBrands(products []model.Product) []string {
	seen := make(map[string]bool)
	brands := []string{}
	for _, p := range products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

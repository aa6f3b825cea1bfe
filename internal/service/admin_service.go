package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/logger"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/repository"
)

// ProductRepositoryInterface defines the contract for product management.
type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// CatalogRefresher reloads cached catalog reads after a write.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// AdminService backs the admin console.
type AdminService struct {
	products ProductRepositoryInterface
	orders   OrderRepositoryInterface
	catalog  CatalogRefresher
}

func NewAdminService(products ProductRepositoryInterface, orders OrderRepositoryInterface, catalog CatalogRefresher) *AdminService {
	return &AdminService{products: products, orders: orders, catalog: catalog}
}

type ProductInput struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Brand         string           `json:"brand"`
	Badge         *string          `json:"badge"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Discount      int              `json:"discount"`
	Category      string           `json:"category"`
	ImageURL      string           `json:"imageUrl"`
	Colors        []string         `json:"colors"`
	Storage       []string         `json:"storage"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	Featured      bool             `json:"featured"`
	Stock         int              `json:"stock"`
}

func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperror.ValidationError("name", "name is required")
	}
	if in.Price.IsNegative() {
		return apperror.ValidationError("price", "price must not be negative")
	}
	if !IsCategory(in.Category) {
		return apperror.ValidationError("category", fmt.Sprintf("unknown category %q", in.Category))
	}
	if in.Stock < 0 {
		return apperror.ValidationError("stock", "stock must not be negative")
	}
	if in.OriginalPrice != nil && in.OriginalPrice.LessThan(in.Price) {
		return apperror.ValidationError("originalPrice", "originalPrice must not be below price")
	}
	if in.Discount < 0 || in.Discount > 100 {
		return apperror.ValidationError("discount", "discount must be between 0 and 100")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return apperror.ValidationError("rating", "rating must be between 0 and 5")
	}
	if in.ReviewCount < 0 {
		return apperror.ValidationError("reviewCount", "reviewCount must not be negative")
	}
	if err := validateOptions("colors", in.Colors); err != nil {
		return err
	}
	return validateOptions("storage", in.Storage)
}

// validateOptions requires variant options to be non-blank and distinct.
func validateOptions(field string, options []string) error {
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		o = strings.TrimSpace(o)
		if o == "" {
			return apperror.ValidationError(field, field+" must not contain blank entries")
		}
		if seen[o] {
			return apperror.ValidationError(field, fmt.Sprintf("duplicate %s entry %q", field, o))
		}
		seen[o] = true
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func (in ProductInput) apply(p *model.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Brand = in.Brand
	p.Badge = in.Badge
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.Discount = in.Discount
	p.Category = in.Category
	p.ImageURL = in.ImageURL
	p.Colors = trimAll(in.Colors)
	p.Storage = trimAll(in.Storage)
	p.Rating = in.Rating
	p.ReviewCount = in.ReviewCount
	p.Featured = in.Featured
	p.Stock = in.Stock
}

// ListProducts returns every product, newest first.
func (s *AdminService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx, model.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, input ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	product := &model.Product{}
	input.apply(product)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	s.refreshCatalog(ctx)
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, productError(id, err)
	}
	input.apply(product)
	if err := s.products.Update(ctx, product); err != nil {
		return nil, productError(id, err)
	}

	s.refreshCatalog(ctx)
	return product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return productError(id, err)
	}
	s.refreshCatalog(ctx)
	return nil
}

// ListOrders returns every order with its items, newest first.
func (s *AdminService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, apperror.ValidationError("status", fmt.Sprintf("unknown order status %q", status))
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, apperror.NotFound("order")
		}
		return nil, fmt.Errorf("updating order %s: %w", id, err)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reloading order %s: %w", id, err)
	}
	logger.FromContext(ctx).Info("order status updated", "order_id", id, "status", status)
	return order, nil
}

// Summary aggregates the dashboard figures. Revenue excludes cancelled orders.
func (s *AdminService) Summary(ctx context.Context) (*model.AdminSummary, error) {
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting products: %w", err)
	}
	byStatus, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting orders: %w", err)
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("summing revenue: %w", err)
	}

	summary := &model.AdminSummary{
		ProductCount:   productCount,
		Revenue:        revenue,
		OrdersByStatus: byStatus,
	}
	for _, n := range byStatus {
		summary.OrderCount += n
	}
	return summary, nil
}

func (s *AdminService) refreshCatalog(ctx context.Context) {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Refresh(ctx); err != nil {
		logger.FromContext(ctx).Warn("catalog refresh after admin write failed", "error", err)
	}
}

func productError(id uuid.UUID, err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return apperror.NotFound("product")
	}
	return fmt.Errorf("product %s: %w", id, err)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/metrics"
	"github.com/gadgetpasal/backend/internal/model"
)

// CartStore persists cart lines per user.
type CartStore interface {
	Get(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	Save(ctx context.Context, userID uuid.UUID, items []model.CartItem) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CartService manages shopping carts. Prices always come from the catalog.
type CartService struct {
	store   CartStore
	catalog ProductLookup
}

func NewCartService(store CartStore, catalog ProductLookup) *CartService {
	return &CartService{store: store, catalog: catalog}
}

type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty"`
	Storage   string    `json:"storage,omitempty"`
}

func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	return buildCart(userID, items), nil
}

// AddItem adds quantity units of a product variant, merging with an existing
// line for the same product, color and storage.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) (*model.Cart, error) {
	if input.Quantity <= 0 {
		return nil, apperror.ValidationError("quantity", "quantity must be at least 1")
	}

	product, err := s.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock() {
		return nil, apperror.Conflict(fmt.Sprintf("%s is out of stock", product.Name))
	}
	color, storage, err := chooseVariant(product, input.Color, input.Storage)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	line := model.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  input.Quantity,
		Color:     color,
		Storage:   storage,
	}

	merged := false
	for i := range items {
		if items[i].SameLine(line) {
			items[i].Quantity += input.Quantity
			items[i].Price = product.Price
			items[i].Name = product.Name
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, line)
	}

	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("saving cart: %w", err)
	}
	metrics.CartOperations.WithLabelValues("add").Inc()
	return buildCart(userID, items), nil
}

// chooseVariant resolves the requested color and storage against the
// product's declared options. An empty choice takes the first option, as the
// product page preselects it; a product without options accepts none.
func chooseVariant(product *model.Product, color, storage string) (string, string, error) {
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}
	if color != "" && !product.HasColor(color) {
		return "", "", apperror.ValidationError("color", fmt.Sprintf("%s is not available in %q", product.Name, color))
	}

	if storage == "" && len(product.Storage) > 0 {
		storage = product.Storage[0]
	}
	if storage != "" && !product.HasStorage(storage) {
		return "", "", apperror.ValidationError("storage", fmt.Sprintf("%s is not available with %q", product.Name, storage))
	}
	return color, storage, nil
}

// RemoveItem drops every line of the product, whatever its variant.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*model.Cart, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil, apperror.NotFound("cart item")
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return nil, fmt.Errorf("saving cart: %w", err)
	}
	metrics.CartOperations.WithLabelValues("remove").Inc()
	return buildCart(userID, kept), nil
}

// SetQuantity sets the quantity of every line of the product. Quantities
// below 1 are raised to 1; removal goes through RemoveItem.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			found = true
		}
	}
	if !found {
		return nil, apperror.NotFound("cart item")
	}

	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("saving cart: %w", err)
	}
	metrics.CartOperations.WithLabelValues("set_quantity").Inc()
	return buildCart(userID, items), nil
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	metrics.CartOperations.WithLabelValues("clear").Inc()
	return nil
}

func buildCart(userID uuid.UUID, items []model.CartItem) *model.Cart {
	cart := &model.Cart{
		UserID: userID,
		Items:  items,
		Total:  decimal.Zero,
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	for _, item := range cart.Items {
		cart.Total = cart.Total.Add(item.Subtotal())
		cart.ItemCount += item.Quantity
	}
	return cart
}

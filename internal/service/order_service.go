package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/logger"
	"github.com/gadgetpasal/backend/internal/model"
)

// Accepted payment methods.
const (
	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentCard           = "card"
	PaymentWallet         = "wallet"
	PaymentEMI            = "emi"
)

func validPaymentMethod(m string) bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentWallet, PaymentEMI:
		return true
	}
	return false
}

// OrderRepositoryInterface defines the contract for order persistence.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

// CartReader is the part of the cart service checkout needs.
type CartReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// Quoter prices EMI plans for an order total.
type Quoter interface {
	QuoteFor(ctx context.Context, amount decimal.Decimal, months int) (*Quote, error)
}

// OrderService turns carts into orders. There is no payment capture.
type OrderService struct {
	repo   OrderRepositoryInterface
	carts  CartReader
	quoter Quoter
}

func NewOrderService(repo OrderRepositoryInterface, carts CartReader, quoter Quoter) *OrderService {
	return &OrderService{repo: repo, carts: carts, quoter: quoter}
}

type CheckoutInput struct {
	PaymentMethod     string `json:"paymentMethod"`
	EMIDurationMonths *int   `json:"emiDurationMonths,omitempty"`
}

type CheckoutResult struct {
	Order    *model.Order `json:"order"`
	EMIQuote *Quote       `json:"emiQuote,omitempty"`
}

// Checkout places a pending order for the user's cart and empties the cart.
// An EMI duration attaches a quote financing the full order total.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*CheckoutResult, error) {
	if !validPaymentMethod(input.PaymentMethod) {
		return nil, apperror.ValidationError("paymentMethod", "unsupported payment method")
	}
	if input.PaymentMethod == PaymentEMI && input.EMIDurationMonths == nil {
		return nil, apperror.ValidationError("emiDurationMonths", "EMI checkout needs a duration")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperror.BadRequest("cart is empty")
	}

	var quote *Quote
	if input.EMIDurationMonths != nil {
		quote, err = s.quoter.QuoteFor(ctx, cart.Total, *input.EMIDurationMonths)
		if err != nil {
			return nil, err
		}
	}

	order := &model.Order{
		UserID:        userID,
		Status:        model.OrderStatusPending,
		TotalAmount:   cart.Total,
		PaymentMethod: input.PaymentMethod,
		EMIMonths:     input.EMIDurationMonths,
		Items:         make([]model.OrderItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Color:       item.Color,
			Storage:     item.Storage,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		// The order stands; a stale cart is only an inconvenience.
		logger.FromContext(ctx).Warn("clearing cart after checkout failed", "order_id", order.ID, "error", err)
	}

	logger.FromContext(ctx).Info("order placed", "order_id", order.ID, "total", order.TotalAmount.String())
	return &CheckoutResult{Order: order, EMIQuote: quote}, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

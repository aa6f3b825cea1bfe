package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/service"
)

// TokenParser verifies bearer tokens for AuthMiddleware.
type TokenParser interface {
	Parse(tokenString string) (*service.TokenClaims, error)
}

// EMIServiceInterface for handler testing
type EMIServiceInterface interface {
	Calculate(ctx context.Context, input service.CalculateInput) (*service.Quote, error)
	SyncDownPayment(input service.DownPaymentInput) (*service.DownPaymentQuote, error)
	RepriceDownPayment(price float64, percent int) *service.DownPaymentQuote
	ProductOptions(ctx context.Context, productID uuid.UUID, downPayment float64) (*service.ProductEMIOptions, error)
	Plans() service.PaymentPlans
}

// CatalogServiceInterface for handler testing
type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Brands(ctx context.Context, category string) ([]string, error)
	Categories() []model.Category
}

// CartServiceInterface for handler testing
type CartServiceInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, input service.AddCartItemInput) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*model.Cart, error)
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// OrderServiceInterface for handler testing
type OrderServiceInterface interface {
	Checkout(ctx context.Context, userID uuid.UUID, input service.CheckoutInput) (*service.CheckoutResult, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
}

// AdminServiceInterface for handler testing
type AdminServiceInterface interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, input service.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input service.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
	Summary(ctx context.Context) (*model.AdminSummary, error)
}

// ExportServiceInterface for handler testing
type ExportServiceInterface interface {
	OrdersCSV(ctx context.Context) ([]byte, error)
	InvoicePDF(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}

// AuthServiceInterface for handler testing
type AuthServiceInterface interface {
	Signup(ctx context.Context, input service.SignupInput) (*service.AuthResponse, error)
	Login(ctx context.Context, input service.LoginInput) (*service.AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

var (
	_ EMIServiceInterface     = (*service.EMIService)(nil)
	_ CatalogServiceInterface = (*service.CatalogService)(nil)
	_ CartServiceInterface    = (*service.CartService)(nil)
	_ OrderServiceInterface   = (*service.OrderService)(nil)
	_ AdminServiceInterface   = (*service.AdminService)(nil)
	_ ExportServiceInterface  = (*service.ExportService)(nil)
	_ AuthServiceInterface    = (*service.UserService)(nil)
)

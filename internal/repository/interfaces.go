package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/model"
)

//go:generate mockery --name=ProductRepositoryInterface --output=../mocks --outpkg=mocks
type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

//go:generate mockery --name=UserRepositoryInterface --output=../mocks --outpkg=mocks
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role model.Role) (int, error)
}

//go:generate mockery --name=OrderRepositoryInterface --output=../mocks --outpkg=mocks
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

//go:generate mockery --name=CartStoreInterface --output=../mocks --outpkg=mocks
type CartStoreInterface interface {
	Get(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	Save(ctx context.Context, userID uuid.UUID, items []model.CartItem) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type CacheInterface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

var (
	_ ProductRepositoryInterface = (*ProductRepository)(nil)
	_ ProductRepositoryInterface = (*MemoryProductRepository)(nil)
	_ UserRepositoryInterface    = (*UserRepository)(nil)
	_ UserRepositoryInterface    = (*MemoryUserRepository)(nil)
	_ OrderRepositoryInterface   = (*OrderRepository)(nil)
	_ OrderRepositoryInterface   = (*MemoryOrderRepository)(nil)
	_ CartStoreInterface         = (*MemoryCartStore)(nil)
	_ CartStoreInterface         = (*RedisCartStore)(nil)
	_ CacheInterface             = (*RedisCache)(nil)
)

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/repository"
)

// MockOrderRepo implements OrderRepositoryInterface for testing
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepo) CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.OrderStatus]int), args.Error(1)
}

func (m *MockOrderRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type checkoutFixture struct {
	orders *repository.MemoryOrderRepository
	carts  *CartService
	svc    *OrderService
	phone  *model.Product
}

func newCheckoutFixture() checkoutFixture {
	phone := &model.Product{ID: uuid.New(), Name: "iPhone 15 Pro Max", Price: decimal.NewFromInt(25000), Stock: 5}
	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, phone.ID).Return(phone, nil)

	orders := repository.NewMemoryOrderRepository()
	carts := NewCartService(repository.NewMemoryCartStore(), catalog)
	return checkoutFixture{
		orders: orders,
		carts:  carts,
		svc:    NewOrderService(orders, carts, newTestEMIService(catalog)),
		phone:  phone,
	}
}

func intPtr(v int) *int { return &v }

func TestOrderService_Checkout(t *testing.T) {
	t.Parallel()
	f := newCheckoutFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.carts.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 2})
	require.NoError(t, err)

	result, err := f.svc.Checkout(ctx, userID, CheckoutInput{PaymentMethod: PaymentCashOnDelivery})

	require.NoError(t, err)
	assert.Nil(t, result.EMIQuote)
	assert.Equal(t, model.OrderStatusPending, result.Order.Status)
	assert.True(t, decimal.NewFromInt(50000).Equal(result.Order.TotalAmount))
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, "iPhone 15 Pro Max", result.Order.Items[0].ProductName)
	assert.Equal(t, 2, result.Order.Items[0].Quantity)
	assert.NotEqual(t, uuid.Nil, result.Order.ID)

	cart, err := f.carts.Get(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "checkout empties the cart")

	orders, err := f.svc.ListForUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_Checkout_WithEMI(t *testing.T) {
	t.Parallel()
	f := newCheckoutFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.carts.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 2})
	require.NoError(t, err)

	result, err := f.svc.Checkout(ctx, userID, CheckoutInput{PaymentMethod: PaymentEMI, EMIDurationMonths: intPtr(6)})

	require.NoError(t, err)
	require.NotNil(t, result.EMIQuote)
	assert.True(t, decimal.NewFromInt(8480).Equal(result.EMIQuote.MonthlyPayment))
	assert.Len(t, result.EMIQuote.Schedule, 6)
	require.NotNil(t, result.Order.EMIMonths)
	assert.Equal(t, 6, *result.Order.EMIMonths)
}

func TestOrderService_Checkout_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fillCart  bool
		input     CheckoutInput
		wantField string
	}{
		{name: "unknown payment method", fillCart: true, input: CheckoutInput{PaymentMethod: "barter"}, wantField: "paymentMethod"},
		{name: "emi without duration", fillCart: true, input: CheckoutInput{PaymentMethod: PaymentEMI}, wantField: "emiDurationMonths"},
		{name: "emi duration out of range", fillCart: true, input: CheckoutInput{PaymentMethod: PaymentEMI, EMIDurationMonths: intPtr(36)}, wantField: "durationMonths"},
		{name: "empty cart", input: CheckoutInput{PaymentMethod: PaymentCard}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newCheckoutFixture()
			ctx := context.Background()
			userID := uuid.New()
			if tt.fillCart {
				_, err := f.carts.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1})
				require.NoError(t, err)
			}

			result, err := f.svc.Checkout(ctx, userID, tt.input)

			assert.Nil(t, result)
			assert.Equal(t, http.StatusBadRequest, apperror.GetStatusCode(err))
			assert.Equal(t, tt.wantField, apperror.GetField(err))

			orders, listErr := f.orders.List(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderService_Checkout_RepositoryError(t *testing.T) {
	t.Parallel()
	f := newCheckoutFixture()
	ctx := context.Background()
	userID := uuid.New()
	_, err := f.carts.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1})
	require.NoError(t, err)

	repo := new(MockOrderRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(errors.New("deadlock"))
	svc := NewOrderService(repo, f.carts, newTestEMIService(nil))

	_, err = svc.Checkout(ctx, userID, CheckoutInput{PaymentMethod: PaymentWallet})

	assert.Error(t, err)
	cart, getErr := f.carts.Get(ctx, userID)
	require.NoError(t, getErr)
	assert.Len(t, cart.Items, 1, "failed checkout keeps the cart")
}

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

// MockCartStore implements CartStore for testing
type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Get(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, userID uuid.UUID, items []model.CartItem) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type cartFixture struct {
	svc     *CartService
	catalog *MockProductLookup
	phone   *model.Product
	soldOut *model.Product
}

func newCartFixture() cartFixture {
	phone := &model.Product{
		ID:      uuid.New(),
		Name:    "Pixel 8",
		Price:   decimal.NewFromInt(120000),
		Stock:   3,
		Colors:  []string{"Obsidian", "Porcelain"},
		Storage: []string{"128GB", "256GB"},
	}
	soldOut := &model.Product{ID: uuid.New(), Name: "OnePlus 12", Price: decimal.NewFromInt(100000), Stock: 0}

	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, phone.ID).Return(phone, nil)
	catalog.On("GetProduct", mock.Anything, soldOut.ID).Return(soldOut, nil)

	return cartFixture{
		svc:     NewCartService(repository.NewMemoryCartStore(), catalog),
		catalog: catalog,
		phone:   phone,
		soldOut: soldOut,
	}
}

func TestCartService_Get_Empty(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	userID := uuid.New()

	cart, err := f.svc.Get(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
	assert.Zero(t, cart.ItemCount)
}

func TestCartService_AddItem_Merges(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Color: "Obsidian"})
	require.NoError(t, err)
	cart, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 2, Color: "Obsidian"})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount)
	assert.True(t, decimal.NewFromInt(360000).Equal(cart.Total))
}

func TestCartService_AddItem_VariantsAreSeparateLines(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Storage: "128GB"})
	require.NoError(t, err)
	cart, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Storage: "256GB"})
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestCartService_AddItem_DefaultsToFirstVariant(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1})
	require.NoError(t, err)
	cart, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Color: "Obsidian", Storage: "128GB"})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Obsidian", cart.Items[0].Color)
	assert.Equal(t, "128GB", cart.Items[0].Storage)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_AddItem_RejectsUndeclaredVariant(t *testing.T) {
	t.Parallel()

	f := newCartFixture()
	charger := &model.Product{ID: uuid.New(), Name: "Anker PowerCore 26800", Price: decimal.NewFromInt(8000), Stock: 40}
	f.catalog.On("GetProduct", mock.Anything, charger.ID).Return(charger, nil)

	tests := []struct {
		name      string
		input     AddCartItemInput
		wantField string
	}{
		{name: "unknown color", input: AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Color: "Hot Pink"}, wantField: "color"},
		{name: "unknown storage", input: AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Color: "Porcelain", Storage: "2TB"}, wantField: "storage"},
		{name: "color differs only in case", input: AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Color: "obsidian"}, wantField: "color"},
		{name: "color on a product without colors", input: AddCartItemInput{ProductID: charger.ID, Quantity: 1, Color: "Black"}, wantField: "color"},
		{name: "storage on a product without storage", input: AddCartItemInput{ProductID: charger.ID, Quantity: 1, Storage: "64GB"}, wantField: "storage"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			userID := uuid.New()

			cart, err := f.svc.AddItem(context.Background(), userID, tt.input)

			assert.Nil(t, cart)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
			assert.Equal(t, tt.wantField, appErr.Field)

			stored, err := f.svc.Get(context.Background(), userID)
			require.NoError(t, err)
			assert.Empty(t, stored.Items)
		})
	}
}

func TestCartService_AddItem_Rejects(t *testing.T) {
	t.Parallel()

	f := newCartFixture()
	missing := uuid.New()
	f.catalog.On("GetProduct", mock.Anything, missing).Return(nil, apperror.NotFound("product"))

	tests := []struct {
		name       string
		input      AddCartItemInput
		wantStatus int
	}{
		{name: "zero quantity", input: AddCartItemInput{ProductID: f.phone.ID, Quantity: 0}, wantStatus: http.StatusBadRequest},
		{name: "unknown product", input: AddCartItemInput{ProductID: missing, Quantity: 1}, wantStatus: http.StatusNotFound},
		{name: "out of stock", input: AddCartItemInput{ProductID: f.soldOut.ID, Quantity: 1}, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cart, err := f.svc.AddItem(context.Background(), uuid.New(), tt.input)

			assert.Nil(t, cart)
			assert.Equal(t, tt.wantStatus, apperror.GetStatusCode(err))
		})
	}
}

func TestCartService_AddItem_PriceComesFromCatalog(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	product := &model.Product{ID: uuid.New(), Name: "AirPods Pro", Price: decimal.NewFromInt(36000), Stock: 5}

	store := new(MockCartStore)
	store.On("Get", mock.Anything, userID).Return([]model.CartItem{
		{ProductID: product.ID, Name: "AirPods", Price: decimal.NewFromInt(1), Quantity: 1},
	}, nil)
	store.On("Save", mock.Anything, userID, mock.MatchedBy(func(items []model.CartItem) bool {
		return len(items) == 1 && items[0].Quantity == 2 && items[0].Price.Equal(product.Price)
	})).Return(nil)

	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, product.ID).Return(product, nil)
	svc := NewCartService(store, catalog)

	cart, err := svc.AddItem(context.Background(), userID, AddCartItemInput{ProductID: product.ID, Quantity: 1})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(72000).Equal(cart.Total))
	assert.Equal(t, "AirPods Pro", cart.Items[0].Name)
	store.AssertExpectations(t)
}

func TestCartService_AddItem_StoreError(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	product := &model.Product{ID: uuid.New(), Price: decimal.NewFromInt(8000), Stock: 1}

	store := new(MockCartStore)
	store.On("Get", mock.Anything, userID).Return(nil, errors.New("redis down"))
	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, product.ID).Return(product, nil)
	svc := NewCartService(store, catalog)

	_, err := svc.AddItem(context.Background(), userID, AddCartItemInput{ProductID: product.ID, Quantity: 1})

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperror.GetStatusCode(err))
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Storage: "128GB"})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1, Storage: "256GB"})
	require.NoError(t, err)

	cart, err := f.svc.RemoveItem(ctx, userID, f.phone.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.svc.RemoveItem(ctx, userID, f.phone.ID)
	assert.Equal(t, http.StatusNotFound, apperror.GetStatusCode(err))
}

func TestCartService_SetQuantity(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 4})
	require.NoError(t, err)

	cart, err := f.svc.SetQuantity(ctx, userID, f.phone.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemCount)

	cart, err = f.svc.SetQuantity(ctx, userID, f.phone.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount, "quantity never drops below one")

	_, err = f.svc.SetQuantity(ctx, userID, uuid.New(), 3)
	assert.Equal(t, http.StatusNotFound, apperror.GetStatusCode(err))
}

func TestCartService_Clear(t *testing.T) {
	t.Parallel()
	f := newCartFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.AddItem(ctx, userID, AddCartItemInput{ProductID: f.phone.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, f.svc.Clear(ctx, userID))

	cart, err := f.svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
